package repositories

import (
	"github.com/yigit/registro-academico/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	Roles        *RoleRepository
	Users        *UserRepository
	Careers      *CareerRepository
	Teachers     *TeacherRepository
	Students     *StudentRepository
	Subjects     *SubjectRepository
	Periods      *PeriodRepository
	Enrollments  *EnrollmentRepository
	Activities   *ActivityRepository
	Attendance   *AttendanceRepository
	Grades       *GradeRepository
	RecoveryPins *RecoveryPinRepository
}

// NewRepositories initializes all repositories on conn
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		Roles:        NewRoleRepository(conn),
		Users:        NewUserRepository(conn),
		Careers:      NewCareerRepository(conn),
		Teachers:     NewTeacherRepository(conn),
		Students:     NewStudentRepository(conn),
		Subjects:     NewSubjectRepository(conn),
		Periods:      NewPeriodRepository(conn),
		Enrollments:  NewEnrollmentRepository(conn),
		Activities:   NewActivityRepository(conn),
		Attendance:   NewAttendanceRepository(conn),
		Grades:       NewGradeRepository(conn),
		RecoveryPins: NewRecoveryPinRepository(conn),
	}
}
