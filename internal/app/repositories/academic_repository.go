package repositories

import (
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/db"
)

// SubjectRepository handles subjects. Reads join the teacher for its names.
type SubjectRepository struct {
	crudRepository[models.Subject]
}

func NewSubjectRepository(conn db.DBTX) *SubjectRepository {
	return &SubjectRepository{newCrud(conn, table[models.Subject]{
		name:    "materias",
		from:    "materias JOIN docentes ON docentes.id = materias.docente_id",
		columns: []string{"nombre", "codigo", "creditos", "carrera_id", "docente_id"},
		values: func(s *models.Subject) []any {
			return []any{s.Name, s.Code, s.Credits, s.CareerID, s.TeacherID}
		},
		selects: append(
			qualify("materias", "id", "nombre", "codigo", "creditos", "carrera_id", "docente_id"),
			"docentes.nombre", "docentes.apellido", "materias.created_at", "materias.updated_at",
		),
		scan: func(sc scanner, s *models.Subject) error {
			return sc.Scan(&s.ID, &s.Name, &s.Code, &s.Credits, &s.CareerID, &s.TeacherID,
				&s.TeacherFirstName, &s.TeacherLastName, &s.CreatedAt, &s.UpdatedAt)
		},
	})}
}

// EnrollmentRepository handles enrollments
type EnrollmentRepository struct {
	crudRepository[models.Enrollment]
}

func NewEnrollmentRepository(conn db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{newCrud(conn, table[models.Enrollment]{
		name:    "matriculas",
		columns: []string{"estudiante_id", "periodo_id", "fecha", "estado"},
		values: func(e *models.Enrollment) []any {
			return []any{e.StudentID, e.PeriodID, e.Date.Time, e.State}
		},
		selects: qualify("matriculas", "id", "estudiante_id", "periodo_id", "fecha", "estado", "created_at", "updated_at"),
		scan: func(s scanner, e *models.Enrollment) error {
			return s.Scan(&e.ID, &e.StudentID, &e.PeriodID, &e.Date.Time, &e.State, &e.CreatedAt, &e.UpdatedAt)
		},
	})}
}

// ActivityRepository handles activities
type ActivityRepository struct {
	crudRepository[models.Activity]
}

func NewActivityRepository(conn db.DBTX) *ActivityRepository {
	return &ActivityRepository{newCrud(conn, table[models.Activity]{
		name:    "actividades",
		columns: []string{"materia_id", "nombre", "descripcion", "tipo", "fecha_entrega", "ponderacion"},
		values: func(a *models.Activity) []any {
			return []any{a.SubjectID, a.Name, a.Description, a.Kind, a.DueDate.Time, a.Weight}
		},
		selects: qualify("actividades", "id", "materia_id", "nombre", "descripcion", "tipo", "fecha_entrega", "ponderacion", "created_at", "updated_at"),
		scan: func(s scanner, a *models.Activity) error {
			return s.Scan(&a.ID, &a.SubjectID, &a.Name, &a.Description, &a.Kind, &a.DueDate.Time, &a.Weight, &a.CreatedAt, &a.UpdatedAt)
		},
	})}
}

// AttendanceRepository handles attendance records
type AttendanceRepository struct {
	crudRepository[models.Attendance]
}

func NewAttendanceRepository(conn db.DBTX) *AttendanceRepository {
	return &AttendanceRepository{newCrud(conn, table[models.Attendance]{
		name:    "asistencias",
		columns: []string{"estudiante_id", "materia_id", "fecha", "estado", "observacion"},
		values: func(a *models.Attendance) []any {
			return []any{a.StudentID, a.SubjectID, a.Date.Time, a.State, a.Notes}
		},
		selects: qualify("asistencias", "id", "estudiante_id", "materia_id", "fecha", "estado", "observacion", "created_at", "updated_at"),
		scan: func(s scanner, a *models.Attendance) error {
			return s.Scan(&a.ID, &a.StudentID, &a.SubjectID, &a.Date.Time, &a.State, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
		},
		orderBy: "asistencias.fecha DESC, asistencias.id ASC",
	})}
}

// GradeRepository handles grades
type GradeRepository struct {
	crudRepository[models.Grade]
}

func NewGradeRepository(conn db.DBTX) *GradeRepository {
	return &GradeRepository{newCrud(conn, table[models.Grade]{
		name:    "notas",
		columns: []string{"estudiante_id", "materia_id", "actividad_id", "calificacion", "observacion"},
		values: func(g *models.Grade) []any {
			return []any{g.StudentID, g.SubjectID, g.ActivityID, g.Score, g.Notes}
		},
		selects: qualify("notas", "id", "estudiante_id", "materia_id", "actividad_id", "calificacion", "observacion", "created_at", "updated_at"),
		scan: func(s scanner, g *models.Grade) error {
			return s.Scan(&g.ID, &g.StudentID, &g.SubjectID, &g.ActivityID, &g.Score, &g.Notes, &g.CreatedAt, &g.UpdatedAt)
		},
	})}
}
