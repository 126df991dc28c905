package services

import (
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/pkg/auth"
	"github.com/yigit/registro-academico/internal/pkg/email"
	"github.com/yigit/registro-academico/internal/pkg/filestorage"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

// Services defined in this package:
// - CrudService: listar/guardar/editar/eliminar/busqueda for every entity
// - AuthService: registration, login and token checks
// - RecoveryService: password recovery with emailed PINs
// - ImageService: teacher and student profile images
type Services struct {
	Roles       CrudService[models.Role]
	Users       CrudService[models.User]
	Careers     CrudService[models.Career]
	Teachers    CrudService[models.Teacher]
	Students    CrudService[models.Student]
	Subjects    CrudService[models.Subject]
	Periods     CrudService[models.Period]
	Enrollments CrudService[models.Enrollment]
	Activities  CrudService[models.Activity]
	Attendance  CrudService[models.Attendance]
	Grades      CrudService[models.Grade]

	Auth     AuthService
	Recovery RecoveryService
	Images   ImageService
}

// Dependencies are the collaborators the services are built from
type Dependencies struct {
	Repos       *repositories.Repositories
	Hasher      PasswordHasher
	Tokens      TokenIssuer
	Mailer      email.Mailer
	Storage     filestorage.ImageStorage
	Recovery    RecoveryConfig
	MaxImageLen int64
}

// NewServices wires every service on top of the repositories
func NewServices(deps Dependencies) *Services {
	r := deps.Repos
	return &Services{
		Roles:       NewCrudService[models.Role](r.Roles, "el rol", nil),
		Users:       NewCrudService[models.User](r.Users, "el usuario", nil),
		Careers:     NewCrudService[models.Career](r.Careers, "la carrera", nil),
		Teachers:    NewTeacherService(r.Teachers),
		Students:    NewStudentService(r.Students),
		Subjects:    NewSubjectService(r.Subjects, r.Teachers),
		Periods:     NewCrudService[models.Period](r.Periods, "el periodo", nil),
		Enrollments: NewCrudService[models.Enrollment](r.Enrollments, "la matrícula", nil),
		Activities:  NewCrudService[models.Activity](r.Activities, "la actividad", nil),
		Attendance:  NewCrudService[models.Attendance](r.Attendance, "la asistencia", nil),
		Grades:      NewCrudService[models.Grade](r.Grades, "la nota", nil),

		Auth:     NewAuthService(r.Users, r.Teachers, r.Students, deps.Hasher, deps.Tokens, logger.WithComponent("auth")),
		Recovery: NewRecoveryService(r.Users, r.RecoveryPins, deps.Mailer, deps.Hasher, deps.Recovery, logger.WithComponent("recovery")),
		Images:   NewImageService(deps.Storage, deps.MaxImageLen, logger.WithComponent("images")),
	}
}

var (
	_ PasswordHasher = (*auth.PasswordHasher)(nil)
	_ TokenIssuer    = (*auth.JWTService)(nil)
)
