package validators

import (
	"context"
	"regexp"

	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/pkg/validation"
)

var (
	codePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	pinPattern  = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
)

// Tables are the existence checkers the rule sets query
type Tables struct {
	Roles       Checker
	Users       Checker
	Careers     Checker
	Teachers    Checker
	Students    Checker
	Subjects    Checker
	Periods     Checker
	Enrollments Checker
	Activities  Checker
}

// Validators builds the rule set of every route. Rule sets are built once and
// shared between requests.
type Validators struct {
	t Tables
}

func New(t Tables) *Validators {
	return &Validators{t: t}
}

// ID validates the id query parameter of busqueda_id, editar and eliminar
func (v *Validators) ID() []*validation.Rule {
	return []*validation.Rule{validation.Query("id").ID()}
}

// WithID prepends the id query rule to rules, for editar routes
func (v *Validators) WithID(rules []*validation.Rule) []*validation.Rule {
	return append(v.ID(), rules...)
}

// ByName validates busqueda_nombre
func (v *Validators) ByName() []*validation.Rule {
	return []*validation.Rule{validation.Query("nombre").Text().Length(1, 100)}
}

// ByDate validates busqueda_fecha
func (v *Validators) ByDate() []*validation.Rule {
	return []*validation.Rule{
		validation.Query("desde").Date(),
		validation.Query("hasta").Optional().Date().Custom("Debe ser igual o posterior a desde", notBefore("desde")),
	}
}

// ByFilters validates the optional equality filters of busqueda. Every field
// is an identifier except the ones listed in text.
func (v *Validators) ByFilters(ids []string, text ...*validation.Rule) []*validation.Rule {
	rules := make([]*validation.Rule, 0, len(ids)+len(text))
	for _, f := range ids {
		rules = append(rules, validation.Query(f).Optional().ID())
	}
	return append(rules, text...)
}

func (v *Validators) Role() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("nombre").Text().Length(3, 50).
			Unique(takenBy(v.t.Roles, "nombre")).WithMessage("Ya existe un rol con ese nombre"),
		validation.Body("descripcion").Optional().Text().Length(0, 255),
	}
}

func (v *Validators) UserUpdate() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("correo").Email().
			Unique(takenBy(v.t.Users, "correo")).WithMessage("El correo ya está registrado"),
		validation.Body("rol_id").ID().
			Exists(existsByID(v.t.Roles)).WithMessage("El rol no existe"),
	}
}

func (v *Validators) Career() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("nombre").Text().Length(3, 100).
			Unique(takenBy(v.t.Careers, "nombre")).WithMessage("Ya existe una carrera con ese nombre"),
		validation.Body("descripcion").Optional().Text().Length(0, 255),
		validation.Body("duracion").IntRange(1, 20),
	}
}

func (v *Validators) Teacher() []*validation.Rule {
	return append(v.person(v.t.Teachers),
		validation.Body("titulo").Optional().Text().Length(2, 100),
	)
}

func (v *Validators) Student() []*validation.Rule {
	return append(v.person(v.t.Students),
		validation.Body("carrera_id").ID().
			Exists(existsByID(v.t.Careers)).WithMessage("La carrera no existe"),
		validation.Body("fecha_nacimiento").Optional().Date(),
	)
}

// person holds the fields teachers and students share
func (v *Validators) person(table Checker) []*validation.Rule {
	return []*validation.Rule{
		validation.Body("usuario_id").Optional().ID().
			Exists(existsByID(v.t.Users)).WithMessage("El usuario no existe").
			Unique(takenBy(table, "usuario_id")).WithMessage("El usuario ya tiene un perfil"),
		validation.Body("nombre").Text().Length(2, 50),
		validation.Body("apellido").Text().Length(2, 50),
		validation.Body("cedula").Matches(validation.CedulaPattern, "La cédula debe tener 10 dígitos").
			Unique(takenBy(table, "cedula")).WithMessage("La cédula ya está registrada"),
		validation.Body("correo").Email().
			Unique(takenBy(table, "correo")).WithMessage("El correo ya está registrado"),
		validation.Body("telefono").Optional().Matches(validation.TelefonoPattern, "El teléfono no es válido"),
	}
}

// Subject checks the teacher names independently; the service resolves the
// pair to one teacher.
func (v *Validators) Subject() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("nombre").Text().Length(3, 100),
		validation.Body("codigo").Text().Length(2, 20).Matches(codePattern, "Solo letras, números y guiones").
			Unique(takenBy(v.t.Subjects, "codigo")).WithMessage("Ya existe una materia con ese código"),
		validation.Body("creditos").IntRange(1, 10),
		validation.Body("carrera_id").ID().
			Exists(existsByID(v.t.Careers)).WithMessage("La carrera no existe"),
		validation.Body("docente_nombre").Text().Length(2, 50).
			Exists(existsBy(v.t.Teachers, "nombre")).WithMessage("No existe un docente con ese nombre"),
		validation.Body("docente_apellido").Text().Length(2, 50).
			Exists(existsBy(v.t.Teachers, "apellido")).WithMessage("No existe un docente con ese apellido"),
	}
}

func (v *Validators) Period() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("nombre").Text().Length(3, 50).
			Unique(takenBy(v.t.Periods, "nombre")).WithMessage("Ya existe un periodo con ese nombre"),
		validation.Body("fecha_inicio").Date(),
		validation.Body("fecha_fin").Date().DateAfter("fecha_inicio").WithMessage("Debe ser posterior a la fecha de inicio"),
		validation.Body("estado").OneOf(models.PeriodOpen, models.PeriodClosed),
	}
}

func (v *Validators) Enrollment() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("estudiante_id").ID().
			Exists(existsByID(v.t.Students)).WithMessage("El estudiante no existe"),
		validation.Body("periodo_id").ID().
			Exists(existsByID(v.t.Periods)).WithMessage("El periodo no existe").
			Unique(v.enrollmentTaken).WithMessage("El estudiante ya está matriculado en ese periodo"),
		validation.Body("fecha").Date(),
		validation.Body("estado").Optional().OneOf(models.EnrollmentActive, models.EnrollmentCancelled),
	}
}

func (v *Validators) enrollmentTaken(ctx context.Context, value any, in validation.Input) (bool, error) {
	studentID, ok := in.Int(validation.SourceBody, "estudiante_id")
	if !ok {
		return false, nil
	}
	return v.t.Enrollments.ExistsWhere(ctx, map[string]any{"estudiante_id": studentID, "periodo_id": value}, editedID(in))
}

func (v *Validators) Activity() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("materia_id").ID().
			Exists(existsByID(v.t.Subjects)).WithMessage("La materia no existe"),
		validation.Body("nombre").Text().Length(3, 100),
		validation.Body("descripcion").Optional().Text().Length(0, 500),
		validation.Body("tipo").OneOf("tarea", "leccion", "examen", "proyecto"),
		validation.Body("fecha_entrega").Date(),
		validation.Body("ponderacion").Number(0, 100).
			Custom("Debe ser mayor que 0", func(val any, _ validation.Input) bool {
				f, ok := validation.Float(val)
				return ok && f > 0
			}),
	}
}

func (v *Validators) Attendance() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("estudiante_id").ID().
			Exists(existsByID(v.t.Students)).WithMessage("El estudiante no existe"),
		validation.Body("materia_id").ID().
			Exists(existsByID(v.t.Subjects)).WithMessage("La materia no existe"),
		validation.Body("fecha").Date(),
		validation.Body("estado").OneOf("presente", "ausente", "atraso", "justificado"),
		validation.Body("observacion").Optional().Text().Length(0, 255),
	}
}

func (v *Validators) Grade() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("estudiante_id").ID().
			Exists(existsByID(v.t.Students)).WithMessage("El estudiante no existe"),
		validation.Body("materia_id").ID().
			Exists(existsByID(v.t.Subjects)).WithMessage("La materia no existe"),
		validation.Body("actividad_id").ID().
			Exists(existsByID(v.t.Activities)).WithMessage("La actividad no existe").
			Exists(v.activityInSubject).WithMessage("La actividad no pertenece a la materia"),
		validation.Body("calificacion").Number(0, 10),
		validation.Body("observacion").Optional().Text().Length(0, 255),
	}
}

// activityInSubject passes when materia_id is unusable; its own rule reports it
func (v *Validators) activityInSubject(ctx context.Context, value any, in validation.Input) (bool, error) {
	subjectID, ok := in.Int(validation.SourceBody, "materia_id")
	if !ok {
		return true, nil
	}
	return v.t.Activities.ExistsWhere(ctx, map[string]any{"id": value, "materia_id": subjectID}, 0)
}

// Register validates registrar. The administrator role cannot be taken by
// self-registration.
func (v *Validators) Register() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("correo").Email().
			Unique(takenBy(v.t.Users, "correo")).WithMessage("El correo ya está registrado"),
		validation.Body("clave").Text().Length(8, 72),
		validation.Body("rol_id").ID().
			Exists(existsByID(v.t.Roles)).WithMessage("El rol no existe").
			Unique(v.adminRole).WithMessage("No se puede registrar una cuenta de administrador"),
		validation.Body("perfil").Optional().OneOf(dto.ProfileTeacher, dto.ProfileStudent),
		validation.Body("nombre").RequiredWith("perfil").Text().Length(2, 50),
		validation.Body("apellido").RequiredWith("perfil").Text().Length(2, 50),
		validation.Body("cedula").RequiredWith("perfil").
			Matches(validation.CedulaPattern, "La cédula debe tener 10 dígitos").
			Unique(v.profileCedulaTaken).WithMessage("La cédula ya está registrada"),
		validation.Body("telefono").Optional().Matches(validation.TelefonoPattern, "El teléfono no es válido"),
		validation.Body("titulo").Optional().Text().Length(2, 100),
		validation.Body("carrera_id").RequiredIf("perfil", dto.ProfileStudent).ID().
			Exists(existsByID(v.t.Careers)).WithMessage("La carrera no existe"),
	}
}

func (v *Validators) adminRole(ctx context.Context, value any, _ validation.Input) (bool, error) {
	return v.t.Roles.ExistsWhere(ctx, map[string]any{"id": value, "nombre": models.RoleAdmin}, 0)
}

func (v *Validators) profileCedulaTaken(ctx context.Context, value any, in validation.Input) (bool, error) {
	profile, _ := in.String(validation.SourceBody, "perfil")
	table := v.t.Teachers
	if profile == dto.ProfileStudent {
		table = v.t.Students
	}
	return table.ExistsWhere(ctx, map[string]any{"cedula": value}, 0)
}

func (v *Validators) Login() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("correo").Email(),
		validation.Body("clave").Text(),
	}
}

func (v *Validators) Recovery() []*validation.Rule {
	return []*validation.Rule{validation.Body("correo").Email()}
}

func (v *Validators) ResetPassword() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("correo").Email(),
		validation.Body("pin").Text().Length(4, 12).Matches(pinPattern, "El PIN debe ser hexadecimal"),
		validation.Body("clave").Text().Length(8, 72),
	}
}

// notBefore passes when the date is on or after the date in other
func notBefore(other string) func(any, validation.Input) bool {
	return func(val any, in validation.Input) bool {
		s, ok := val.(string)
		if !ok {
			return false
		}
		from, ok := in.String(validation.SourceQuery, other)
		if !ok {
			return true
		}
		end, err1 := models.ParseDate(s)
		start, err2 := models.ParseDate(from)
		if err1 != nil || err2 != nil {
			return true
		}
		return !end.Before(start.Time)
	}
}
