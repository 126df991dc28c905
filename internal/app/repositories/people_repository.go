package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/db"
)

var teacherTable = table[models.Teacher]{
	name:    "docentes",
	columns: []string{"usuario_id", "nombre", "apellido", "cedula", "correo", "telefono", "titulo"},
	values: func(t *models.Teacher) []any {
		return []any{t.UserID, t.FirstName, t.LastName, t.Cedula, t.Email, t.Phone, t.Title}
	},
	selects: qualify("docentes", "id", "usuario_id", "nombre", "apellido", "cedula", "correo", "telefono", "titulo", "imagen", "created_at", "updated_at"),
	scan: func(s scanner, t *models.Teacher) error {
		return s.Scan(&t.ID, &t.UserID, &t.FirstName, &t.LastName, &t.Cedula, &t.Email, &t.Phone, &t.Title, &t.Image, &t.CreatedAt, &t.UpdatedAt)
	},
}

// TeacherRepository handles teachers
type TeacherRepository struct {
	crudRepository[models.Teacher]
}

func NewTeacherRepository(conn db.DBTX) *TeacherRepository {
	return &TeacherRepository{newCrud(conn, teacherTable)}
}

// FindByFullName returns the teachers whose first and last name both match
func (r *TeacherRepository) FindByFullName(ctx context.Context, firstName, lastName string) ([]*models.Teacher, error) {
	return r.Search(ctx, Filter{Equals: map[string]any{"nombre": firstName, "apellido": lastName}})
}

func (r *TeacherRepository) GetImage(ctx context.Context, id int64) (*ImageRef, error) {
	return getImage(ctx, r.db, r.sb, r.t.name, id)
}

func (r *TeacherRepository) SetImage(ctx context.Context, id int64, name string) error {
	return r.exec(ctx, setImageQuery(r.sb, r.t.name, id, name), opWrite)
}

var studentTable = table[models.Student]{
	name:    "estudiantes",
	columns: []string{"usuario_id", "carrera_id", "nombre", "apellido", "cedula", "correo", "telefono", "fecha_nacimiento"},
	values: func(s *models.Student) []any {
		var birth *time.Time
		if s.BirthDate != nil {
			birth = &s.BirthDate.Time
		}
		return []any{s.UserID, s.CareerID, s.FirstName, s.LastName, s.Cedula, s.Email, s.Phone, birth}
	},
	selects: qualify("estudiantes", "id", "usuario_id", "carrera_id", "nombre", "apellido", "cedula", "correo", "telefono", "fecha_nacimiento", "imagen", "created_at", "updated_at"),
	scan: func(sc scanner, s *models.Student) error {
		var birth *time.Time
		if err := sc.Scan(&s.ID, &s.UserID, &s.CareerID, &s.FirstName, &s.LastName, &s.Cedula, &s.Email, &s.Phone, &birth, &s.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return err
		}
		s.BirthDate = nil
		if birth != nil {
			s.BirthDate = &models.Date{Time: *birth}
		}
		return nil
	},
}

// StudentRepository handles students
type StudentRepository struct {
	crudRepository[models.Student]
}

func NewStudentRepository(conn db.DBTX) *StudentRepository {
	return &StudentRepository{newCrud(conn, studentTable)}
}

func (r *StudentRepository) GetImage(ctx context.Context, id int64) (*ImageRef, error) {
	return getImage(ctx, r.db, r.sb, r.t.name, id)
}

func (r *StudentRepository) SetImage(ctx context.Context, id int64, name string) error {
	return r.exec(ctx, setImageQuery(r.sb, r.t.name, id, name), opWrite)
}

// ImageRef is the image column of a profile row and the account it belongs to
type ImageRef struct {
	UserID *int64
	Image  *string
}

func getImage(ctx context.Context, conn db.DBTX, sb squirrel.StatementBuilderType, tableName string, id int64) (*ImageRef, error) {
	sql, args, err := sb.Select("usuario_id", "imagen").From(tableName).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	ref := &ImageRef{}
	if err := conn.QueryRow(ctx, sql, args...).Scan(&ref.UserID, &ref.Image); err != nil {
		return nil, translateNoRows(err)
	}
	return ref, nil
}

func setImageQuery(sb squirrel.StatementBuilderType, tableName string, id int64, name string) squirrel.Sqlizer {
	return sb.Update(tableName).
		Set("imagen", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
}
