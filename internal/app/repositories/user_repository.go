package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/db"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

// UserRepository handles accounts. Reads join the role for its name.
type UserRepository struct {
	crudRepository[models.User]
}

func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{newCrud(conn, table[models.User]{
		name:    "usuarios",
		from:    "usuarios JOIN roles ON roles.id = usuarios.rol_id",
		columns: []string{"correo", "clave", "rol_id"},
		values: func(u *models.User) []any {
			return []any{u.Email, u.Password, u.RoleID}
		},
		selects: []string{
			"usuarios.id", "usuarios.correo", "usuarios.clave", "usuarios.rol_id",
			"roles.nombre", "usuarios.created_at", "usuarios.updated_at",
		},
		scan: func(s scanner, u *models.User) error {
			return s.Scan(&u.ID, &u.Email, &u.Password, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt)
		},
	})}
}

// GetByEmail looks an account up by its (lower-cased) email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.queryOne(ctx, r.selectBuilder().Where(squirrel.Eq{"usuarios.correo": email}))
}

// Update changes email and role only; passwords go through UpdatePassword
func (r *UserRepository) Update(ctx context.Context, id int64, u *models.User) error {
	q := r.sb.Update(r.t.name).
		Set("correo", u.Email).
		Set("rol_id", u.RoleID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	return r.exec(ctx, q, opWrite)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	q := r.sb.Update(r.t.name).
		Set("clave", hash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	return r.exec(ctx, q, opWrite)
}

// CreateWithProfile inserts the account and, when given, its teacher or
// student profile in a single transaction. Ids are written back into the
// arguments.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, teacher *models.Teacher, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		users := newCrud(tx, r.t)

		id, err := users.Create(ctx, user)
		if err != nil {
			return err
		}
		user.ID = id

		switch {
		case teacher != nil:
			teacher.UserID = &id
			teacherID, err := NewTeacherRepository(tx).Create(ctx, teacher)
			if err != nil {
				return err
			}
			teacher.ID = teacherID
		case student != nil:
			student.UserID = &id
			studentID, err := NewStudentRepository(tx).Create(ctx, student)
			if err != nil {
				return err
			}
			student.ID = studentID
		}

		logger.Debug().Int64("userID", id).Msg("User created with profile")
		return nil
	})
}

// CountByRole is used by the seeder to detect an existing administrator
func (r *UserRepository) CountByRole(ctx context.Context, roleName string) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From(r.t.from).
		Where(squirrel.Eq{"roles.nombre": roleName}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return n, nil
}
