package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registro-academico/internal/app/models"
	appRepos "github.com/yigit/registro-academico/internal/app/repositories"
)

// RoleStore is what seeding needs from the roles table
type RoleStore interface {
	ExistsWhere(ctx context.Context, where map[string]any, excludeID int64) (bool, error)
	Create(ctx context.Context, role *appModels.Role) (int64, error)
	Search(ctx context.Context, f appRepos.Filter) ([]*appModels.Role, error)
}

// UserStore is what seeding needs from the users table
type UserStore interface {
	CountByRole(ctx context.Context, roleName string) (int64, error)
	CreateWithProfile(ctx context.Context, user *appModels.User, teacher *appModels.Teacher, student *appModels.Student) error
}

// Hasher hashes the administrator password
type Hasher interface {
	Hash(password string) (string, error)
}

// Admin is the optional bootstrap administrator account
type Admin struct {
	Email    string
	Password string
}

var defaultRoles = []appModels.Role{
	{Name: appModels.RoleAdmin, Description: "Administración completa del sistema"},
	{Name: appModels.RoleTeacher, Description: "Docente: gestiona actividades, asistencias y notas"},
	{Name: appModels.RoleStudent, Description: "Estudiante: consulta su información académica"},
}

// CreateDefaultData creates the default roles and, when configured and no
// administrator exists yet, the administrator account. It is idempotent.
func CreateDefaultData(ctx context.Context, roles RoleStore, users UserStore, hasher Hasher, admin Admin, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (roles/admin)...")
	var finalErr error

	for _, r := range defaultRoles {
		exists, err := roles.ExistsWhere(ctx, map[string]any{"nombre": r.Name}, 0)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		role := r
		if _, err := roles.Create(ctx, &role); err != nil && !errors.Is(err, appRepos.ErrDuplicate) {
			lgr.Error().Err(err).Str("role", r.Name).Msg("Error creating default role")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("role", r.Name).Msg("Default role created")
	}

	if admin.Email == "" || admin.Password == "" {
		return finalErr
	}

	if err := createAdmin(ctx, roles, users, hasher, admin, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

func createAdmin(ctx context.Context, roles RoleStore, users UserStore, hasher Hasher, admin Admin, lgr zerolog.Logger) error {
	count, err := users.CountByRole(ctx, appModels.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	found, err := roles.Search(ctx, appRepos.Filter{Equals: map[string]any{"nombre": appModels.RoleAdmin}})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("administrator role is missing")
	}

	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &appModels.User{
		Email:    strings.ToLower(strings.TrimSpace(admin.Email)),
		Password: hash,
		RoleID:   found[0].ID,
	}
	if err := users.CreateWithProfile(ctx, user, nil, nil); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Str("email", user.Email).Msg("Administrator account created")
	return nil
}
