package services

import (
	"context"
	"fmt"

	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// TeacherFinder resolves a teacher from the names a subject is submitted with
type TeacherFinder interface {
	FindByFullName(ctx context.Context, firstName, lastName string) ([]*models.Teacher, error)
}

// NewSubjectService resolves docente_nombre/docente_apellido to a single
// teacher row before the subject is written. Request validation only checks
// each name on its own, so a first name and a last name of two different
// teachers pass validation and are rejected here.
func NewSubjectService(store Store[models.Subject], teachers TeacherFinder) CrudService[models.Subject] {
	return NewCrudService[models.Subject](store, "la materia", func(ctx context.Context, _, s *models.Subject) error {
		matches, err := teachers.FindByFullName(ctx, s.TeacherFirstName, s.TeacherLastName)
		if err != nil {
			return fmt.Errorf("failed to resolve subject teacher: %w", err)
		}

		switch len(matches) {
		case 0:
			return apperrors.NewFieldError("docente_nombre", "No existe un docente con ese nombre y apellido")
		case 1:
			s.TeacherID = matches[0].ID
			return nil
		default:
			return apperrors.NewFieldError("docente_apellido", "Hay más de un docente con ese nombre y apellido")
		}
	})
}
