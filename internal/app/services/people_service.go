package services

import (
	"context"

	"github.com/yigit/registro-academico/internal/app/models"
)

// NewTeacherService builds the teacher service. An editar payload without
// usuario_id keeps the account link of the stored row, as does the student one.
func NewTeacherService(store Store[models.Teacher]) CrudService[models.Teacher] {
	return NewCrudService[models.Teacher](store, "el docente", func(_ context.Context, current, t *models.Teacher) error {
		if current != nil && t.UserID == nil {
			t.UserID = current.UserID
		}
		return nil
	})
}

func NewStudentService(store Store[models.Student]) CrudService[models.Student] {
	return NewCrudService[models.Student](store, "el estudiante", func(_ context.Context, current, s *models.Student) error {
		if current != nil && s.UserID == nil {
			s.UserID = current.UserID
		}
		return nil
	})
}
