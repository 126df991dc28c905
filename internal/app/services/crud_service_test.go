package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/mocks"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

func TestCrudService_CreateReturnsStoredRecord(t *testing.T) {
	store := mocks.NewMemoryStore[models.Career]()
	svc := NewCrudService[models.Career](store, "la carrera", nil)

	created, err := svc.Create(context.Background(), &models.Career{Name: "Software", Duration: 8})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Software", created.Name)
	assert.Equal(t, 1, store.Len())
}

func TestCrudService_GetMissingIsNotFound(t *testing.T) {
	svc := NewCrudService[models.Career](mocks.NewMemoryStore[models.Career](), "la carrera", nil)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "No se encontró la carrera con id 42", err.Error())
}

func TestCrudService_UpdateAndDelete(t *testing.T) {
	store := mocks.NewMemoryStore(models.Career{ID: 3, Name: "Redes", Duration: 6})
	svc := NewCrudService[models.Career](store, "la carrera", nil)
	ctx := context.Background()

	updated, err := svc.Update(ctx, 3, &models.Career{Name: "Telemática", Duration: 8})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
	assert.Equal(t, "Telemática", updated.Name)

	deleted, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Telemática", deleted.Name)
	assert.Zero(t, store.Len())

	_, err = svc.Delete(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCrudService_StoreErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "duplicate becomes a field error",
			storeErr: &repositories.ConstraintError{Table: "carreras", Field: "nombre", Err: repositories.ErrDuplicate},
			check: func(t *testing.T, err error) {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"nombre: Ya existe un registro con ese valor"}, verr.Messages())
			},
		},
		{
			name:     "missing reference becomes a field error",
			storeErr: &repositories.ConstraintError{Table: "carreras", Field: "facultad_id", Err: repositories.ErrInvalidReference},
			check: func(t *testing.T, err error) {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "facultad_id", verr.Fields[0].Field)
			},
		},
		{
			name:     "value wider than its column is a bad request",
			storeErr: fmt.Errorf("carreras: %w", repositories.ErrValueTooLong),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrBadRequest)
				msg, public := apperrors.PublicMessage(err)
				assert.True(t, public)
				assert.Equal(t, "Uno de los valores supera la longitud permitida", msg)
			},
		},
		{
			name:     "unknown errors stay internal",
			storeErr: errors.New("connection reset"),
			check: func(t *testing.T, err error) {
				_, public := apperrors.PublicMessage(err)
				assert.False(t, public)
				var verr *apperrors.ValidationError
				assert.False(t, errors.As(err, &verr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMemoryStore[models.Career]()
			store.CreateErr = tt.storeErr
			svc := NewCrudService[models.Career](store, "la carrera", nil)

			_, err := svc.Create(context.Background(), &models.Career{Name: "Software"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCrudService_DeleteReferencedIsConflict(t *testing.T) {
	store := mocks.NewMemoryStore(models.Career{ID: 1, Name: "Software"})
	store.DeleteErr = repositories.ErrReferenced
	svc := NewCrudService[models.Career](store, "la carrera", nil)

	_, err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "la carrera")
	assert.Equal(t, 1, store.Len())
}

func TestCrudService_PrepareErrorStopsTheWrite(t *testing.T) {
	store := mocks.NewMemoryStore[models.Career]()
	boom := apperrors.NewFieldError("nombre", "Nombre reservado")
	svc := NewCrudService[models.Career](store, "la carrera", func(ctx context.Context, current, item *models.Career) error {
		assert.Nil(t, current)
		return boom
	})

	_, err := svc.Create(context.Background(), &models.Career{Name: "Admin"})
	assert.Equal(t, boom, err)
	assert.Zero(t, store.Len())
}

func TestSubjectService_ResolvesTeacherPair(t *testing.T) {
	teachers := mocks.NewMemoryStore(
		models.Teacher{ID: 1, FirstName: "Ana", LastName: "Pérez"},
		models.Teacher{ID: 2, FirstName: "Luis", LastName: "Mora"},
		models.Teacher{ID: 3, FirstName: "Luis", LastName: "Mora"},
	)
	finder := teacherFinderFunc(func(ctx context.Context, first, last string) ([]*models.Teacher, error) {
		all, _ := teachers.List(ctx)
		var out []*models.Teacher
		for _, t := range all {
			if t.FirstName == first && t.LastName == last {
				out = append(out, t)
			}
		}
		return out, nil
	})

	svc := NewSubjectService(mocks.NewMemoryStore[models.Subject](), finder)
	ctx := context.Background()

	t.Run("single match sets the teacher id", func(t *testing.T) {
		s, err := svc.Create(ctx, &models.Subject{Name: "Bases de Datos", TeacherFirstName: "Ana", TeacherLastName: "Pérez"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.TeacherID)
	})

	t.Run("names of different teachers are rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.Subject{Name: "Redes", TeacherFirstName: "Ana", TeacherLastName: "Mora"})
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "docente_nombre", verr.Fields[0].Field)
	})

	t.Run("ambiguous pair is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.Subject{Name: "Redes", TeacherFirstName: "Luis", TeacherLastName: "Mora"})
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "docente_apellido", verr.Fields[0].Field)
	})
}

func TestTeacherService_EditKeepsAccountLink(t *testing.T) {
	userID := int64(9)
	store := mocks.NewMemoryStore(models.Teacher{ID: 1, UserID: &userID, FirstName: "Ana"})
	svc := NewTeacherService(store)

	updated, err := svc.Update(context.Background(), 1, &models.Teacher{FirstName: "Ana María"})
	require.NoError(t, err)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, userID, *updated.UserID)
	assert.Equal(t, "Ana María", updated.FirstName)
}

type teacherFinderFunc func(ctx context.Context, first, last string) ([]*models.Teacher, error)

func (f teacherFinderFunc) FindByFullName(ctx context.Context, first, last string) ([]*models.Teacher, error) {
	return f(ctx, first, last)
}
