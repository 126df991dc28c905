package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

// Store is the persistence surface shared by every entity repository
type Store[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (int64, error)
	Update(ctx context.Context, id int64, item *T) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f repositories.Filter) ([]*T, error)
	ExistsWhere(ctx context.Context, where map[string]any, excludeID int64) (bool, error)
}

// CrudService defines the listar/guardar/editar/eliminar/busqueda operations
// of one entity
type CrudService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id int64, item *T) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
	Search(ctx context.Context, f repositories.Filter) ([]*T, error)
}

// PrepareFunc runs before a write, after request validation. current is the
// stored row on update and nil on create.
type PrepareFunc[T any] func(ctx context.Context, current, item *T) error

type crudServiceImpl[T any] struct {
	store   Store[T]
	label   string
	prepare PrepareFunc[T]
	logger  zerolog.Logger
}

// NewCrudService builds the service. label names one entity with its article
// ("la carrera") and is used in client messages.
func NewCrudService[T any](store Store[T], label string, prepare PrepareFunc[T]) CrudService[T] {
	return &crudServiceImpl[T]{
		store:   store,
		label:   label,
		prepare: prepare,
		logger:  logger.WithComponent("service").With().Str("entity", label).Logger(),
	}
}

func (s *crudServiceImpl[T]) List(ctx context.Context) ([]*T, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.label, err)
	}
	return items, nil
}

func (s *crudServiceImpl[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id)
	}
	return item, nil
}

func (s *crudServiceImpl[T]) Create(ctx context.Context, item *T) (*T, error) {
	if s.prepare != nil {
		if err := s.prepare(ctx, nil, item); err != nil {
			return nil, err
		}
	}

	id, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, s.mapError(err, 0)
	}
	s.logger.Info().Int64("id", id).Msg("Record created")

	return s.Get(ctx, id)
}

func (s *crudServiceImpl[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.prepare != nil {
		if err := s.prepare(ctx, current, item); err != nil {
			return nil, err
		}
	}

	if err := s.store.Update(ctx, id, item); err != nil {
		return nil, s.mapError(err, id)
	}
	s.logger.Info().Int64("id", id).Msg("Record updated")

	return s.Get(ctx, id)
}

// Delete returns the removed record
func (s *crudServiceImpl[T]) Delete(ctx context.Context, id int64) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return nil, s.mapError(err, id)
	}
	s.logger.Info().Int64("id", id).Msg("Record deleted")

	return item, nil
}

func (s *crudServiceImpl[T]) Search(ctx context.Context, f repositories.Filter) ([]*T, error) {
	items, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", s.label, err)
	}
	return items, nil
}

func (s *crudServiceImpl[T]) mapError(err error, id int64) error {
	return mapStoreError(err, s.label, id)
}

// mapStoreError converts repository errors into the application error taxonomy
func mapStoreError(err error, label string, id int64) error {
	var constraint *repositories.ConstraintError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("No se encontró %s con id %d", label, id))
	case errors.As(err, &constraint) && errors.Is(err, repositories.ErrDuplicate):
		return apperrors.NewFieldError(constraint.Field, "Ya existe un registro con ese valor")
	case errors.As(err, &constraint) && errors.Is(err, repositories.ErrInvalidReference):
		return apperrors.NewFieldError(constraint.Field, "No existe un registro con ese valor")
	case errors.Is(err, repositories.ErrValueTooLong):
		return apperrors.NewBadRequestError("Uno de los valores supera la longitud permitida")
	case errors.Is(err, repositories.ErrReferenced):
		return apperrors.NewConflictError(fmt.Sprintf("No se puede eliminar %s porque tiene registros relacionados", label))
	default:
		return fmt.Errorf("%s store failure: %w", label, err)
	}
}
