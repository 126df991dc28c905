package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/registro-academico/internal/app/models"
)

// UserStore is a testify mock of services.UserStore
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateWithProfile assigns the id configured through Run, when any
func (m *UserStore) CreateWithProfile(ctx context.Context, user *models.User, teacher *models.Teacher, student *models.Student) error {
	args := m.Called(ctx, user, teacher, student)
	return args.Error(0)
}
