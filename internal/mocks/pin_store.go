package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/registro-academico/internal/app/models"
)

// PinStore is a testify mock of services.PinStore
type PinStore struct {
	mock.Mock
}

func (m *PinStore) Replace(ctx context.Context, userID int64, pinHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, pinHash, expiresAt)
	return args.Error(0)
}

func (m *PinStore) GetLatest(ctx context.Context, userID int64) (*models.RecoveryPin, error) {
	args := m.Called(ctx, userID)
	if pin, ok := args.Get(0).(*models.RecoveryPin); ok {
		return pin, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PinStore) Redeem(ctx context.Context, pinID, userID int64, passwordHash string) error {
	args := m.Called(ctx, pinID, userID, passwordHash)
	return args.Error(0)
}

func (m *PinStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
