package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/auth"
	"github.com/yigit/registro-academico/internal/pkg/email"
)

// PinStore persists recovery PIN digests
type PinStore interface {
	// Replace swaps every pending PIN of the user for a new one atomically
	Replace(ctx context.Context, userID int64, pinHash string, expiresAt time.Time) error
	GetLatest(ctx context.Context, userID int64) (*models.RecoveryPin, error)
	// Redeem consumes the PIN and sets the password hash in one transaction.
	// It returns repositories.ErrNotFound when the PIN was already consumed.
	Redeem(ctx context.Context, pinID, userID int64, passwordHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// RecoveryConfig tunes PIN generation
type RecoveryConfig struct {
	PinLength int
	PinTTL    time.Duration
}

// RecoveryService implements password recovery with emailed PINs
type RecoveryService interface {
	RequestRecovery(ctx context.Context, req *dto.RecoveryRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type recoveryServiceImpl struct {
	users  UserStore
	pins   PinStore
	mailer email.Mailer
	hasher PasswordHasher
	config RecoveryConfig
	now    func() time.Time
	logger zerolog.Logger
}

// NewRecoveryService creates a new RecoveryService
func NewRecoveryService(users UserStore, pins PinStore, mailer email.Mailer, hasher PasswordHasher, config RecoveryConfig, logger zerolog.Logger) RecoveryService {
	return &recoveryServiceImpl{
		users:  users,
		pins:   pins,
		mailer: mailer,
		hasher: hasher,
		config: config,
		now:    time.Now,
		logger: logger,
	}
}

// RequestRecovery replaces any pending PIN of the account with a new one and
// mails it. Only the digest is stored.
func (s *recoveryServiceImpl) RequestRecovery(ctx context.Context, req *dto.RecoveryRequest) error {
	user, err := s.findUser(ctx, req.Email)
	if err != nil {
		return err
	}

	pin, err := auth.GeneratePin(s.config.PinLength)
	if err != nil {
		return fmt.Errorf("failed to generate recovery pin: %w", err)
	}

	if err := s.pins.Replace(ctx, user.ID, auth.HashPin(pin), s.now().Add(s.config.PinTTL)); err != nil {
		return err
	}

	if err := s.mailer.SendRecoveryPin(ctx, user.Email, pin, s.config.PinTTL); err != nil {
		if errors.Is(err, apperrors.ErrMailUnavailable) {
			return apperrors.NewCustomError(apperrors.ErrMailUnavailable, "No se pudo enviar el correo, intente más tarde")
		}
		return fmt.Errorf("failed to send recovery pin: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Recovery PIN issued")
	return nil
}

// ResetPassword redeems the newest PIN of the account. The PIN is consumed
// in the same transaction that stores the new password, so a failure leaves
// it usable and success leaves it spent.
func (s *recoveryServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.findUser(ctx, req.Email)
	if err != nil {
		return err
	}

	pin, err := s.pins.GetLatest(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errInvalidPin()
		}
		return err
	}

	if !pin.Active(s.now()) || !auth.PinMatches(pin.PinHash, req.Pin) {
		s.logger.Warn().Int64("userID", user.ID).Msg("Rejected recovery PIN")
		return errInvalidPin()
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.pins.Redeem(ctx, pin.ID, user.ID, hash); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errInvalidPin()
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset with recovery PIN")
	return nil
}

// PurgeExpired drops used and expired PINs
func (s *recoveryServiceImpl) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.pins.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info().Int64("deleted", n).Msg("Purged recovery PINs")
	}
	return n, nil
}

func (s *recoveryServiceImpl) findUser(ctx context.Context, rawEmail string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(rawEmail)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("No existe un usuario con ese correo")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func errInvalidPin() error {
	return apperrors.NewFieldError("pin", "PIN inválido o expirado")
}
