package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/db"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

// RecoveryPinRepository manages password recovery PINs
type RecoveryPinRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

func NewRecoveryPinRepository(conn db.DBTX) *RecoveryPinRepository {
	return &RecoveryPinRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new PIN digest
func (r *RecoveryPinRepository) Create(ctx context.Context, userID int64, pinHash string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("pines_recuperacion").
		Columns("usuario_id", "pin_hash", "expira_en").
		Values(userID, pinHash, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create pin query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating recovery pin: %w", err)
	}
	return nil
}

// GetLatest returns the newest PIN of the user, used or not
func (r *RecoveryPinRepository) GetLatest(ctx context.Context, userID int64) (*models.RecoveryPin, error) {
	sql, args, err := r.sb.Select("id", "usuario_id", "pin_hash", "expira_en", "usado_en", "created_at").
		From("pines_recuperacion").
		Where(squirrel.Eq{"usuario_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pin query: %w", err)
	}

	pin := &models.RecoveryPin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&pin.ID, &pin.UserID, &pin.PinHash, &pin.ExpiresAt, &pin.UsedAt, &pin.CreatedAt)
	if err != nil {
		if err = translateNoRows(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving recovery pin: %w", err)
	}
	return pin, nil
}

// Replace drops every PIN of the user and stores the new digest in one
// transaction, so the account never ends up with zero or two live PINs.
func (r *RecoveryPinRepository) Replace(ctx context.Context, userID int64, pinHash string, expiresAt time.Time) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		pins := NewRecoveryPinRepository(tx)
		if err := pins.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return pins.Create(ctx, userID, pinHash, expiresAt)
	})
}

// Redeem consumes the PIN and stores the new password hash atomically.
// ErrNotFound means the PIN was already used; a failed password update rolls
// the consumption back and the PIN stays redeemable.
func (r *RecoveryPinRepository) Redeem(ctx context.Context, pinID, userID int64, passwordHash string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := NewRecoveryPinRepository(tx).MarkUsed(ctx, pinID); err != nil {
			return err
		}
		if err := NewUserRepository(tx).UpdatePassword(ctx, userID, passwordHash); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("user %d disappeared during password reset", userID)
			}
			return err
		}
		logger.Debug().Int64("userID", userID).Int64("pinID", pinID).Msg("Recovery PIN redeemed")
		return nil
	})
}

// MarkUsed consumes a PIN. Only an unused PIN can be consumed, so two
// concurrent redemptions cannot both succeed.
func (r *RecoveryPinRepository) MarkUsed(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("pines_recuperacion").
		Set("usado_en", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "usado_en": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark pin query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking recovery pin as used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired removes PINs that expired before now or were already used
func (r *RecoveryPinRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("pines_recuperacion").
		Where(squirrel.Or{
			squirrel.Lt{"expira_en": now},
			squirrel.NotEq{"usado_en": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete expired pins query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired recovery pins: %w", err)
	}
	return tag.RowsAffected(), nil
}
