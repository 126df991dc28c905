package models

import "time"

// RecoveryPin is a single-use password recovery code. Only its digest is stored.
type RecoveryPin struct {
	ID        int64
	UserID    int64
	PinHash   string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Active reports whether the PIN can still be redeemed at now
func (p *RecoveryPin) Active(now time.Time) bool {
	return p.UsedAt == nil && now.Before(p.ExpiresAt)
}
