package mocks

import (
	"context"
	"sync"
	"time"
)

// SentPin records one recovery email
type SentPin struct {
	To  string
	Pin string
	TTL time.Duration
}

// Mailer captures recovery emails instead of sending them
type Mailer struct {
	mu   sync.Mutex
	Sent []SentPin
	Err  error
}

func (m *Mailer) SendRecoveryPin(ctx context.Context, toEmail, pin string, ttl time.Duration) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentPin{To: toEmail, Pin: pin, TTL: ttl})
	return nil
}

// Last returns the newest captured email
func (m *Mailer) Last() (SentPin, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return SentPin{}, false
	}
	return m.Sent[len(m.Sent)-1], true
}
