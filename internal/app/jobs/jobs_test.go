package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(ctx context.Context) (int64, error) {
	p.calls.Add(1)
	return 3, p.err
}

func TestNewScheduler_RejectsInvalidSchedule(t *testing.T) {
	_, err := NewScheduler("not a schedule", &countingPurger{}, zerolog.Nop())
	require.Error(t, err)
}

func TestScheduler_RunsCleanup(t *testing.T) {
	purger := &countingPurger{}
	s, err := NewScheduler("@every 1s", purger, zerolog.Nop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return purger.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_PurgeErrorIsContained(t *testing.T) {
	purger := &countingPurger{err: errors.New("db down")}
	s, err := NewScheduler("@every 1h", purger, zerolog.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() { s.purgePins(purger) })
	assert.Equal(t, int32(1), purger.calls.Load())
}
