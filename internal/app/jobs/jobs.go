package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PinPurger deletes recovery PINs that can no longer be redeemed
type PinPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler runs the periodic maintenance jobs
type Scheduler struct {
	cron   *cron.Cron
	logger zerolog.Logger
}

// NewScheduler registers the recovery PIN cleanup on schedule (standard cron
// syntax or descriptors such as "@every 1h").
func NewScheduler(schedule string, purger PinPurger, logger zerolog.Logger) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, logger: logger}

	if _, err := c.AddFunc(schedule, func() { s.purgePins(purger) }); err != nil {
		return nil, fmt.Errorf("invalid recovery cleanup schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) purgePins(purger PinPurger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Recovery PIN cleanup failed")
		return
	}
	s.logger.Debug().Int64("deleted", n).Msg("Recovery PIN cleanup finished")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Int("jobs", len(s.cron.Entries())).Msg("Scheduler started")
}

// Stop stops scheduling and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn().Msg("Scheduler stop timed out with jobs still running")
	}
}
