package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/service"
)

// Scheduler runs the nightly orphan-avatar cleanup.
type Scheduler struct {
	cron    *cron.Cron
	avatars *service.AvatarService
	log     zerolog.Logger
}

func NewScheduler(avatars *service.AvatarService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		avatars: avatars,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if s.avatars == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 3 * * *", s.runCleanup); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish, up to a bound.
func (s *Scheduler) Stop() {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := s.avatars.CleanupOrphans(ctx); err != nil {
		s.log.Error().Err(err).Msg("avatar cleanup failed")
	}
}
