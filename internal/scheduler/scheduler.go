// Package scheduler fires the daily report delivery on a cron
// expression in the configured timezone.
package scheduler

import (
	"fmt"
	"time"

	"github.com/big21ray/soloqtracker-discord/internal/bot"
	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	cron   *cron.Cron
	spec   string
	logger zerolog.Logger
}

func New(cfg *config.Config, b *bot.Bot, loc *time.Location, logger zerolog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.ReportCron, b.DeliverDailyReport); err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", cfg.ReportCron, err)
	}
	return &Scheduler{cron: c, spec: cfg.ReportCron, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Str("schedule", s.spec).Msg("report scheduler started")
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("report scheduler stopped")
}
