// Package service drives one full report pipeline pass: roster →
// resolve → collect → render, then flushes the identity cache.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/big21ray/soloqtracker-discord/internal/cache"
	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/big21ray/soloqtracker-discord/internal/domain"
	"github.com/big21ray/soloqtracker-discord/internal/report"
	"github.com/big21ray/soloqtracker-discord/internal/riot"
	"github.com/big21ray/soloqtracker-discord/internal/roster"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrRunInProgress is returned when a report build is requested while
// another is still running. Runs are rejected rather than queued: the
// cache write-back is not safe against concurrent runs.
var ErrRunInProgress = errors.New("a report run is already in progress")

type Reporter struct {
	cfg           *config.Config
	defaultRegion riot.Region
	agg           *report.Aggregator
	renderer      *report.Renderer
	store         *cache.Store
	logger        zerolog.Logger

	runMu sync.Mutex
}

func NewReporter(
	cfg *config.Config,
	agg *report.Aggregator,
	renderer *report.Renderer,
	store *cache.Store,
	logger zerolog.Logger,
) (*Reporter, error) {
	region, err := riot.ParseRegion(cfg.DefaultRegion)
	if err != nil {
		return nil, err
	}
	return &Reporter{
		cfg:           cfg,
		defaultRegion: region,
		agg:           agg,
		renderer:      renderer,
		store:         store,
		logger:        logger,
	}, nil
}

// BuildReport runs the pipeline once and returns the rendered table
// plus the structured rows for richer rendering. Roster problems abort
// the run before any network call; per-account failures degrade their
// fields and the report always renders.
func (r *Reporter) BuildReport(ctx context.Context) (string, []domain.PlayerAggregate, error) {
	if !r.runMu.TryLock() {
		return "", nil, ErrRunInProgress
	}
	defer r.runMu.Unlock()

	logger := r.logger.With().Str("run_id", uuid.New().String()).Logger()
	ctx, cancel := context.WithTimeout(ctx, r.cfg.RunTimeout)
	defer cancel()

	data, err := r.cfg.RosterJSON()
	if err != nil {
		return "", nil, &roster.ConfigError{Msg: "loading roster", Err: err}
	}
	ros, err := roster.Parse(data, r.defaultRegion)
	if err != nil {
		return "", nil, err
	}

	start := time.Now()
	logger.Info().Int("players", len(ros.Players)).Msg("report run started")

	rows := r.agg.BuildRows(ctx, ros)
	text := r.renderer.Render(rows)

	if err := r.store.Flush(); err != nil {
		logger.Error().Err(err).Msg("identity cache flush failed")
	}

	logger.Info().
		Int("rows", len(rows)).
		Dur("took", time.Since(start)).
		Msg("report run finished")
	return text, rows, nil
}
