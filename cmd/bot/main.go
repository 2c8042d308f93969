package main

import (
	"context"

	"github.com/big21ray/soloqtracker-discord/internal/bot"
	"github.com/big21ray/soloqtracker-discord/internal/cache"
	fxmodules "github.com/big21ray/soloqtracker-discord/internal/fx"
	"github.com/big21ray/soloqtracker-discord/internal/scheduler"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runBot),
	).Run()
}

func runBot(
	lc fx.Lifecycle,
	b *bot.Bot,
	sched *scheduler.Scheduler,
	store *cache.Store,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := b.Start(); err != nil {
				return err
			}
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			if err := b.Stop(); err != nil {
				logger.Warn().Err(err).Msg("error closing discord session")
			}
			if err := store.Flush(); err != nil {
				logger.Error().Err(err).Msg("identity cache flush failed")
			}
			logger.Info().Msg("bot stopped gracefully")
			return nil
		},
	})
}
