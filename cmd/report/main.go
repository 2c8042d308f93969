// One-shot report build: prints the rendered table to stdout. Handy
// for local runs without Discord credentials.
package main

import (
	"context"
	"fmt"

	fxmodules "github.com/big21ray/soloqtracker-discord/internal/fx"
	"github.com/big21ray/soloqtracker-discord/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		fxmodules.Module,
		fx.Invoke(runOnce),
	).Run()
}

func runOnce(lc fx.Lifecycle, reporter *service.Reporter, shutdowner fx.Shutdowner, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer shutdowner.Shutdown()

				text, _, err := reporter.BuildReport(context.Background())
				if err != nil {
					logger.Error().Err(err).Msg("report build failed")
					return
				}
				fmt.Println(text)
			}()
			return nil
		},
	})
}
