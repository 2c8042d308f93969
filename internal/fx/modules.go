package fx

import (
	"time"

	"github.com/big21ray/soloqtracker-discord/internal/bot"
	"github.com/big21ray/soloqtracker-discord/internal/cache"
	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/big21ray/soloqtracker-discord/internal/logger"
	"github.com/big21ray/soloqtracker-discord/internal/report"
	"github.com/big21ray/soloqtracker-discord/internal/riot"
	"github.com/big21ray/soloqtracker-discord/internal/scheduler"
	"github.com/big21ray/soloqtracker-discord/internal/service"
	"github.com/big21ray/soloqtracker-discord/internal/stats"
	"github.com/big21ray/soloqtracker-discord/internal/todo"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideLocation(cfg *config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Timezone)
}

func ProvideCache(cfg *config.Config, logger zerolog.Logger) *cache.Store {
	return cache.Open(cfg.CachePath, logger)
}

func ProvideResolver(client *riot.Client, store *cache.Store, logger zerolog.Logger) *riot.Resolver {
	return riot.NewResolver(client, store, logger)
}

func ProvideCollector(client *riot.Client, logger zerolog.Logger) *stats.Collector {
	return stats.NewCollector(client, logger)
}

func ProvideAggregator(resolver *riot.Resolver, collector *stats.Collector, cfg *config.Config, logger zerolog.Logger) *report.Aggregator {
	return report.NewAggregator(resolver, collector, cfg, logger)
}

func ProvideTodoList(cfg *config.Config, logger zerolog.Logger) *todo.List {
	return todo.NewList(cfg.TodoPath, logger)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(ProvideLocation),
	fx.Provide(ProvideCache),
	// riot pipeline
	fx.Provide(riot.NewClient),
	fx.Provide(ProvideResolver),
	fx.Provide(ProvideCollector),
	fx.Provide(ProvideAggregator),
	fx.Provide(report.NewRenderer),
	fx.Provide(service.NewReporter),
	// glue
	fx.Provide(ProvideTodoList),
	fx.Provide(bot.New),
	fx.Provide(scheduler.New),
)
