// Package report merges per-account stats into per-player rows and
// renders them as a fixed-width table.
package report

import (
	"context"

	"github.com/big21ray/soloqtracker-discord/internal/cache"
	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/big21ray/soloqtracker-discord/internal/domain"
	"github.com/big21ray/soloqtracker-discord/internal/rank"
	"github.com/big21ray/soloqtracker-discord/internal/riot"
	"github.com/big21ray/soloqtracker-discord/internal/roster"
	"github.com/rs/zerolog"
)

// Resolver yields the stable puuid for an account label.
type Resolver interface {
	Resolve(ctx context.Context, label string, region riot.Region) (cache.Identity, error)
}

// Collector gathers the per-account stat results.
type Collector interface {
	Collect(ctx context.Context, acct domain.Account) domain.AccountStats
}

// Aggregator builds one PlayerAggregate per roster player. Merge rules:
// match counts sum across accounts (a failed count contributes 0), the
// last game time is the max across accounts that returned one, and the
// best rank is picked over the successfully fetched standings. An
// account that fails to resolve is skipped; the player still renders.
type Aggregator struct {
	resolver  Resolver
	collector Collector
	badge     string
	logger    zerolog.Logger
}

func NewAggregator(resolver Resolver, collector Collector, cfg *config.Config, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		resolver:  resolver,
		collector: collector,
		badge:     cfg.ReportBadge,
		logger:    logger,
	}
}

func (a *Aggregator) BuildRows(ctx context.Context, ros *roster.Roster) []domain.PlayerAggregate {
	rows := make([]domain.PlayerAggregate, 0, len(ros.Players))
	for _, p := range ros.Players {
		rows = append(rows, a.buildRow(ctx, p))
	}
	return rows
}

func (a *Aggregator) buildRow(ctx context.Context, p roster.Player) domain.PlayerAggregate {
	agg := domain.PlayerAggregate{
		PlayerName: p.Name,
		Badge:      a.badge,
	}
	if len(p.Accounts) > 0 {
		agg.PrimaryAccountLabel = p.Accounts[0].Label
	}

	var rankCandidates []string
	for _, acct := range p.Accounts {
		id, err := a.resolver.Resolve(ctx, acct.Label, acct.Region)
		if err != nil {
			a.logger.Warn().Err(err).
				Str("player", p.Name).
				Str("account", acct.Label).
				Msg("account resolution failed, skipping account")
			continue
		}
		acct.PUUID = id.PUUID

		stats := a.collector.Collect(ctx, acct)
		if stats.Matches24h.Ok() {
			agg.Matches24h += stats.Matches24h.Value
		}
		if stats.Matches7d.Ok() {
			agg.Matches7d += stats.Matches7d.Value
		}
		if stats.LastMatchMs.Ok() && stats.LastMatchMs.Value > agg.LastMatchEpochMs {
			agg.LastMatchEpochMs = stats.LastMatchMs.Value
		}
		if stats.Rank.Ok() {
			rankCandidates = append(rankCandidates, stats.Rank.Value)
		}
	}

	if best, ok := rank.Best(rankCandidates); ok {
		agg.BestRank = best
	} else {
		agg.BestRank = domain.Unranked
	}
	return agg
}
