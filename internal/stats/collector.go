// Package stats derives per-account ranked activity from the Riot API:
// match counts in a trailing window, the most recent game time and the
// current solo queue standing.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/big21ray/soloqtracker-discord/internal/constants"
	"github.com/big21ray/soloqtracker-discord/internal/domain"
	"github.com/big21ray/soloqtracker-discord/internal/riot"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const soloQueue = "RANKED_SOLO_5x5"

// API is the slice of the riot client the collector uses. *riot.Client
// satisfies it.
type API interface {
	MatchIDsByPUUID(ctx context.Context, region riot.Region, puuid string, opts riot.MatchIDsOptions) ([]string, error)
	LeagueEntriesByPUUID(ctx context.Context, region riot.Region, puuid string) ([]riot.LeagueEntryDTO, error)
	MatchByID(ctx context.Context, region riot.Region, matchID string) (*riot.MatchDTO, error)
}

type Collector struct {
	client API
	logger zerolog.Logger
}

func NewCollector(client API, logger zerolog.Logger) *Collector {
	return &Collector{client: client, logger: logger}
}

// CountRankedMatches returns the number of ranked matches in the
// trailing window of windowDays days. Only the first page of ids is
// requested, so windows with more than constants.MatchPageSize games
// under-report.
func (c *Collector) CountRankedMatches(ctx context.Context, acct domain.Account, windowDays int) (int, error) {
	now := time.Now()
	ids, err := c.client.MatchIDsByPUUID(ctx, acct.Region, acct.PUUID, riot.MatchIDsOptions{
		StartTime: now.Add(-time.Duration(windowDays) * 24 * time.Hour).Unix(),
		EndTime:   now.Unix(),
		Type:      "ranked",
		Count:     constants.MatchPageSize,
	})
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// CurrentRank returns the solo queue standing formatted as
// "<TIER> <DIVISION> - <LP> LP", or domain.Unranked when the account
// has no solo queue entry.
func (c *Collector) CurrentRank(ctx context.Context, acct domain.Account) (string, error) {
	entries, err := c.client.LeagueEntriesByPUUID(ctx, acct.Region, acct.PUUID)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.QueueType == soloQueue {
			return fmt.Sprintf("%s %s - %d LP", e.Tier, e.Rank, e.LeaguePoints), nil
		}
	}
	return domain.Unranked, nil
}

// LastMatchTimestamp returns the start time of the most recent match
// in epoch milliseconds, or 0 when the account has no matches.
func (c *Collector) LastMatchTimestamp(ctx context.Context, acct domain.Account) (int64, error) {
	ids, err := c.client.MatchIDsByPUUID(ctx, acct.Region, acct.PUUID, riot.MatchIDsOptions{Count: 1})
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	match, err := c.client.MatchByID(ctx, acct.Region, ids[0])
	if err != nil {
		return 0, err
	}
	return match.Info.GameStartTimestamp, nil
}

// Collect runs the stat operations concurrently through the shared
// client. Each operation fails independently into its result; one
// failure never aborts the others.
func (c *Collector) Collect(ctx context.Context, acct domain.Account) domain.AccountStats {
	var s domain.AccountStats

	g := new(errgroup.Group)
	g.Go(func() error {
		s.Matches24h = domain.Wrap(c.CountRankedMatches(ctx, acct, 1))
		return nil
	})
	g.Go(func() error {
		s.Matches7d = domain.Wrap(c.CountRankedMatches(ctx, acct, 7))
		return nil
	})
	g.Go(func() error {
		s.LastMatchMs = domain.Wrap(c.LastMatchTimestamp(ctx, acct))
		return nil
	})
	g.Go(func() error {
		s.Rank = domain.Wrap(c.CurrentRank(ctx, acct))
		return nil
	})
	g.Wait()

	for _, failure := range []error{s.Matches24h.Err, s.Matches7d.Err, s.LastMatchMs.Err, s.Rank.Err} {
		if failure != nil {
			c.logger.Warn().Err(failure).Str("account", acct.Label).Msg("stat operation failed, contributing neutral default")
		}
	}
	return s
}
