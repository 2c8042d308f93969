package domain

import (
	"github.com/big21ray/soloqtracker-discord/internal/riot"
)

// Unranked is the literal rendered when an account has no solo queue
// standing (or all rank lookups for a player failed).
const Unranked = "Unranked"

// Account is one configured game account of a roster player. PUUID is
// filled in lazily by the resolver and never changes within a run.
type Account struct {
	Label  string
	Region riot.Region
	PUUID  string
}

// Result carries one per-account operation outcome. Failed operations
// contribute neutral defaults during aggregation instead of failing
// the player.
type Result[T any] struct {
	Value T
	Err   error
}

func Wrap[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

func (r Result[T]) Ok() bool { return r.Err == nil }

// AccountStats is the outcome of the stat operations for one account.
type AccountStats struct {
	Matches24h  Result[int]
	Matches7d   Result[int]
	LastMatchMs Result[int64]
	Rank        Result[string]
}

// PlayerAggregate is one report row: stats merged across all of a
// player's accounts.
type PlayerAggregate struct {
	PlayerName          string
	Matches24h          int
	Matches7d           int
	LastMatchEpochMs    int64 // 0 = no games found
	BestRank            string
	PrimaryAccountLabel string
	Badge               string
}
