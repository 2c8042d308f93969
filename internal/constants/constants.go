package constants

import "time"

// Riot client retry policy defaults.
const (
	DefaultFetchRetries = 10
	ExternalAPITimeout  = 10 * time.Second
	DefaultFetchBackoff = 1.5
	RateLimitSleepCap   = 60 * time.Second
	TransientSleepCap   = 30 * time.Second
)

const (
	// Match-V5 returns at most one page of ids per call. Ranked counts
	// above this per window are under-reported; the limitation is kept
	// as-is rather than paginated over.
	MatchPageSize = 100
)

const (
	RunTimeout = 10 * time.Minute
)
