package riot

import (
	"context"
	"strings"

	"github.com/big21ray/soloqtracker-discord/internal/cache"
	"github.com/rs/zerolog"
)

// IdentityStore is the persistent name→puuid cache consulted before
// any network lookup. *cache.Store satisfies it.
type IdentityStore interface {
	Get(region, label string) (cache.Identity, bool)
	Put(region, label string, id cache.Identity)
}

// Resolver maps human-entered account labels to stable puuids. A
// label's mapping never changes within a run: once cached it is
// returned without a network call.
type Resolver struct {
	client *Client
	store  IdentityStore
	logger zerolog.Logger
}

func NewResolver(client *Client, store IdentityStore, logger zerolog.Logger) *Resolver {
	return &Resolver{client: client, store: store, logger: logger}
}

// SplitRiotID splits "Name#Tag" on the first separator. ok is false
// when no non-empty tag can be determined.
func SplitRiotID(label string) (name, tag string, ok bool) {
	name, tag, found := strings.Cut(label, "#")
	return name, tag, found && tag != ""
}

// Resolve returns the identity for a label within a region, from cache
// when possible. Cache misses hit Account-V1 and store the result for
// the end-of-run flush.
func (r *Resolver) Resolve(ctx context.Context, label string, region Region) (cache.Identity, error) {
	if id, ok := r.store.Get(string(region), label); ok {
		r.logger.Debug().Str("label", label).Str("region", string(region)).Msg("identity cache hit")
		return id, nil
	}

	name, tag, ok := SplitRiotID(label)
	if !ok {
		return cache.Identity{}, &ResolutionError{Label: label}
	}

	acct, err := r.client.AccountByRiotID(ctx, region, name, tag)
	if err != nil {
		return cache.Identity{}, err
	}

	id := cache.Identity{GameName: acct.GameName, TagLine: acct.TagLine, PUUID: acct.PUUID}
	r.store.Put(string(region), label, id)
	r.logger.Info().Str("label", label).Str("region", string(region)).Msg("identity resolved")
	return id, nil
}
