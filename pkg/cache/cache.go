// Package cache stores finished colorings so repeated runs on the same graph
// skip the budget search.
//
// A [Cache] is a byte store with optional expiry. Three backends exist:
//
//   - [FileCache]: entries as JSON files under a directory (CLI default)
//   - [RedisCache]: entries in a Redis database, shared between machines
//   - [NullCache]: stores nothing (caching disabled)
//
// Keys come from a [Keyer] so callers never build key strings by hand:
//
//	key := keyer.ColoringKey(cache.Hash(graphBytes), cache.ColoringKeyOpts{MaxRounds: 0})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    // decode the cached result
//	}
package cache

import (
	"context"
	"time"
)

// TTLColoring is how long a cached coloring stays valid.
const TTLColoring = 7 * 24 * time.Hour

// Cache is a key/value byte store.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ColoringKey returns the key of the search result for a graph.
	ColoringKey(graphHash string, opts ColoringKeyOpts) string
}

// ColoringKeyOpts holds the options that change a search result.
// Worker and partition counts don't and are left out.
type ColoringKeyOpts struct {
	MaxRounds int `json:"max_rounds"`
}

// DefaultKeyer produces keys of the form "coloring:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ColoringKey hashes the graph hash together with opts.
func (k *DefaultKeyer) ColoringKey(graphHash string, opts ColoringKeyOpts) string {
	return hashKey("coloring", graphHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
