// Package observability lets callers watch coloring runs without the
// libraries depending on a metrics or tracing backend.
//
// Three hook interfaces cover the budget search ([ColoringHooks]), the CLI
// pipeline ([PipelineHooks]) and the result cache ([CacheHooks]). Each starts
// out as a no-op and can be replaced once at startup:
//
//	observability.SetColoringHooks(progressHooks{bar: bar})
//
// Library code fetches the current hooks at the call site:
//
//	observability.Coloring().OnRound(ctx, budget, round, uncolored)
//
// Hooks are called synchronously from the goroutine driving the search, so
// implementations should return quickly.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Coloring Hooks
// =============================================================================

// ColoringHooks receives events from the coloring driver and budget search.
type ColoringHooks interface {
	// Search events
	OnSearchStart(ctx context.Context, nodeCount, maxDegree int)
	OnSearchComplete(ctx context.Context, budget int, duration time.Duration, err error)

	// Attempt events (one attempt per budget)
	OnAttemptStart(ctx context.Context, budget int)
	OnAttemptComplete(ctx context.Context, budget int, state string, rounds int, duration time.Duration)

	// OnRound is called after every round with the fresh uncolored count.
	OnRound(ctx context.Context, budget, round, uncolored int)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the load → color → validate pipeline.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, nodeCount int, duration time.Duration, err error)

	OnColorComplete(ctx context.Context, budget int, cacheHit bool, duration time.Duration, err error)

	OnValidateComplete(ctx context.Context, valid bool, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopColoringHooks is a no-op implementation of ColoringHooks.
type NoopColoringHooks struct{}

func (NoopColoringHooks) OnSearchStart(context.Context, int, int)                            {}
func (NoopColoringHooks) OnSearchComplete(context.Context, int, time.Duration, error)        {}
func (NoopColoringHooks) OnAttemptStart(context.Context, int)                                {}
func (NoopColoringHooks) OnAttemptComplete(context.Context, int, string, int, time.Duration) {}
func (NoopColoringHooks) OnRound(context.Context, int, int, int)                             {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnColorComplete(context.Context, int, bool, time.Duration, error)  {}
func (NoopPipelineHooks) OnValidateComplete(context.Context, bool, time.Duration)           {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Registry
// =============================================================================

var (
	mu       sync.RWMutex
	coloring ColoringHooks = NoopColoringHooks{}
	pipeline PipelineHooks = NoopPipelineHooks{}
	cache    CacheHooks    = NoopCacheHooks{}
)

// SetColoringHooks replaces the coloring hooks. Nil is ignored.
func SetColoringHooks(h ColoringHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	coloring = h
	mu.Unlock()
}

// SetPipelineHooks replaces the pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	pipeline = h
	mu.Unlock()
}

// SetCacheHooks replaces the cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	cache = h
	mu.Unlock()
}

// Coloring returns the current coloring hooks.
func Coloring() ColoringHooks {
	mu.RLock()
	defer mu.RUnlock()
	return coloring
}

// Pipeline returns the current pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipeline
}

// Cache returns the current cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cache
}

// Reset restores the no-op hooks. Tests use it to undo registrations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	coloring = NoopColoringHooks{}
	pipeline = NoopPipelineHooks{}
	cache = NoopCacheHooks{}
}
