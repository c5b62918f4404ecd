package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcolor/pkg/observability"
)

// spinnerHooks shows search progress on a spinner.
type spinnerHooks struct {
	observability.NoopColoringHooks
	spinner *Spinner
}

func (h spinnerHooks) OnAttemptStart(_ context.Context, budget int) {
	h.spinner.SetMessage(fmt.Sprintf("Trying %d colors...", budget))
}

func (h spinnerHooks) OnRound(_ context.Context, budget, round, uncolored int) {
	h.spinner.SetMessage(fmt.Sprintf("Trying %d colors... round %d, %d uncolored", budget, round, uncolored))
}

// logCacheHooks logs cache traffic at debug level.
type logCacheHooks struct {
	logger *log.Logger
}

func (h logCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// logPipelineHooks logs pipeline stages at debug level.
type logPipelineHooks struct {
	logger *log.Logger
}

func (h logPipelineHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading graph", "source", source)
}

func (h logPipelineHooks) OnLoadComplete(_ context.Context, source string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("load complete", "source", source, "nodes", nodeCount, "duration", d.Round(time.Millisecond))
}

func (h logPipelineHooks) OnColorComplete(_ context.Context, budget int, cacheHit bool, d time.Duration, err error) {
	h.logger.Debug("color complete", "budget", budget, "cached", cacheHit, "duration", d.Round(time.Millisecond), "error", err)
}

func (h logPipelineHooks) OnValidateComplete(_ context.Context, valid bool, d time.Duration) {
	h.logger.Debug("validate complete", "valid", valid, "duration", d.Round(time.Millisecond))
}

// registerHooks installs the logging hooks for a command run.
func (c *CLI) registerHooks() {
	observability.SetCacheHooks(logCacheHooks{logger: c.Logger})
	observability.SetPipelineHooks(logPipelineHooks{logger: c.Logger})
}
