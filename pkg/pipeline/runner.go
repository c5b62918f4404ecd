package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphcolor/pkg/cache"
	"github.com/matzehuels/graphcolor/pkg/coloring"
	"github.com/matzehuels/graphcolor/pkg/generate"
	"github.com/matzehuels/graphcolor/pkg/graph"
	"github.com/matzehuels/graphcolor/pkg/io"
	"github.com/matzehuels/graphcolor/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of stored search results. Zero selects
	// cache.TTLColoring.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs load → color → validate → export.
//
// When the search finds no coloring, Execute returns coloring.ErrNoColoring
// together with a Result holding the loaded graph and the failed attempts;
// validation and export are skipped.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{RunID: uuid.NewString()}
	opts.Logger = opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Load
	loadStart := time.Now()
	g, seed, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph, result.Seed = g, seed
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	opts.Logger.Info("loaded graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Color
	colorStart := time.Now()
	search, hit, err := r.ColorWithCacheInfo(ctx, g, opts)
	result.Stats.ColorTime = time.Since(colorStart)
	result.Search, result.CacheHit = search, hit
	if search != nil {
		result.Stats.MaxDegree = search.MaxDegree
		result.Stats.MeanDegree = search.MeanDegree
	}
	if stderrors.Is(err, coloring.ErrNoColoring) {
		return result, err
	}
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	g.SetColors(search.Colors)
	result.Stats.ColorsUsed = search.ColorsUsed()

	opts.Logger.Info("colored graph",
		"budget", search.Budget,
		"attempts", len(search.Attempts),
		"cached", hit,
		"duration", result.Stats.ColorTime)

	// Stage 3: Validate
	validateStart := time.Now()
	report, err := r.Validate(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Report = report
	result.Stats.ValidateTime = time.Since(validateStart)

	// Stage 4: Export
	if opts.OutputFile != "" {
		exportStart := time.Now()
		if err := io.ExportJSON(g, opts.OutputFile); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		result.Stats.ExportTime = time.Since(exportStart)
		opts.Logger.Debug("exported graph", "path", opts.OutputFile, "duration", result.Stats.ExportTime)
	}

	return result, nil
}

// Load imports opts.InputFile or generates a graph. The returned seed is
// zero for imported graphs.
func (r *Runner) Load(ctx context.Context, opts Options) (*graph.Graph, uint64, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, 0, err
	}

	source := opts.InputFile
	if opts.IsGenerated() {
		source = fmt.Sprintf("%s(size=%d, max_degree=%d)", opts.Generator, opts.Size, opts.MaxDegree)
	}
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, source)

	var (
		g    *graph.Graph
		seed uint64
		err  error
	)
	if opts.IsGenerated() {
		g, seed, err = generate.Generate(generate.Options{
			Size:      opts.Size,
			MaxDegree: opts.MaxDegree,
			Kind:      opts.Generator,
			Seed:      opts.Seed,
		})
		if err == nil {
			opts.Logger.Debug("generated graph", "generator", opts.Generator, "seed", seed)
		}
	} else {
		g, err = io.ImportJSON(opts.InputFile)
	}

	count := 0
	if g != nil {
		count = g.NodeCount()
	}
	observability.Pipeline().OnLoadComplete(ctx, source, count, time.Since(start), err)
	return g, seed, err
}

// ColorWithCacheInfo runs the budget search on g with caching and reports
// whether the result came from the cache. g is not modified.
//
// Results are keyed by the graph structure (colors ignored) and the options
// that influence the search. Cache failures are logged and never fail the
// run. Only successful searches are stored.
func (r *Runner) ColorWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (*coloring.Result, bool, error) {
	r.applyLogger(&opts)
	opts.SetColoringDefaults()

	start := time.Now()
	key, keyErr := r.coloringKey(g, opts)
	if keyErr != nil {
		opts.Logger.Warn("cannot compute cache key", "error", keyErr)
	}

	if keyErr == nil && !opts.Refresh {
		if res, ok := r.lookup(ctx, key, g, opts.Logger); ok {
			observability.Pipeline().OnColorComplete(ctx, res.Budget, true, time.Since(start), nil)
			return res, true, nil
		}
	}

	res, err := coloring.Search(ctx, g, opts.ColoringOptions())
	budget := 0
	if res != nil {
		budget = res.Budget
	}
	observability.Pipeline().OnColorComplete(ctx, budget, false, time.Since(start), err)
	if err != nil {
		return res, false, err
	}

	if keyErr == nil {
		r.store(ctx, key, res, opts.Logger)
	}
	return res, false, nil
}

// Color is a convenience wrapper that calls ColorWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Color(ctx context.Context, g *graph.Graph, opts Options) (*coloring.Result, error) {
	res, _, err := r.ColorWithCacheInfo(ctx, g, opts)
	return res, err
}

// Validate checks the current colors of g.
func (r *Runner) Validate(ctx context.Context, g *graph.Graph, opts Options) (coloring.Report, error) {
	opts.SetColoringDefaults()
	start := time.Now()
	report, err := coloring.ValidateGraph(ctx, g, opts.ColoringOptions())
	if err != nil {
		return coloring.Report{}, err
	}
	observability.Pipeline().OnValidateComplete(ctx, report.Valid, time.Since(start))
	return report, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// GraphHash hashes the structure of g, ignoring its colors.
func GraphHash(g *graph.Graph) (string, error) {
	bare := g.Clone()
	bare.ResetColors()
	data, err := io.MarshalJSON(bare)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func (r *Runner) coloringKey(g *graph.Graph, opts Options) (string, error) {
	h, err := GraphHash(g)
	if err != nil {
		return "", err
	}
	return r.Keyer.ColoringKey(h, opts.ColoringKeyOpts()), nil
}

func (r *Runner) lookup(ctx context.Context, key string, g *graph.Graph, logger *log.Logger) (*coloring.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "coloring")
		return nil, false
	}

	var res coloring.Result
	if err := json.Unmarshal(data, &res); err != nil || len(res.Colors) != g.NodeCount() {
		logger.Warn("discarding unreadable cache entry", "key", key)
		observability.Cache().OnCacheMiss(ctx, "coloring")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "coloring")
	logger.Debug("cache hit", "key", key)
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *coloring.Result, logger *log.Logger) {
	data, err := json.Marshal(res)
	if err != nil {
		logger.Warn("cannot encode result for cache", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
		logger.Warn("cache store failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "coloring", len(data))
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLColoring
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
