// Package pipeline provides the load → color → validate → export pipeline
// behind the graphcolor CLI.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: import a graph file or generate a random graph
//  2. Color: run the budget search (or reuse a cached result)
//  3. Validate: check the coloring
//  4. Export: write the colored graph to the output file
//
// Each stage can be run on its own through the [Runner].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Size:       1000,
//	    MaxDegree:  5,
//	    OutputFile: "colored.json",
//	})
//	if errors.Is(err, coloring.ErrNoColoring) {
//	    // result.Search.Attempts still describes what was tried
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcolor/pkg/cache"
	"github.com/matzehuels/graphcolor/pkg/coloring"
	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/generate"
	"github.com/matzehuels/graphcolor/pkg/graph"
)

// DefaultGenerator is the generator used when none is given.
const DefaultGenerator = generate.UAG

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options: either InputFile, or Size and MaxDegree.
	InputFile string        `json:"input_file,omitempty"`
	Size      int           `json:"size,omitempty"`
	MaxDegree int           `json:"max_degree,omitempty"`
	Generator generate.Kind `json:"generator,omitempty"`
	Seed      uint64        `json:"seed,omitempty"`

	// Output file for the colored graph. Empty skips the export stage.
	OutputFile string `json:"output_file,omitempty"`

	// Coloring options
	Workers    int  `json:"workers,omitempty"`
	Partitions int  `json:"partitions,omitempty"`
	MaxRounds  int  `json:"max_rounds,omitempty"`
	Refresh    bool `json:"refresh,omitempty"` // Skip the cache lookup, still store the result

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Graph is the loaded graph carrying the final colors.
	Graph *graph.Graph

	// Seed is the generator seed, zero for imported graphs.
	Seed uint64

	// Search is the budget search result. It is set even when the search
	// returned coloring.ErrNoColoring.
	Search *coloring.Result

	// Report is the validator verdict on Graph.
	Report coloring.Report

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Search came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	MaxDegree    int
	MeanDegree   float64
	ColorsUsed   int
	LoadTime     time.Duration
	ColorTime    time.Duration
	ValidateTime time.Duration
	ExportTime   time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if o.OutputFile != "" {
		if err := errors.ValidatePath(o.OutputFile); err != nil {
			return err
		}
	}
	o.SetColoringDefaults()
	o.validated = true
	return nil
}

// ValidateForLoad checks that exactly one graph source is configured.
func (o *Options) ValidateForLoad() error {
	generating := o.Size != 0 || o.MaxDegree != 0
	switch {
	case o.InputFile != "" && generating:
		return errors.New(errors.ErrCodeInvalidArguments, "input file and size/max degree cannot be specified together")
	case o.InputFile == "" && o.Size == 0:
		return errors.New(errors.ErrCodeInvalidArguments, "either an input file or both size and max degree must be specified")
	case o.InputFile != "":
		if err := errors.ValidatePath(o.InputFile); err != nil {
			return err
		}
	default:
		if err := errors.ValidateGenerationParams(o.Size, o.MaxDegree); err != nil {
			return err
		}
		kind, err := generate.ParseKind(string(o.Generator))
		if err != nil {
			return err
		}
		o.Generator = kind
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetColoringDefaults fills in defaults for the coloring stage.
func (o *Options) SetColoringDefaults() {
	if o.Workers < 0 {
		o.Workers = 0
	}
	if o.Partitions < 0 {
		o.Partitions = 0
	}
	if o.MaxRounds < 0 {
		o.MaxRounds = 0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsGenerated reports whether the graph comes from a generator.
func (o *Options) IsGenerated() bool {
	return o.InputFile == ""
}

// ColoringOptions returns the options passed to the coloring package.
func (o *Options) ColoringOptions() coloring.Options {
	return coloring.Options{
		Partitions: o.Partitions,
		Workers:    o.Workers,
		MaxRounds:  o.MaxRounds,
		Logger:     o.Logger,
	}
}

// ColoringKeyOpts returns cache key options for the search result.
func (o *Options) ColoringKeyOpts() cache.ColoringKeyOpts {
	return cache.ColoringKeyOpts{MaxRounds: o.MaxRounds}
}
