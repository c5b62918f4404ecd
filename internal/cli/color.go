package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcolor/pkg/coloring"
	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/generate"
	"github.com/matzehuels/graphcolor/pkg/observability"
	"github.com/matzehuels/graphcolor/pkg/pipeline"
)

// colorOpts holds the command-line flags for the color command.
type colorOpts struct {
	inputFile  string // colored or uncolored graph file
	outputFile string // where the colored graph is written
	size       int    // generated graph size
	maxDegree  int    // generated graph degree cap
	generator  string // generator kind: uag or bounded
	seed       uint64 // generator seed, 0 picks one
	workers    int    // worker goroutines per round
	partitions int    // dataset partitions
	maxRounds  int    // per-budget round limit, 0 = nodes+1
	noCache    bool   // skip the result cache
}

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	var opts colorOpts

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Color a graph file or a generated random graph",
		Long: `Color a graph with the fewest colors the round-based algorithm can reach.

The graph is read from --input-file, or generated from --size and --max-degree.
The colored graph is written to --output-file.`,
		Example: `  graphcolor color --input-file graph.json --output-file colored.json
  graphcolor color --size 1000 --max-degree 5 --output-file colored.json --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			err := checkColorArgs(
				flags.Changed("input-file"),
				flags.Changed("size"),
				flags.Changed("max-degree"),
				flags.Changed("output-file"),
			)
			if err != nil {
				return err
			}
			c.applyColorConfig(cmd, &opts)
			return c.runColor(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "input-file", "i", "", "graph file to color")
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", "", "output file for the colored graph (required)")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "number of nodes of the generated graph")
	cmd.Flags().IntVarP(&opts.maxDegree, "max-degree", "d", 0, "maximum degree of the generated graph")
	cmd.Flags().StringVar(&opts.generator, "generator", string(generate.UAG), "random graph generator: uag, bounded")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generator seed (0 = random)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&opts.partitions, "partitions", 0, "dataset partitions (0 = default)")
	cmd.Flags().IntVar(&opts.maxRounds, "max-rounds", 0, "round limit per budget (0 = nodes+1)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// checkColorArgs enforces input-file XOR (size AND max-degree) plus a
// mandatory output file.
func checkColorArgs(input, size, maxDegree, output bool) error {
	switch {
	case input && (size || maxDegree):
		return errors.New(errors.ErrCodeInvalidArguments, "--input-file and --size/--max-degree cannot be specified together")
	case !input && !size && !maxDegree:
		return errors.New(errors.ErrCodeInvalidArguments, "either --input-file or both --size and --max-degree must be specified")
	case !input && size != maxDegree:
		return errors.New(errors.ErrCodeInvalidArguments, "--size and --max-degree must be specified together")
	case !output:
		return errors.New(errors.ErrCodeInvalidArguments, "--output-file is required")
	}
	return nil
}

// applyColorConfig fills flags the user did not set from the config file.
func (c *CLI) applyColorConfig(cmd *cobra.Command, opts *colorOpts) {
	flags := cmd.Flags()
	cfg := c.Config
	if !flags.Changed("workers") {
		opts.workers = cfg.Coloring.Workers
	}
	if !flags.Changed("partitions") {
		opts.partitions = cfg.Coloring.Partitions
	}
	if !flags.Changed("max-rounds") {
		opts.maxRounds = cfg.Coloring.MaxRounds
	}
	if !flags.Changed("generator") && cfg.Generate.Generator != "" {
		opts.generator = cfg.Generate.Generator
	}
	if !flags.Changed("seed") {
		opts.seed = cfg.Generate.Seed
	}
}

func (c *CLI) runColor(ctx context.Context, opts colorOpts) error {
	if opts.inputFile == "" {
		if err := errors.ValidateGenerationParams(opts.size, opts.maxDegree); err != nil {
			return err
		}
	}
	popts := pipeline.Options{
		InputFile:  opts.inputFile,
		Size:       opts.size,
		MaxDegree:  opts.maxDegree,
		Generator:  generate.Kind(opts.generator),
		Seed:       opts.seed,
		OutputFile: opts.outputFile,
		Workers:    opts.workers,
		Partitions: opts.partitions,
		MaxRounds:  opts.maxRounds,
		Logger:     c.Logger,
	}
	// Reject bad arguments before the spinner starts.
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Coloring graph...")
	observability.SetColoringHooks(spinnerHooks{spinner: spinner})
	defer observability.SetColoringHooks(observability.NoopColoringHooks{})

	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	if stderrors.Is(err, coloring.ErrNoColoring) {
		spinner.StopWithError("No coloring found")
		if result != nil && result.Search != nil {
			fmt.Fprintln(stdout, renderAttempts(result.Search.Attempts, 0))
		}
		return err
	}
	spinner.Stop()
	if err != nil {
		return err
	}

	if result.Seed != 0 {
		printInfo("Generated %s graph with seed %d", popts.Generator, result.Seed)
	}
	printSuccess("Time to color the graph: %.3f seconds", result.Stats.ColorTime.Seconds())
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.MaxDegree, result.Stats.MeanDegree, result.CacheHit)
	fmt.Fprintln(stdout, renderAttempts(result.Search.Attempts, result.Search.Budget))
	printKeyValue("Budget", fmt.Sprintf("%d", result.Search.Budget))
	printKeyValue("Colors used", fmt.Sprintf("%d", result.Stats.ColorsUsed))
	printVerdict(result.Report)
	printFile(opts.outputFile)
	return nil
}
