package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/generate"
	"github.com/matzehuels/graphcolor/pkg/io"
)

// generateCommand creates the generate command, which writes a random
// uncolored graph.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		size, maxDegree int
		output          string
		generator       string
		seed            uint64
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a random graph file",
		Example: `  graphcolor generate --size 500 --max-degree 4 --output-file graph.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("size") || !flags.Changed("max-degree") {
				return errors.New(errors.ErrCodeInvalidArguments, "--size and --max-degree are required")
			}
			if output == "" {
				return errors.New(errors.ErrCodeInvalidArguments, "--output-file is required")
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}
			if !flags.Changed("generator") && c.Config.Generate.Generator != "" {
				generator = c.Config.Generate.Generator
			}
			if !flags.Changed("seed") {
				seed = c.Config.Generate.Seed
			}
			kind, err := generate.ParseKind(generator)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			g, used, err := generate.Generate(generate.Options{
				Size:      size,
				MaxDegree: maxDegree,
				Kind:      kind,
				Seed:      seed,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d nodes", g.NodeCount()))

			if err := io.ExportJSON(g, output); err != nil {
				return err
			}
			printSuccess("Generated %s graph (seed %d)", kind, used)
			printStats(g.NodeCount(), g.EdgeCount(), g.MaxDegree(), g.MeanDegree(), false)
			printFile(output)
			printNextStep("Color it", fmt.Sprintf("%s color --input-file %s --output-file colored.json", appName, output))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "number of nodes")
	cmd.Flags().IntVarP(&maxDegree, "max-degree", "d", 0, "maximum degree")
	cmd.Flags().StringVarP(&output, "output-file", "o", "", "output file (required)")
	cmd.Flags().StringVar(&generator, "generator", string(generate.UAG), "random graph generator: uag, bounded")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed (0 = random)")

	return cmd
}
