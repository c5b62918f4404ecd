package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcolor/pkg/coloring"
	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/graph"
	"github.com/matzehuels/graphcolor/pkg/io"
)

// validateCommand creates the validate command, which checks the coloring
// stored in a graph file.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check whether a graph file is properly colored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}
			report, err := coloring.ValidateGraph(cmd.Context(), g, coloring.Options{
				Workers:    c.Config.Coloring.Workers,
				Partitions: c.Config.Coloring.Partitions,
				Logger:     c.Logger,
			})
			if err != nil {
				return err
			}

			printStats(g.NodeCount(), g.EdgeCount(), g.MaxDegree(), g.MeanDegree(), false)
			printKeyValue("Colors used", fmt.Sprintf("%d", colorsUsed(g)))
			printVerdict(report)
			if !report.Valid {
				return errors.New(errors.ErrCodeInvalidGraph, "%s is not properly colored", args[0])
			}
			return nil
		},
	}
}

// colorsUsed counts the distinct colors assigned in g.
func colorsUsed(g *graph.Graph) int {
	res := coloring.Result{Colors: g.Colors()}
	return res.ColorsUsed()
}
