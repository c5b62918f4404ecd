package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/graph"
	"github.com/matzehuels/graphcolor/pkg/io"
	"github.com/matzehuels/graphcolor/pkg/render/nodelink"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (multiple)
	formats  []string // output formats: "svg", "dot"
	detailed bool     // print color indices under node ids
}

// renderCommand creates the render command for drawing colored graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts       renderOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a colored graph as a node-link diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show color indices")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatDOT: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidArguments, "invalid format: %s (must be 'svg' or 'dot')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension, it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the graph from input and writes one file per format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	g, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}

		data, err := renderGraph(g, format, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// renderGraph produces the bytes of g in one format.
func renderGraph(g *graph.Graph, format string, opts *renderOpts) ([]byte, error) {
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed})
	if format == formatDOT {
		return []byte(dot), nil
	}
	return nodelink.RenderSVG(dot)
}
