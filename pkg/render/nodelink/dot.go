package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphcolor/pkg/graph"
)

// DefaultPalette holds the fill colors for colors 0, 1, 2, ...
// Colors past the end wrap around.
var DefaultPalette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the color index below the node id.
	Detailed bool
	// Palette overrides DefaultPalette.
	Palette []string
}

// ToDOT converts g to undirected Graphviz DOT source.
func ToDOT(g *graph.Graph, opts Options) string {
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14, width=0.4];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := g.Nodes()
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, strings.Join(fmtAttrs(n, palette, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, m := range n.NeighborIDs() {
			if n.ID < m {
				fmt.Fprintf(&buf, "  %d -- %d;\n", n.ID, m)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n graph.Node, palette []string, detailed bool) []string {
	label := strconv.Itoa(n.ID)
	if detailed {
		label += "\n" + colorLabel(n.Color)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !n.IsColored() {
		return append(attrs, "fillcolor=white", "style=\"filled,dashed\"")
	}
	return append(attrs, fmt.Sprintf("fillcolor=%q", palette[n.Color%len(palette)]))
}

func colorLabel(c int) string {
	if c == graph.Uncolored {
		return "-"
	}
	return "c" + strconv.Itoa(c)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg tag with one whose
// viewBox starts at the origin and whose size is unitless.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
