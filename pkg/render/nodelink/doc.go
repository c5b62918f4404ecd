// Package nodelink renders colored graphs as node-link diagrams.
//
// # Overview
//
// Each node is drawn as a filled circle whose fill is taken from a palette
// indexed by the node's color. Uncolored nodes are white with a dashed
// outline, so a partial coloring is easy to spot.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces undirected Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//
// Nodes and edges are emitted in ascending id order so the output is stable.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
