// Package io provides JSON import and export for colored undirected graphs.
//
// # JSON Format
//
// A graph file is a JSON array with one record per node:
//
//	[
//	    {
//	        "id": 0,
//	        "color": -1,
//	        "neighbors": "1,2"
//	    },
//	    {
//	        "id": 1,
//	        "color": -1,
//	        "neighbors": "0"
//	    },
//	    {
//	        "id": 2,
//	        "color": -1,
//	        "neighbors": "0"
//	    }
//	]
//
// Fields:
//   - id: non-negative integer, unique within the file
//   - color: -1 for uncolored or a color index; defaults to -1 when omitted
//   - neighbors: comma-separated neighbor ids, empty for an isolated node
//
// Edges are undirected. A neighbor listed on only one side is added to both,
// so files written by tools that only record each edge once import cleanly.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Malformed JSON and unparsable neighbor lists fail with code INVALID_FORMAT.
// Duplicate ids, self-loops, unknown neighbor ids and colors below -1 fail
// with code INVALID_GRAPH. Errors name the offending node.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to any
// io.Writer. Records are sorted by id and neighbor lists ascend, so exporting
// the same graph twice yields identical bytes. [MarshalJSON] returns the same
// bytes in memory.
package io
