// Package pkg provides the libraries behind the graphcolor CLI.
//
// # Overview
//
// graphcolor finds proper vertex colorings of undirected graphs with a
// round-based algorithm in which every node decides its own color from a
// snapshot of its neighbors. The pkg directory is organized into:
//
//  1. [graph] - Node arena with symmetric neighbor sets
//  2. [dataset] - Partitioned collection with parallel map and aggregates
//  3. [coloring] - Rounds, the per-budget driver, budget search and validator
//  4. [generate] - Random graphs with a degree cap
//  5. [io] - JSON graph file format
//  6. [cache] - Search result caching (file, redis)
//  7. [pipeline] - Orchestration (load → color → validate → export)
//  8. [render/nodelink] - Graphviz drawings of colored graphs
//
// # Architecture
//
// The typical data flow:
//
//	graph file or generator
//	         ↓
//	    [graph] package (validated arena)
//	         ↓
//	    [coloring] package (search budgets maxDegree+1, maxDegree, ... 2)
//	         ↓
//	    [coloring] validator
//	         ↓
//	    colored JSON / SVG output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/graphcolor/pkg/coloring"
//	    "github.com/matzehuels/graphcolor/pkg/io"
//	)
//
//	g, _ := io.ImportJSON("graph.json")
//	res, err := coloring.Search(context.Background(), g, coloring.Options{})
//	if err != nil {
//	    // coloring.ErrNoColoring: not even maxDegree+1 colors converged
//	}
//	g.SetColors(res.Colors)
//	_ = io.ExportJSON(g, "colored.json")
//
// [graph]: github.com/matzehuels/graphcolor/pkg/graph
// [dataset]: github.com/matzehuels/graphcolor/pkg/dataset
// [coloring]: github.com/matzehuels/graphcolor/pkg/coloring
// [generate]: github.com/matzehuels/graphcolor/pkg/generate
// [io]: github.com/matzehuels/graphcolor/pkg/io
// [cache]: github.com/matzehuels/graphcolor/pkg/cache
// [pipeline]: github.com/matzehuels/graphcolor/pkg/pipeline
// [render/nodelink]: github.com/matzehuels/graphcolor/pkg/render/nodelink
package pkg
