// Package graph provides the undirected graph model that graphcolor colors.
//
// # Overview
//
// A [Graph] is an arena of [Node] values keyed by integer id. Each node has a
// mutable color and a fixed set of neighbor ids. Neighbor relationships are
// stored as id sets, never as references to other nodes, so a graph has no
// cyclic ownership and nodes can be copied freely into a data-parallel
// collection.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode] and edges with
// [Graph.AddEdge]. Edges are undirected: adding (a, b) records b as a
// neighbor of a and a as a neighbor of b.
//
//	g := graph.New()
//	_ = g.AddNode(0)
//	_ = g.AddNode(1)
//	_ = g.AddEdge(0, 1)
//
// # Invariants
//
// Adjacency is always symmetric and simple: [Graph.AddEdge] rejects
// self-loops and ignores duplicate edges. The shape of a graph never changes
// during coloring; only colors do. [Graph.Validate] re-checks the invariants
// and is used after loading graphs from files.
//
// # Colors
//
// A node's color is either [Uncolored] or a non-negative palette index. The
// graph does not know the active budget; range checks against a budget are
// the coloring package's concern.
//
// # Concurrency
//
// Graph instances are not safe for concurrent modification. Neighbor sets are
// created thread-unsafe and must be treated as read-only once the graph is
// built; concurrent reads of a finished graph are safe.
package graph
