package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Uncolored is the color of a node that has no color assigned yet.
const Uncolored = -1

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] for negative ids.
	ErrInvalidNodeID = errors.New("node ID must be non-negative")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned when an edge or color references a node that
	// does not exist in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSelfLoop is returned by [Graph.AddEdge] and [Graph.Validate] for an
	// edge from a node to itself.
	ErrSelfLoop = errors.New("self-loop")

	// ErrAsymmetricEdge is returned by [Graph.Validate] when j is a neighbor
	// of i but i is not a neighbor of j.
	ErrAsymmetricEdge = errors.New("asymmetric edge")

	// ErrInvalidColor is returned by [Graph.SetColor] for colors below
	// [Uncolored].
	ErrInvalidColor = errors.New("invalid color")
)

// Node is a vertex of the graph.
//
// Node values are cheap to copy: the neighbor set is shared between copies and
// must not be modified outside of [Graph.AddEdge].
type Node struct {
	ID        int             // Unique, immutable identifier
	Color     int             // Uncolored or a palette index
	Neighbors mapset.Set[int] // Neighbor ids, never nil for nodes returned by a Graph
}

// Degree returns the number of neighbors.
func (n Node) Degree() int {
	if n.Neighbors == nil {
		return 0
	}
	return n.Neighbors.Cardinality()
}

// IsColored reports whether the node holds a palette color.
func (n Node) IsColored() bool { return n.Color != Uncolored }

// NeighborIDs returns the neighbor ids in ascending order.
func (n Node) NeighborIDs() []int {
	if n.Neighbors == nil {
		return nil
	}
	ids := n.Neighbors.ToSlice()
	slices.Sort(ids)
	return ids
}

// Graph is an undirected graph stored as an arena of nodes keyed by id.
//
// The zero value is not usable - use New to create a graph.
type Graph struct {
	nodes map[int]*Node
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// AddNode adds an uncolored node with no neighbors.
// Returns ErrInvalidNodeID for negative ids and ErrDuplicateNodeID if the id
// is already present.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = &Node{
		ID:        id,
		Color:     Uncolored,
		Neighbors: mapset.NewThreadUnsafeSet[int](),
	}
	return nil
}

// AddEdge adds the undirected edge {a, b}.
// Returns ErrSelfLoop if a == b and ErrUnknownNode if either endpoint is
// missing. Adding an edge that already exists is a no-op.
func (g *Graph) AddEdge(a, b int) error {
	if a == b {
		return ErrSelfLoop
	}
	na, ok := g.nodes[a]
	if !ok {
		return ErrUnknownNode
	}
	nb, ok := g.nodes[b]
	if !ok {
		return ErrUnknownNode
	}
	if na.Neighbors.Contains(b) {
		return nil
	}
	na.Neighbors.Add(b)
	nb.Neighbors.Add(a)
	g.edges++
	return nil
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	n, ok := g.nodes[a]
	return ok && n.Neighbors.Contains(b)
}

// Node returns the node with the given id and true, or nil and false.
// The returned pointer refers to the node stored in the graph.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns copies of all nodes sorted by id.
// The copies share neighbor sets with the graph.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, id := range g.IDs() {
		out = append(out, *g.nodes[id])
	}
	return out
}

// IDs returns all node ids in ascending order.
func (g *Graph) IDs() []int {
	return slices.Sorted(maps.Keys(g.nodes))
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the number of neighbors of id, or 0 if it doesn't exist.
func (g *Graph) Degree(id int) int {
	if n, ok := g.nodes[id]; ok {
		return n.Degree()
	}
	return 0
}

// MaxDegree returns the largest node degree, or 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	best := 0
	for _, n := range g.nodes {
		best = max(best, n.Degree())
	}
	return best
}

// MeanDegree returns the average node degree, or 0 for an empty graph.
func (g *Graph) MeanDegree() float64 {
	if len(g.nodes) == 0 {
		return 0
	}
	return float64(2*g.edges) / float64(len(g.nodes))
}

// SetColor assigns a color to a single node.
func (g *Graph) SetColor(id, color int) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrUnknownNode
	}
	if color < Uncolored {
		return ErrInvalidColor
	}
	n.Color = color
	return nil
}

// SetColors assigns colors from an id → color mapping.
// Ids absent from colors keep their current color; ids absent from the graph
// are ignored.
func (g *Graph) SetColors(colors map[int]int) {
	for id, c := range colors {
		if n, ok := g.nodes[id]; ok {
			n.Color = c
		}
	}
}

// Colors returns the current id → color mapping.
func (g *Graph) Colors() map[int]int {
	out := make(map[int]int, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.Color
	}
	return out
}

// ResetColors marks every node as Uncolored.
func (g *Graph) ResetColors() {
	for _, n := range g.nodes {
		n.Color = Uncolored
	}
}

// Clone returns a deep copy of the graph, including neighbor sets.
func (g *Graph) Clone() *Graph {
	c := &Graph{nodes: make(map[int]*Node, len(g.nodes)), edges: g.edges}
	for id, n := range g.nodes {
		c.nodes[id] = &Node{ID: n.ID, Color: n.Color, Neighbors: n.Neighbors.Clone()}
	}
	return c
}

// Validate checks that adjacency is simple and symmetric and that every
// neighbor id refers to an existing node.
func (g *Graph) Validate() error {
	for _, id := range g.IDs() {
		n := g.nodes[id]
		for _, m := range n.NeighborIDs() {
			if m == id {
				return &EdgeError{From: id, To: m, Err: ErrSelfLoop}
			}
			other, ok := g.nodes[m]
			if !ok {
				return &EdgeError{From: id, To: m, Err: ErrUnknownNode}
			}
			if !other.Neighbors.Contains(id) {
				return &EdgeError{From: id, To: m, Err: ErrAsymmetricEdge}
			}
		}
	}
	return nil
}

// EdgeError describes an invalid adjacency entry found by [Graph.Validate].
type EdgeError struct {
	From, To int
	Err      error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("edge %d-%d: %v", e.From, e.To, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *EdgeError) Unwrap() error { return e.Err }
