package graph

import (
	"errors"
	"slices"
	"testing"
)

func triangle(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for id := range 3 {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%d): %v", id, err)
		}
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddNode(t *testing.T) {
	g := New()
	if err := g.AddNode(0); err != nil {
		t.Fatalf("AddNode(0): %v", err)
	}
	if err := g.AddNode(0); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode duplicate error = %v, want ErrDuplicateNodeID", err)
	}
	if err := g.AddNode(-3); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(-3) error = %v, want ErrInvalidNodeID", err)
	}

	n, ok := g.Node(0)
	if !ok {
		t.Fatal("Node(0) not found")
	}
	if n.Color != Uncolored {
		t.Errorf("new node color = %d, want Uncolored", n.Color)
	}
	if n.Neighbors == nil || n.Degree() != 0 {
		t.Errorf("new node should have an empty neighbor set")
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int
		wantErr error
	}{
		{"valid", 0, 1, nil},
		{"self-loop", 1, 1, ErrSelfLoop},
		{"unknown source", 9, 1, ErrUnknownNode},
		{"unknown target", 0, 9, ErrUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			_ = g.AddNode(0)
			_ = g.AddNode(1)
			err := g.AddEdge(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEdge(%d, %d) error = %v, want %v", tt.a, tt.b, err, tt.wantErr)
			}
		})
	}
}

func TestAddEdgeSymmetricAndDeduplicated(t *testing.T) {
	g := New()
	_ = g.AddNode(0)
	_ = g.AddNode(1)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 0)
	_ = g.AddEdge(0, 1)

	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Error("edge should be visible from both endpoints")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.Degree(0) != 1 || g.Degree(1) != 1 {
		t.Errorf("degrees = %d, %d, want 1, 1", g.Degree(0), g.Degree(1))
	}
}

func TestEdgesAreSymmetric(t *testing.T) {
	g := triangle(t)
	for _, n := range g.Nodes() {
		if n.Neighbors.Contains(n.ID) {
			t.Errorf("node %d lists itself as a neighbor", n.ID)
		}
		for _, m := range n.NeighborIDs() {
			if !g.HasEdge(m, n.ID) {
				t.Errorf("%d lists %d but not vice versa", n.ID, m)
			}
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *Graph)
		want    error
	}{
		{
			name: "asymmetric",
			corrupt: func(g *Graph) {
				_ = g.AddNode(3)
				n, _ := g.Node(3)
				n.Neighbors.Add(0)
			},
			want: ErrAsymmetricEdge,
		},
		{
			name: "self-loop",
			corrupt: func(g *Graph) {
				n, _ := g.Node(1)
				n.Neighbors.Add(1)
			},
			want: ErrSelfLoop,
		},
		{
			name: "dangling",
			corrupt: func(g *Graph) {
				n, _ := g.Node(2)
				n.Neighbors.Add(42)
			},
			want: ErrUnknownNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := triangle(t)
			tt.corrupt(g)
			err := g.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			var edgeErr *EdgeError
			if !errors.As(err, &edgeErr) {
				t.Errorf("Validate() should return *EdgeError, got %T", err)
			}
		})
	}
}

func TestDegrees(t *testing.T) {
	g := triangle(t)
	_ = g.AddNode(3)

	if got := g.MaxDegree(); got != 2 {
		t.Errorf("MaxDegree() = %d, want 2", got)
	}
	if got := g.MeanDegree(); got != 1.5 {
		t.Errorf("MeanDegree() = %v, want 1.5", got)
	}

	empty := New()
	if empty.MaxDegree() != 0 || empty.MeanDegree() != 0 {
		t.Error("empty graph should have zero degrees")
	}
}

func TestColors(t *testing.T) {
	g := triangle(t)

	g.SetColors(map[int]int{0: 0, 1: 1, 2: 2, 99: 5})
	if got := g.Colors(); got[0] != 0 || got[1] != 1 || got[2] != 2 || len(got) != 3 {
		t.Errorf("Colors() = %v", got)
	}

	if err := g.SetColor(1, 4); err != nil {
		t.Errorf("SetColor: %v", err)
	}
	if err := g.SetColor(1, -2); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetColor(-2) error = %v, want ErrInvalidColor", err)
	}
	if err := g.SetColor(7, 0); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("SetColor(unknown) error = %v, want ErrUnknownNode", err)
	}

	g.ResetColors()
	for id, c := range g.Colors() {
		if c != Uncolored {
			t.Errorf("node %d color = %d after reset", id, c)
		}
	}
}

func TestNodesSortedAndShared(t *testing.T) {
	g := New()
	for _, id := range []int{5, 1, 3} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge(5, 1)

	var ids []int
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	if !slices.Equal(ids, []int{1, 3, 5}) {
		t.Errorf("Nodes() order = %v, want [1 3 5]", ids)
	}

	nodes := g.Nodes()
	nodes[0].Color = 7
	if n, _ := g.Node(1); n.Color != Uncolored {
		t.Error("mutating a copy from Nodes() must not change the graph")
	}
}

func TestClone(t *testing.T) {
	g := triangle(t)
	c := g.Clone()

	_ = c.AddNode(3)
	_ = c.AddEdge(0, 3)
	_ = c.SetColor(0, 1)

	if g.HasEdge(0, 3) || g.NodeCount() != 3 {
		t.Error("clone should not share structure with the original")
	}
	if n, _ := g.Node(0); n.Color != Uncolored {
		t.Error("clone should not share colors with the original")
	}
	if c.EdgeCount() != 4 {
		t.Errorf("clone EdgeCount() = %d, want 4", c.EdgeCount())
	}
}
