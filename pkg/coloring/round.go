package coloring

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/matzehuels/graphcolor/pkg/dataset"
	"github.com/matzehuels/graphcolor/pkg/graph"
)

// Snapshot is an immutable id → color view of the graph at a fixed point in a
// round. It is shared read-only by every worker of the phase that follows.
type Snapshot struct {
	colors map[int]int
}

// NewSnapshot wraps an id → color mapping. The map must not be modified
// afterwards.
func NewSnapshot(colors map[int]int) Snapshot {
	return Snapshot{colors: colors}
}

// TakeSnapshot captures the current color of every node in ds.
func TakeSnapshot(ctx context.Context, ds *dataset.Dataset[graph.Node]) (Snapshot, error) {
	colors, err := dataset.CollectAsMap(ctx, ds, func(n graph.Node) (int, int) {
		return n.ID, n.Color
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{colors: colors}, nil
}

// Color returns the color recorded for id, or graph.Uncolored if the id is
// not part of the snapshot.
func (s Snapshot) Color(id int) int {
	if c, ok := s.colors[id]; ok {
		return c
	}
	return graph.Uncolored
}

// Len returns the number of nodes in the snapshot.
func (s Snapshot) Len() int { return len(s.colors) }

// ChooseColor returns the tentative color of n for this round.
//
// A colored node keeps its color. An uncolored node takes the smallest color
// in [0, budget) that none of its neighbors holds in snap, or stays uncolored
// when every color is taken.
func ChooseColor(n graph.Node, snap Snapshot, budget int) int {
	if n.IsColored() {
		return n.Color
	}
	taken := mapset.NewThreadUnsafeSetWithSize[int](n.Degree())
	n.Neighbors.Each(func(m int) bool {
		if c := snap.Color(m); c != graph.Uncolored {
			taken.Add(c)
		}
		return false
	})
	for c := range budget {
		if !taken.Contains(c) {
			return c
		}
	}
	return graph.Uncolored
}

// ResolveConflict settles simultaneous choices between neighbors. n carries
// its tentative color and snap holds the tentative colors of every node. n
// reverts to graph.Uncolored iff a neighbor with a lower id holds the same
// tentative color.
func ResolveConflict(n graph.Node, snap Snapshot) int {
	if !n.IsColored() {
		return graph.Uncolored
	}
	conflict := false
	n.Neighbors.Each(func(m int) bool {
		if m < n.ID && snap.Color(m) == n.Color {
			conflict = true
		}
		return conflict
	})
	if conflict {
		return graph.Uncolored
	}
	return n.Color
}

// Round runs one synchronous round over ds with the given color budget and
// returns the resulting dataset. ds itself is left untouched.
func Round(ctx context.Context, ds *dataset.Dataset[graph.Node], budget int) (*dataset.Dataset[graph.Node], error) {
	before, err := TakeSnapshot(ctx, ds)
	if err != nil {
		return nil, err
	}
	tentative, err := dataset.Map(ctx, ds, func(n graph.Node) graph.Node {
		n.Color = ChooseColor(n, before, budget)
		return n
	})
	if err != nil {
		return nil, err
	}

	chosen, err := TakeSnapshot(ctx, tentative)
	if err != nil {
		return nil, err
	}
	return dataset.Map(ctx, tentative, func(n graph.Node) graph.Node {
		n.Color = ResolveConflict(n, chosen)
		return n
	})
}
