package coloring

import (
	"context"

	"github.com/matzehuels/graphcolor/pkg/dataset"
	"github.com/matzehuels/graphcolor/pkg/graph"
)

// Report is the verdict of Validate.
type Report struct {
	Valid     bool `json:"valid"`
	Uncolored int  `json:"uncolored"` // nodes still holding graph.Uncolored
	Conflicts int  `json:"conflicts"` // colored nodes sharing their color with a neighbor
}

// Validate checks that every node is colored and no edge joins two nodes of
// the same color. ds is only read.
func Validate(ctx context.Context, ds *dataset.Dataset[graph.Node]) (Report, error) {
	snap, err := TakeSnapshot(ctx, ds)
	if err != nil {
		return Report{}, err
	}
	uncolored, err := countUncolored(ctx, ds)
	if err != nil {
		return Report{}, err
	}
	conflicts, err := ds.Count(ctx, func(n graph.Node) bool {
		if !n.IsColored() {
			return false
		}
		clash := false
		n.Neighbors.Each(func(m int) bool {
			clash = snap.Color(m) == n.Color
			return clash
		})
		return clash
	})
	if err != nil {
		return Report{}, err
	}
	return Report{
		Valid:     uncolored == 0 && conflicts == 0,
		Uncolored: uncolored,
		Conflicts: conflicts,
	}, nil
}

// ValidateGraph validates the current colors of g.
func ValidateGraph(ctx context.Context, g *graph.Graph, opts Options) (Report, error) {
	return Validate(ctx, dataset.New(g.Nodes(), opts.Partitions, opts.Workers))
}
