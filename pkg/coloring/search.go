package coloring

import (
	"context"
	"time"

	"github.com/matzehuels/graphcolor/pkg/dataset"
	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/graph"
	"github.com/matzehuels/graphcolor/pkg/observability"
)

// ErrNoColoring is returned by Search when not even the first budget
// converged. It carries the NO_COLORING code.
var ErrNoColoring = errors.New(errors.ErrCodeNoColoring, "no budget produced a complete coloring")

// Result is the outcome of a budget search.
type Result struct {
	// Budget is the smallest budget that converged.
	Budget int `json:"budget"`
	// MaxDegree is the maximum node degree of the graph.
	MaxDegree int `json:"max_degree"`
	// MeanDegree is the average node degree of the graph.
	MeanDegree float64 `json:"mean_degree"`
	// Colors holds the node colors of the converged attempt.
	Colors map[int]int `json:"colors"`
	// Attempts lists every attempt in the order it ran, including the final
	// non-converged one.
	Attempts []Outcome `json:"attempts"`
}

// ColorsUsed returns the number of distinct colors in Colors.
func (r *Result) ColorsUsed() int {
	seen := make(map[int]struct{}, r.Budget)
	for _, c := range r.Colors {
		if c != graph.Uncolored {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

// Search colors g with decreasing budgets, starting at maxDegree+1 and
// stopping at the first attempt that does not converge or after budget 2.
// The first budget is always tried, so an edgeless graph is colored with a
// single color.
//
// g is not modified; apply Result.Colors with graph.SetColors.
// If the first attempt fails, Search returns ErrNoColoring together with a
// Result whose Attempts hold that failed attempt.
func Search(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.logger()

	ds := dataset.New(g.Nodes(), opts.Partitions, opts.Workers)
	maxDegree, err := dataset.Max(ctx, ds, graph.Node.Degree)
	if err != nil {
		return nil, err
	}
	meanDegree, err := dataset.Mean(ctx, ds, func(n graph.Node) float64 { return float64(n.Degree()) })
	if err != nil {
		return nil, err
	}
	observability.Coloring().OnSearchStart(ctx, ds.Len(), maxDegree)
	logger.Debug("search", "nodes", ds.Len(), "partitions", ds.Partitions(), "max_degree", maxDegree, "mean_degree", meanDegree)

	res := &Result{MaxDegree: maxDegree, MeanDegree: meanDegree}
	for budget := maxDegree + 1; ; budget-- {
		logger.Infof("Trying %d colors...", budget)
		out, err := Color(ctx, ds, budget, opts)
		if err != nil {
			return nil, err
		}
		res.Attempts = append(res.Attempts, out)
		if !out.Converged() {
			logger.Debug("attempt failed", "budget", budget, "state", out.State, "uncolored", out.Uncolored)
			break
		}
		res.Budget, res.Colors = budget, out.Colors
		if budget <= 2 {
			break
		}
	}

	if res.Colors == nil {
		observability.Coloring().OnSearchComplete(ctx, 0, time.Since(start), ErrNoColoring)
		return res, ErrNoColoring
	}
	observability.Coloring().OnSearchComplete(ctx, res.Budget, time.Since(start), nil)
	return res, nil
}
