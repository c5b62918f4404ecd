// Package coloring computes vertex colorings with a round-based, decentralized
// algorithm.
//
// # Overview
//
// Every node decides its own color using only its current color and the
// colors of its neighbors as captured in a frozen, per-round [Snapshot]. When
// two neighbors pick the same color in the same round, the node with the lower
// id keeps it and the other reverts to [graph.Uncolored]. Rounds repeat until
// every node is colored or no further progress is possible.
//
// The package is organized in four layers:
//
//   - [Round] runs one bulk-synchronous round: snapshot, [ChooseColor],
//     re-snapshot, [ResolveConflict].
//   - [Driver] repeats rounds for a single color budget and stops in one of
//     the terminal [State] values.
//   - [Search] descends from maxDegree+1 and reports the smallest budget that
//     still converges.
//   - [Validate] checks a finished coloring.
//
// # Round Semantics
//
// All per-node decisions within a phase read the same snapshot and never
// observe writes from the same phase. Each phase is a [dataset.Map] over the
// partitioned node collection, so the dataset barrier doubles as the round
// barrier.
//
// Because a colored node never changes color and new choices avoid every color
// already held by a neighbor, the number of uncolored nodes never increases
// from one round to the next. The lowest-id node holding a tentative color
// always keeps it, so every round that does not stall colors at least one node
// and a single budget attempt finishes within |nodes| rounds.
//
// # Budget Search
//
// With D+1 colors (D = maximum degree) every uncolored node always has a free
// color, so the first attempt converges on any valid graph. The search then
// lowers the budget by one until an attempt fails to converge, and returns the
// last budget that did. This mirrors the greedy nature of the round algorithm:
// the result is an upper bound, not the chromatic number.
//
//	res, err := coloring.Search(ctx, g, coloring.Options{Workers: 8})
//	if errors.Is(err, coloring.ErrNoColoring) {
//	    // no budget converged
//	}
//	g.SetColors(res.Colors)
package coloring
