// Package generate builds random undirected graphs for coloring experiments.
//
// Two generators are available:
//
//   - [UAG] grows random trees depth-first: a node pops off a stack, takes a
//     random number of unvisited children and pushes them. When a tree cannot
//     grow any further the next unvisited node starts a new one, so the result
//     is a spanning forest over all ids.
//   - [Bounded] visits every node once and tries a random number of random
//     partners, adding an edge only while both endpoints stay under the
//     degree cap.
//
// Both generators emit node ids 0..size-1, keep every degree at or below
// maxDegree and are deterministic for a given seed.
package generate

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/graph"
)

// Kind names a generator.
type Kind string

const (
	UAG     Kind = "uag"
	Bounded Kind = "bounded"
)

// Kinds returns all supported generators.
func Kinds() []Kind { return []Kind{UAG, Bounded} }

// ParseKind validates a generator name. The empty string selects UAG.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return UAG, nil
	}
	k := Kind(strings.ToLower(s))
	if !slices.Contains(Kinds(), k) {
		return "", errors.New(errors.ErrCodeInvalidArguments, "unknown generator %q (want uag or bounded)", s)
	}
	return k, nil
}

// Options controls graph generation.
type Options struct {
	Size      int    // Number of nodes, must be positive
	MaxDegree int    // Degree cap, must be non-negative
	Kind      Kind   // Generator (default UAG)
	Seed      uint64 // Random seed (0 = pick one)
}

// Generate builds a random graph according to opts and returns it together
// with the seed that was used.
func Generate(opts Options) (*graph.Graph, uint64, error) {
	if err := errors.ValidateGenerationParams(opts.Size, opts.MaxDegree); err != nil {
		return nil, 0, err
	}
	kind, err := ParseKind(string(opts.Kind))
	if err != nil {
		return nil, 0, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	var g *graph.Graph
	switch kind {
	case Bounded:
		g, err = bounded(opts.Size, opts.MaxDegree, rng)
	default:
		g, err = uag(opts.Size, opts.MaxDegree, rng)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("generate %s: %w", kind, err)
	}
	return g, seed, nil
}

func empty(size int) *graph.Graph {
	g := graph.New()
	for id := range size {
		_ = g.AddNode(id)
	}
	return g
}

func uag(size, maxDegree int, rng *rand.Rand) (*graph.Graph, error) {
	g := empty(size)
	pool := make([]int, 0, size-1)
	for id := 1; id < size; id++ {
		pool = append(pool, id)
	}

	stack := []int{0}
	for len(pool) > 0 {
		if len(stack) == 0 {
			stack = append(stack, pool[0])
			pool = pool[1:]
			continue
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		room := min(len(pool), maxDegree-g.Degree(cur))
		if room <= 0 {
			continue
		}
		// The minimum of two draws skews toward narrow trees.
		children := min(rng.IntN(room+1), rng.IntN(room+1))
		for range children {
			i := rng.IntN(len(pool))
			child := pool[i]
			pool = slices.Delete(pool, i, i+1)
			if err := g.AddEdge(cur, child); err != nil {
				return nil, err
			}
			stack = append(stack, child)
		}
	}
	return g, nil
}

func bounded(size, maxDegree int, rng *rand.Rand) (*graph.Graph, error) {
	g := empty(size)
	for id := range size {
		room := maxDegree - g.Degree(id)
		if room <= 0 {
			continue
		}
		for range rng.IntN(room + 1) {
			other := rng.IntN(size)
			if other == id || g.HasEdge(id, other) || g.Degree(id) >= maxDegree || g.Degree(other) >= maxDegree {
				continue
			}
			if err := g.AddEdge(id, other); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
