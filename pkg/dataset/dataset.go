// Package dataset provides a partitioned in-memory collection with bulk
// data-parallel primitives.
//
// A [Dataset] splits its elements into partitions. Every primitive ([Map],
// [Dataset.Count], [Max], [Mean], [CollectAsMap]) processes the partitions
// concurrently on a bounded pool of workers and returns only after all of
// them have finished, so each call acts as a synchronization barrier.
//
// Datasets are immutable: [Map] produces a new dataset and never writes to its
// input, which makes it safe for every worker to read shared, read-only state
// (such as a broadcast snapshot) while a map runs.
package dataset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultPartitions is the number of partitions used when none is given.
const DefaultPartitions = 16

// Dataset is an immutable collection split into partitions.
type Dataset[T any] struct {
	parts   [][]T
	workers int
}

// New splits items into at most partitions contiguous chunks processed by up
// to workers goroutines. Non-positive values select DefaultPartitions and
// GOMAXPROCS respectively. The items slice is copied.
func New[T any](items []T, partitions, workers int) *Dataset[T] {
	if partitions <= 0 {
		partitions = DefaultPartitions
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	partitions = max(1, min(partitions, len(items)))

	parts := make([][]T, 0, partitions)
	size := (len(items) + partitions - 1) / partitions
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		parts = append(parts, append([]T(nil), items[start:end]...))
	}
	return &Dataset[T]{parts: parts, workers: workers}
}

// Len returns the number of elements.
func (d *Dataset[T]) Len() int {
	n := 0
	for _, p := range d.parts {
		n += len(p)
	}
	return n
}

// Partitions returns the number of partitions.
func (d *Dataset[T]) Partitions() int { return len(d.parts) }

// Workers returns the worker limit used by the primitives.
func (d *Dataset[T]) Workers() int { return d.workers }

// Collect materializes all elements in partition order.
func (d *Dataset[T]) Collect() []T {
	out := make([]T, 0, d.Len())
	for _, p := range d.parts {
		out = append(out, p...)
	}
	return out
}

// Count returns the number of elements satisfying pred.
func (d *Dataset[T]) Count(ctx context.Context, pred func(T) bool) (int, error) {
	counts := make([]int, len(d.parts))
	err := d.each(ctx, func(i int, part []T) {
		for _, v := range part {
			if pred(v) {
				counts[i]++
			}
		}
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Map applies f to every element and returns a new dataset with the same
// partitioning. Each output element is written by exactly one worker.
func Map[T, U any](ctx context.Context, d *Dataset[T], f func(T) U) (*Dataset[U], error) {
	out := &Dataset[U]{parts: make([][]U, len(d.parts)), workers: d.workers}
	err := d.each(ctx, func(i int, part []T) {
		mapped := make([]U, len(part))
		for j, v := range part {
			mapped[j] = f(v)
		}
		out.parts[i] = mapped
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Max returns the largest key over all elements, or 0 for an empty dataset.
func Max[T any](ctx context.Context, d *Dataset[T], key func(T) int) (int, error) {
	best := make([]int, len(d.parts))
	seen := make([]bool, len(d.parts))
	err := d.each(ctx, func(i int, part []T) {
		for _, v := range part {
			k := key(v)
			if !seen[i] || k > best[i] {
				best[i], seen[i] = k, true
			}
		}
	})
	if err != nil {
		return 0, err
	}
	result, found := 0, false
	for i := range best {
		if seen[i] && (!found || best[i] > result) {
			result, found = best[i], true
		}
	}
	return result, nil
}

// Mean returns the arithmetic mean of key over all elements, or 0 for an
// empty dataset.
func Mean[T any](ctx context.Context, d *Dataset[T], key func(T) float64) (float64, error) {
	sums := make([]float64, len(d.parts))
	err := d.each(ctx, func(i int, part []T) {
		for _, v := range part {
			sums[i] += key(v)
		}
	})
	if err != nil {
		return 0, err
	}
	n := d.Len()
	if n == 0 {
		return 0, nil
	}
	total := 0.0
	for _, s := range sums {
		total += s
	}
	return total / float64(n), nil
}

// CollectAsMap materializes the dataset into a single map built from kv.
// Partitions are collected concurrently and merged after the barrier; if two
// elements produce the same key, the one from the later partition wins.
func CollectAsMap[T any, K comparable, V any](ctx context.Context, d *Dataset[T], kv func(T) (K, V)) (map[K]V, error) {
	locals := make([]map[K]V, len(d.parts))
	err := d.each(ctx, func(i int, part []T) {
		m := make(map[K]V, len(part))
		for _, v := range part {
			k, val := kv(v)
			m[k] = val
		}
		locals[i] = m
	})
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, d.Len())
	for _, m := range locals {
		for k, v := range m {
			out[k] = v
		}
	}
	return out, nil
}

// each runs fn once per partition on the worker pool and waits for all of
// them. fn must only write to state owned by partition i.
func (d *Dataset[T]) each(ctx context.Context, fn func(i int, part []T)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, part := range d.parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i, part)
			return nil
		})
	}
	return g.Wait()
}
