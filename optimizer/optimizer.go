// Package optimizer provides the per-route tour-improvement strategies that
// run after an ant completes a tour: a no-op baseline and a 2-opt local
// search. Both are specified as a capability — "optimize(path, adjacency) ->
// (path, cost)" — rather than a class hierarchy (spec.md Design Notes), so
// Strategy is a one-method interface and callers hold it by value/interface,
// never by concrete type switch.
package optimizer

import "github.com/katalvlaran/cvrp-aco/matrix"

// Strategy improves (or merely re-scores) a depot-delimited tour.
type Strategy interface {
	// Optimize returns a possibly-improved path and its recomputed cost.
	// The input path is never mutated.
	Optimize(path []int, adjacency matrix.Matrix) ([]int, float64, error)
}
