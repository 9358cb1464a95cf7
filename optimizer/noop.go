package optimizer

import "github.com/katalvlaran/cvrp-aco/matrix"

// NoOp returns the input path unchanged along with its recomputed length.
// It exists to let callers treat "no local search" as just another
// Strategy value, rather than special-casing a nil optimizer.
type NoOp struct{}

// Optimize implements Strategy.
func (NoOp) Optimize(path []int, adjacency matrix.Matrix) ([]int, float64, error) {
	out := make([]int, len(path))
	copy(out, path)

	cost, err := PathLength(out, adjacency)
	if err != nil {
		return nil, 0, err
	}
	return out, cost, nil
}
