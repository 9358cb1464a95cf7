package optimizer

import "github.com/katalvlaran/cvrp-aco/matrix"

// PathLength sums adjacency[path[i]][path[i+1]] for the whole path.
// Used to recompute cost after any path rewrite (spec.md §4.3 "Cost after
// optimization").
func PathLength(path []int, adjacency matrix.Matrix) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		edge, err := adjacency.At(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		total += edge
	}
	return total, nil
}
