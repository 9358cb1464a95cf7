package optimizer_test

import (
	"testing"

	"github.com/katalvlaran/cvrp-aco/matrix"
	"github.com/katalvlaran/cvrp-aco/optimizer"
	"github.com/stretchr/testify/require"
)

// square returns the adjacency matrix of a unit square's corners, scaled by
// side, with node 0 as the depot: (0,0) (side,0) (side,side) (0,side).
func square(t *testing.T, side float64) matrix.Matrix {
	t.Helper()
	coords := []matrix.Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}
	adj, err := matrix.Adjacency(coords)
	require.NoError(t, err)
	return adj
}

func TestTwoOpt_UncrossesXPattern(t *testing.T) {
	t.Parallel()

	adj := square(t, 10)
	crossing := []int{0, 2, 1, 3, 0}

	crossingCost, err := optimizer.PathLength(crossing, adj)
	require.NoError(t, err)

	uncrossed, cost, err := optimizer.TwoOpt{Threshold: optimizer.ImprovementThreshold}.Optimize(crossing, adj)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3, 0}, uncrossed)
	require.Less(t, cost, crossingCost-optimizer.ImprovementThreshold)
}

func TestTwoOpt_NeverDegrades(t *testing.T) {
	t.Parallel()

	adj := square(t, 10)
	paths := [][]int{
		{0, 1, 2, 3, 0},
		{0, 2, 1, 3, 0},
		{0, 3, 2, 1, 0},
	}

	for _, p := range paths {
		before, err := optimizer.PathLength(p, adj)
		require.NoError(t, err)

		_, after, err := optimizer.TwoOpt{Threshold: optimizer.ImprovementThreshold}.Optimize(p, adj)
		require.NoError(t, err)

		require.LessOrEqual(t, after, before)
	}
}

func TestTwoOpt_IdempotentAtFixedPoint(t *testing.T) {
	t.Parallel()

	adj := square(t, 10)
	once, costOnce, err := optimizer.TwoOpt{Threshold: optimizer.ImprovementThreshold}.Optimize([]int{0, 2, 1, 3, 0}, adj)
	require.NoError(t, err)

	twice, costTwice, err := optimizer.TwoOpt{Threshold: optimizer.ImprovementThreshold}.Optimize(once, adj)
	require.NoError(t, err)

	require.Equal(t, once, twice)
	require.Equal(t, costOnce, costTwice)
}

func TestNoOp_PreservesPath(t *testing.T) {
	t.Parallel()

	adj := square(t, 10)
	path := []int{0, 2, 1, 3, 0}

	out, cost, err := optimizer.NoOp{}.Optimize(path, adj)
	require.NoError(t, err)
	require.Equal(t, path, out)

	want, err := optimizer.PathLength(path, adj)
	require.NoError(t, err)
	require.Equal(t, want, cost)
}

func TestTwoOpt_MultiRoute(t *testing.T) {
	t.Parallel()

	adj := square(t, 10)
	// Two separate single-customer routes; neither can be improved, and the
	// trailing empty segment must not introduce a spurious extra route.
	path := []int{0, 1, 0, 3, 0}

	out, cost, err := optimizer.TwoOpt{Threshold: optimizer.ImprovementThreshold}.Optimize(path, adj)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0, 3, 0}, out)

	want, err := optimizer.PathLength(out, adj)
	require.NoError(t, err)
	require.Equal(t, want, cost)
}
