package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cvrp-aco/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdjacency_SymmetricZeroDiagonal(t *testing.T) {
	t.Parallel()

	coords := []matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	adj, err := matrix.Adjacency(coords)
	require.NoError(t, err)
	require.Equal(t, 3, adj.Size())

	for i := 0; i < 3; i++ {
		d, err := adj.At(i, i)
		require.NoError(t, err)
		require.Zero(t, d)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dij, err := adj.At(i, j)
			require.NoError(t, err)
			dji, err := adj.At(j, i)
			require.NoError(t, err)
			require.InDelta(t, dij, dji, 1e-12)
		}
	}

	d01, err := adj.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d01, 1e-12)
}

func TestAdjacency_Empty(t *testing.T) {
	t.Parallel()

	_, err := matrix.Adjacency(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
