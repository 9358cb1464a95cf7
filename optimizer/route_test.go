package optimizer_test

import (
	"testing"

	"github.com/katalvlaran/cvrp-aco/optimizer"
	"github.com/stretchr/testify/require"
)

func TestPathToRoutes(t *testing.T) {
	t.Parallel()

	got := optimizer.PathToRoutes([]int{0, 3, 4, 0, 1, 2, 0})
	require.Equal(t, [][]int{{3, 4}, {1, 2}, {}}, got)
}
