package vrplib_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cvrp-aco/vrplib"
	"github.com/stretchr/testify/require"
)

const validDoc = `NAME : toy
COMMENT : (a tiny three-customer instance)
TYPE : CVRP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
CAPACITY : 10
NODE_COORD_SECTION
1 0 0
2 1 0
3 0 1
4 1 1
DEMAND_SECTION
1 0
2 3
3 4
4 2
`

func TestParse_ValidDocument(t *testing.T) {
	t.Parallel()

	p, err := vrplib.Parse(strings.NewReader(validDoc))
	require.NoError(t, err)
	require.Equal(t, 4, p.NumNodes())
	require.Equal(t, 10, p.Capacity)
	require.Equal(t, []int{0, 3, 4, 2}, p.Demands)

	d01, err := p.Adjacency.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d01, 1e-9)
}

func TestParse_WrongType(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(validDoc, "TYPE : CVRP", "TYPE : TSP", 1)
	_, err := vrplib.Parse(strings.NewReader(doc))
	require.Error(t, err)

	var parseErr *vrplib.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)
}

func TestParse_WrongEdgeWeightType(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(validDoc, "EDGE_WEIGHT_TYPE : EUC_2D", "EDGE_WEIGHT_TYPE : GEO", 1)
	_, err := vrplib.Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParse_TruncatedFile(t *testing.T) {
	t.Parallel()

	lines := strings.Split(validDoc, "\n")
	truncated := strings.Join(lines[:len(lines)-3], "\n")

	_, err := vrplib.Parse(strings.NewReader(truncated))
	require.Error(t, err)

	var parseErr *vrplib.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_CapacityTooSmall(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(validDoc, "CAPACITY : 10", "CAPACITY : 1", 1)
	_, err := vrplib.Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParseFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := vrplib.ParseFile("/nonexistent/path/does-not-exist.vrp")
	require.Error(t, err)

	var parseErr *vrplib.ParseError
	require.ErrorAs(t, err, &parseErr)
}
