package matrix

import "math"

// Point is a 2-D Euclidean coordinate, as parsed from a NODE_COORD_SECTION.
type Point struct {
	X, Y float64
}

// Adjacency builds the symmetric Euclidean distance matrix for coords.
// The diagonal is zero by construction (distance from a point to itself).
func Adjacency(coords []Point) (*Dense, error) {
	n := len(coords)
	d, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := euclidean(coords[i], coords[j])
			// Set() cannot fail here: i, j are always in range.
			_ = d.Set(i, j, dist)
			_ = d.Set(j, i, dist)
		}
	}
	return d, nil
}

func euclidean(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
