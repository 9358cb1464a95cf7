package matrix

import "fmt"

// Matrix is a square, dense, real-valued grid with bounds-checked access.
// Implementations are not required to be goroutine-safe; the simulator owns
// exclusive write access to both the adjacency matrix and the pheromone
// field for the duration of a run (see spec.md §5).
type Matrix interface {
	// Size returns N for an N×N matrix.
	Size() int

	// At returns M[i][j]. Returns ErrOutOfRange if i or j is outside [0, Size()).
	At(i, j int) (float64, error)

	// Set assigns M[i][j] = v. Returns ErrOutOfRange if i or j is out of bounds.
	Set(i, j int, v float64) error

	// Update replaces M[i][j] with f(M[i][j]).
	Update(i, j int, f func(float64) float64) error

	// Row returns a copy of the i-th row as a contiguous slice of length Size().
	Row(i int) ([]float64, error)
}

// Dense is the sole concrete Matrix implementation: an N×N grid stored
// row-major in a single flat slice.
type Dense struct {
	n    int
	data []float64
}

// New allocates a zero-filled N×N Dense matrix.
func New(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FilledWith allocates an N×N Dense matrix with every cell equal to v.
func FilledWith(n int, v float64) (*Dense, error) {
	d, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = v
	}
	return d, nil
}

// Size returns N.
func (d *Dense) Size() int { return d.n }

func (d *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("matrix.Dense: (%d,%d): %w", i, j, ErrOutOfRange)
	}
	return i*d.n + j, nil
}

// At returns M[i][j].
func (d *Dense) At(i, j int) (float64, error) {
	idx, err := d.index(i, j)
	if err != nil {
		return 0, err
	}
	return d.data[idx], nil
}

// Set assigns M[i][j] = v.
func (d *Dense) Set(i, j int, v float64) error {
	idx, err := d.index(i, j)
	if err != nil {
		return err
	}
	d.data[idx] = v
	return nil
}

// Update replaces M[i][j] with f(M[i][j]).
func (d *Dense) Update(i, j int, f func(float64) float64) error {
	idx, err := d.index(i, j)
	if err != nil {
		return err
	}
	d.data[idx] = f(d.data[idx])
	return nil
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.n {
		return nil, fmt.Errorf("matrix.Dense: row %d: %w", i, ErrOutOfRange)
	}
	out := make([]float64, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])
	return out, nil
}
