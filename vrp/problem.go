// Package vrp defines the parsed-input boundary type for the solver: a
// Capacitated Vehicle Routing Problem instance, immutable once constructed.
package vrp

import (
	"errors"

	"github.com/katalvlaran/cvrp-aco/matrix"
)

// ErrCapacityTooSmall indicates Capacity is less than some customer's demand,
// making that customer unserviceable by any single vehicle trip.
var ErrCapacityTooSmall = errors.New("vrp: capacity smaller than a customer demand")

// ErrDepotHasDemand indicates Demands[0] != 0; node 0 is the depot by
// convention and must have zero demand.
var ErrDepotHasDemand = errors.New("vrp: depot (node 0) has non-zero demand")

// Problem is an immutable CVRP instance: a symmetric distance matrix over
// N nodes (node 0 is the depot), a per-node demand vector, and a single
// vehicle capacity shared by the whole fleet.
type Problem struct {
	Adjacency matrix.Matrix
	Demands   []int
	Capacity  int
}

// New validates and constructs a Problem. It is the single place the
// precondition from spec.md §7 ("capacity >= max(demands)") is enforced —
// everything downstream trusts it and never re-checks.
func New(adjacency matrix.Matrix, demands []int, capacity int) (*Problem, error) {
	if len(demands) == 0 || demands[0] != 0 {
		return nil, ErrDepotHasDemand
	}
	for _, d := range demands {
		if d > capacity {
			return nil, ErrCapacityTooSmall
		}
	}
	return &Problem{Adjacency: adjacency, Demands: demands, Capacity: capacity}, nil
}

// NumNodes returns N, the node count (including the depot).
func (p *Problem) NumNodes() int { return len(p.Demands) }
