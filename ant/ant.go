// Package ant implements the stateful tour-constructor at the heart of the
// colony: a single Ant walks the customer graph under capacity and
// pheromone guidance, producing one depot-delimited tour per cycle.
package ant

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/cvrp-aco/matrix"
	"github.com/katalvlaran/cvrp-aco/optimizer"
)

// Default exponents of the edge-weight formula (spec.md §4.2). Tuned
// constants — do not retune without updating spec.md §9. Callers that want
// the reference behavior pass these into New; sim.DefaultConfig does so.
const (
	DefaultAlpha = 9.0 // savings exponent: heavily favors Clarke-Wright chaining
	DefaultBeta  = 2.0 // pheromone exponent: moderate, avoids premature convergence
	DefaultGamma = 5.0 // attractiveness exponent: penalizes long direct jumps
)

// ErrInfeasibleProblem is returned by MoveToNext when an ant exceeds 2*N
// steps without completing its tour. Under the stated preconditions this
// cannot happen; it manifests only when some customer's demand exceeds the
// vehicle capacity (spec.md §7), which vrp.New is supposed to reject before
// the core ever sees the problem. The bound exists as a defensive backstop.
var ErrInfeasibleProblem = errors.New("ant: exceeded step bound, problem likely infeasible")

// Ant is a partial or complete tour-builder. See spec.md §3 for the
// invariants it must uphold at every step.
type Ant struct {
	numNodes     int
	capacity     int
	curCapacity  int
	visited      []bool
	visitedCount int
	pathTaken    []int
	pathCost     float64
	steps        int

	alpha, beta, gamma float64
}

// New creates an ant parked at the depot with a full tank. alpha, beta, and
// gamma are the savings/pheromone/attractiveness exponents of the
// edge-weight formula (spec.md §4.2); pass ant.DefaultAlpha/DefaultBeta/
// DefaultGamma for the reference behavior.
func New(numNodes, capacity int, alpha, beta, gamma float64) *Ant {
	visited := make([]bool, numNodes)
	visited[0] = true
	return &Ant{
		numNodes:     numNodes,
		capacity:     capacity,
		curCapacity:  capacity,
		visited:      visited,
		visitedCount: 1,
		pathTaken:    []int{0},
		alpha:        alpha,
		beta:         beta,
		gamma:        gamma,
	}
}

// Done reports whether every node has been visited at least once.
func (a *Ant) Done() bool { return a.visitedCount == a.numNodes }

// CurNode returns the last node in the path taken so far.
func (a *Ant) CurNode() int { return a.pathTaken[len(a.pathTaken)-1] }

// PathTaken returns the ordered sequence of visited node indices so far.
// The caller must not mutate the returned slice.
func (a *Ant) PathTaken() []int { return a.pathTaken }

// PathCost returns the accumulated edge length so far.
func (a *Ant) PathCost() float64 { return a.pathCost }

// maxSteps bounds the number of MoveToNext calls per ant (spec.md §7).
func (a *Ant) maxSteps() int { return 2 * a.numNodes }

// MoveToNext performs one step of tour construction: refills capacity at
// the depot, picks a candidate node by roulette-wheel selection over the
// savings/pheromone/attractiveness weight, and overrides to the depot when
// the candidate would exceed remaining capacity.
//
// Precondition: !a.Done(). Calling MoveToNext on a completed ant is a
// programming bug (spec.md §4.2 "Failure semantics").
func (a *Ant) MoveToNext(adjacency, pheromones matrix.Matrix, demands []int, rng *rand.Rand) error {
	a.steps++
	if a.steps > a.maxSteps() {
		return ErrInfeasibleProblem
	}

	cur := a.CurNode()
	if cur == 0 {
		a.curCapacity = a.capacity
	}

	next, err := a.findNextNode(cur, adjacency, pheromones, demands, rng)
	if err != nil {
		return err
	}

	if demands[next] > a.curCapacity {
		next = 0
	}

	edge, err := adjacency.At(cur, next)
	if err != nil {
		return err
	}
	a.pathCost += edge
	a.curCapacity -= demands[next]
	a.visit(next)

	return nil
}

func (a *Ant) visit(node int) {
	a.pathTaken = append(a.pathTaken, node)
	if !a.visited[node] {
		a.visited[node] = true
		a.visitedCount++
	}
}

// findNextNode computes the Clarke-Wright savings x pheromone x
// attractiveness weight for every unvisited candidate and draws one by
// roulette-wheel selection (spec.md §4.2 "Stochastic selection").
func (a *Ant) findNextNode(cur int, adjacency, pheromones matrix.Matrix, demands []int, rng *rand.Rand) (int, error) {
	weights := make([]float64, a.numNodes)
	var total float64

	distToDepot, err := adjacency.At(cur, 0)
	if err != nil {
		return 0, err
	}

	for v := 0; v < a.numNodes; v++ {
		if a.visited[v] {
			continue
		}

		distFromDepot, err := adjacency.At(0, v)
		if err != nil {
			return 0, err
		}
		distToV, err := adjacency.At(cur, v)
		if err != nil {
			return 0, err
		}
		pher, err := pheromones.At(cur, v)
		if err != nil {
			return 0, err
		}

		savings := distToDepot + distFromDepot - distToV
		attractiveness := 1.0 / distToV
		w := math.Pow(savings, a.alpha) * math.Pow(pher, a.beta) * math.Pow(attractiveness, a.gamma)

		weights[v] = w
		total += w
	}

	// Scan ascending by index, accumulating S, and return the first v with
	// r*T <= S (spec.md §4.2 "Stochastic selection"). Note this is written
	// as r*T rather than r <= S/T: when cur is the depot itself, savings is
	// always zero for every candidate (the Clarke-Wright "return to depot"
	// term degenerates), so T==0 here is routine, not exceptional — and
	// r*T<=S holds already at the first candidate scanned, deterministically
	// picking the lowest unvisited index. The loop is guaranteed to return
	// by the last unvisited candidate, where S==T and r*T<=T always holds.
	r := rng.Float64()
	var sum float64
	for v := 0; v < a.numNodes; v++ {
		if a.visited[v] {
			continue
		}
		sum += weights[v]
		if r*total <= sum {
			return v, nil
		}
	}

	// Unreachable while !a.Done(): at least one unvisited v exists, and the
	// loop above always returns at or before it.
	return 0, errNoUnvisitedCandidate
}

var errNoUnvisitedCandidate = errors.New("ant: no unvisited candidate found (called on a done ant)")

// Complete appends the closing edge back to the depot.
func (a *Ant) Complete(adjacency matrix.Matrix) error {
	edge, err := adjacency.At(a.CurNode(), 0)
	if err != nil {
		return err
	}
	a.pathCost += edge
	a.visit(0)
	return nil
}

// OptimizePath replaces the ant's path and cost with the result of running
// strategy over the current (completed) path.
func (a *Ant) OptimizePath(adjacency matrix.Matrix, strategy optimizer.Strategy) error {
	path, cost, err := strategy.Optimize(a.pathTaken, adjacency)
	if err != nil {
		return err
	}
	a.pathTaken = path
	a.pathCost = cost
	return nil
}
