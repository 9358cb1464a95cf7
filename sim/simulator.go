// Package sim owns the colony and pheromone field, drives the ACO cycle
// loop, applies evaporation and rank-based reinforcement, and tracks the
// global best tour across the run.
package sim

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/cvrp-aco/ant"
	"github.com/katalvlaran/cvrp-aco/matrix"
	"github.com/katalvlaran/cvrp-aco/optimizer"
	"github.com/katalvlaran/cvrp-aco/vrp"
)

// RunStats summarizes a completed run, letting callers other than the CLI
// inspect the outcome without scraping the printed report.
type RunStats struct {
	CyclesRun              int
	CyclesSinceImprovement int
	Elapsed                time.Duration
	BestTourCost           float64
	BestTour               []int
}

// Simulator owns the pheromone field and colony for one problem instance
// and drives cycles to convergence or the cycle cap (spec.md §4.4).
type Simulator struct {
	problem    *vrp.Problem
	cfg        Config
	rng        *rand.Rand
	pheromones matrix.Matrix

	ants []*ant.Ant

	curCycle               int
	cyclesSinceImprovement int
	bestTourCost           float64
	bestTour               []int
}

// On constructs a Simulator for problem using DefaultConfig and a
// process-seeded RNG, mirroring spec.md §4.4's construction step.
func On(problem *vrp.Problem) (*Simulator, error) {
	return OnWithConfig(problem, DefaultConfig(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// OnWithConfig constructs a Simulator with an explicit Config and RNG, so
// tests can shrink MaxCycles/NoImprovementCap and drive a deterministic
// sequence without touching algorithm code.
func OnWithConfig(problem *vrp.Problem, cfg Config, rng *rand.Rand) (*Simulator, error) {
	n := problem.NumNodes()
	pheromones, err := matrix.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := pheromones.Set(i, j, 1.0); err != nil {
				return nil, err
			}
			if err := pheromones.Set(j, i, 1.0); err != nil {
				return nil, err
			}
		}
	}

	s := &Simulator{
		problem:      problem,
		cfg:          cfg,
		rng:          rng,
		pheromones:   pheromones,
		bestTourCost: math.Inf(1),
	}
	s.resetAnts()
	return s, nil
}

// resetAnts discards the previous cycle's colony and allocates a fresh one,
// one ant per node — the open question in spec.md §9 ("colony size = node
// count") resolved the same way the source does it, without elevating it
// to a requirement.
func (s *Simulator) resetAnts() {
	n := s.problem.NumNodes()
	s.ants = make([]*ant.Ant, n)
	for i := range s.ants {
		s.ants[i] = ant.New(n, s.problem.Capacity, s.cfg.Alpha, s.cfg.Beta, s.cfg.Gamma)
	}
}

// Run drives the main cycle (spec.md §4.4) until either the cycle cap or
// the no-improvement cap is reached, writing the spec-mandated progress
// report to w as it goes.
func (s *Simulator) Run(w io.Writer) (RunStats, error) {
	start := time.Now()

	for {
		s.curCycle++
		if s.curCycle >= s.cfg.MaxCycles {
			break
		}

		s.resetAnts()
		if err := s.updateAnts(); err != nil {
			return RunStats{}, err
		}

		if !s.tryFindBestTour(w) {
			break
		}

		if err := s.evaporate(); err != nil {
			return RunStats{}, err
		}
		if err := s.updatePheromones(); err != nil {
			return RunStats{}, err
		}
	}

	stats := RunStats{
		CyclesRun:              s.curCycle,
		CyclesSinceImprovement: s.cyclesSinceImprovement,
		Elapsed:                time.Since(start),
		BestTourCost:           s.bestTourCost,
		BestTour:               s.bestTour,
	}
	fmt.Fprintf(w, "Best found VRP solutions of cost %v by visiting:\n", stats.BestTourCost)
	writeRoutes(w, stats.BestTour)
	fmt.Fprintf(w, "Took %v\n", stats.Elapsed)

	return stats, nil
}

// updateAnts walks every ant to completion and 2-opts its finished tour
// (spec.md §4.4 "update_ants").
func (s *Simulator) updateAnts() error {
	for _, a := range s.ants {
		for !a.Done() {
			if err := a.MoveToNext(s.problem.Adjacency, s.pheromones, s.problem.Demands, s.rng); err != nil {
				return err
			}
		}
		if err := a.Complete(s.problem.Adjacency); err != nil {
			return err
		}
		if err := a.OptimizePath(s.problem.Adjacency, optimizer.TwoOpt{Threshold: s.cfg.TwoOptThreshold}); err != nil {
			return err
		}
	}
	return nil
}

// tryFindBestTour adopts the best ant of the cycle if it beats the running
// best, and reports either way (spec.md §4.4 "try_find_best_tour"). It
// returns false when the no-improvement cap has been exceeded, signaling
// the caller to stop.
func (s *Simulator) tryFindBestTour(w io.Writer) bool {
	improved := false
	for _, a := range s.ants {
		if a.PathCost() < s.bestTourCost {
			s.bestTourCost = a.PathCost()
			s.bestTour = append([]int(nil), a.PathTaken()...)
			improved = true
		}
	}

	if improved {
		s.cyclesSinceImprovement = 0
		fmt.Fprintf(w, "New best found VRP solution of cost %v visiting\n", s.bestTourCost)
		fmt.Fprintln(w, "Current Paths:")
		writeRoutes(w, s.bestTour)
		fmt.Fprintf(w, "Current cycle: %d\n", s.curCycle)
		return true
	}

	s.cyclesSinceImprovement++
	fmt.Fprintf(w, "Could not find route beating %v\n", s.bestTourCost)
	fmt.Fprintf(w, "Current cycle: %d\n", s.curCycle)
	return s.cyclesSinceImprovement <= s.cfg.NoImprovementCap
}

// evaporate multiplies every pheromone entry by phi = base + scale/avg,
// where avg is the mean path cost across the colony (spec.md §4.4
// "evaporate"). Both (i,j) and (j,i) are touched explicitly, matching the
// specified (not merely mathematically equivalent) behavior.
func (s *Simulator) evaporate() error {
	var total float64
	for _, a := range s.ants {
		total += a.PathCost()
	}
	avg := total / float64(len(s.ants))
	phi := s.cfg.EvaporationBase + s.cfg.EvaporationScale/avg

	n := s.pheromones.Size()
	scale := func(v float64) float64 { return v * phi }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := s.pheromones.Update(i, j, scale); err != nil {
				return err
			}
		}
	}
	return nil
}

// updatePheromones reinforces the top ReinforceTopK ants by rank, writing
// only the directional (u,v) entry — never (v,u) — per spec.md §4.4 and
// §9 ("Directional reinforcement vs symmetric field").
func (s *Simulator) updatePheromones() error {
	ranked := append([]*ant.Ant(nil), s.ants...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].PathCost() < ranked[j].PathCost() })

	topK := s.cfg.ReinforceTopK
	if topK > len(ranked) {
		topK = len(ranked)
	}

	for rank := 0; rank < topK; rank++ {
		a := ranked[rank]
		weight := float64(topK-rank) / a.PathCost()
		path := a.PathTaken()
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			if err := s.pheromones.Update(u, v, func(cur float64) float64 { return cur + weight }); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRoutes prints each non-empty route at its 1-based index within the
// full PathToRoutes segmentation, per spec.md §6 ("Formatted routes"):
// "Route #i: v1 v2 ... vm " with the trailing space intentional. The index
// counts every segment PathToRoutes produces — including empty ones, which
// arise wherever a tour contains a zero-customer depot bounce (0 0) — it is
// only the *printing* that is skipped for those, not the numbering; a
// separate printed-only counter would desynchronize i from the segment's
// true position the moment a tour contains such a bounce.
func writeRoutes(w io.Writer, path []int) {
	routes := optimizer.PathToRoutes(path)
	for i, r := range routes {
		if len(r) == 0 {
			continue
		}
		fmt.Fprintf(w, "Route #%d: ", i+1)
		for _, v := range r {
			fmt.Fprintf(w, "%d ", v)
		}
		fmt.Fprintln(w)
	}
}
