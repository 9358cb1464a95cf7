package sim

import (
	"github.com/katalvlaran/cvrp-aco/ant"
	"github.com/katalvlaran/cvrp-aco/optimizer"
)

// Config bundles every tuned constant the Simulator needs, mirroring
// tsp.Options/tsp.DefaultOptions in the teacher repo: production code uses
// DefaultConfig unchanged, and tests shrink MaxCycles/NoImprovementCap (or
// retune Alpha/Beta/Gamma/TwoOptThreshold) to keep runs fast or explore
// variants without touching algorithm code.
type Config struct {
	// MaxCycles bounds the number of cycles the run executes (spec.md §4.4).
	MaxCycles int

	// NoImprovementCap stops the run once more than this many consecutive
	// cycles pass without a new best tour (the run ends on non-improving
	// cycle NoImprovementCap+1). Spec.md fixes this at MaxCycles/2.
	NoImprovementCap int

	// Alpha, Beta, Gamma are the savings/pheromone/attractiveness exponents
	// of the ant edge-weight formula (spec.md §4.2), threaded into every
	// ant.New call a Simulator makes.
	Alpha, Beta, Gamma float64

	// TwoOptThreshold is the minimum cost reduction a 2-opt swap must
	// produce to be accepted (spec.md §4.3), threaded into the TwoOpt
	// strategy a Simulator runs after each ant completes its tour.
	TwoOptThreshold float64

	// EvaporationBase and EvaporationScale define the evaporation factor
	// phi = EvaporationBase + EvaporationScale/avg (spec.md §4.4).
	EvaporationBase, EvaporationScale float64

	// ReinforceTopK is the number of top-ranked ants that deposit
	// pheromone each cycle (spec.md §4.4 "rank-based reinforcement").
	ReinforceTopK int
}

// DefaultConfig reproduces the fixed constants of spec.md §4.4/§9 exactly.
func DefaultConfig() Config {
	return Config{
		MaxCycles:        150,
		NoImprovementCap: 75,
		Alpha:            ant.DefaultAlpha,
		Beta:             ant.DefaultBeta,
		Gamma:            ant.DefaultGamma,
		TwoOptThreshold:  optimizer.ImprovementThreshold,
		EvaporationBase:  0.5,
		EvaporationScale: 80.0,
		ReinforceTopK:    3,
	}
}
