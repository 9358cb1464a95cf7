// Command cvrpaco solves a single CVRP instance read from a VRPLIB-like
// file and prints the best tour found to standard output (spec.md §6).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/cvrp-aco/ant"
	"github.com/katalvlaran/cvrp-aco/sim"
	"github.com/katalvlaran/cvrp-aco/vrplib"
)

// Exit codes per SPEC_FULL.md §6.2.
const (
	exitOK         = 0
	exitParseOrIO  = 1
	exitInfeasible = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout *os.File) int {
	fs := flag.NewFlagSet("cvrpaco", flag.ContinueOnError)
	vrpPath := fs.String("vrp", "", "path to a VRPLIB-like .vrp problem file")
	if err := fs.Parse(args); err != nil {
		return exitParseOrIO
	}
	if *vrpPath == "" {
		log.Println("cvrpaco: -vrp is required")
		return exitParseOrIO
	}

	problem, err := vrplib.ParseFile(*vrpPath)
	if err != nil {
		log.Printf("cvrpaco: %v", err)
		return exitParseOrIO
	}

	simulator, err := sim.On(problem)
	if err != nil {
		log.Printf("cvrpaco: %v", err)
		return exitParseOrIO
	}

	if _, err := simulator.Run(stdout); err != nil {
		if errors.Is(err, ant.ErrInfeasibleProblem) {
			fmt.Fprintln(stdout, "cvrpaco: problem is infeasible under the given capacity")
			return exitInfeasible
		}
		log.Printf("cvrpaco: %v", err)
		return exitParseOrIO
	}

	return exitOK
}
