// Package vrplib reads the VRPLIB-like text format described in spec.md §6
// and produces a vrp.Problem. It is a thin I/O collaborator, explicitly out
// of the core's scope (spec.md §1): the core never sees malformed input,
// because Parse surfaces one ParseError and stops before a Problem exists.
package vrplib

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cvrp-aco/matrix"
	"github.com/katalvlaran/cvrp-aco/vrp"
)

const (
	lineDimension        = 3
	lineCapacity         = 5
	lineNodeCoordSection = 6

	expectedType           = "CVRP"
	expectedEdgeWeightType = "EUC_2D"
)

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*vrp.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, parseErr(0, "opening input file", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a complete VRPLIB-like document from r (spec.md §6): six
// header lines in fixed order, a NODE_COORD_SECTION of dimension lines,
// then a DEMAND_SECTION of dimension lines. Line numbers in returned
// ParseErrors are 1-based, matching how a human reading the file counts.
func Parse(r io.Reader) (*vrp.Problem, error) {
	lines, err := readAllLines(r)
	if err != nil {
		return nil, parseErr(0, "reading input", err)
	}

	minHeaderLines := lineNodeCoordSection + 1
	if len(lines) < minHeaderLines {
		return nil, parseErr(len(lines), "header", errShortFile)
	}

	if err := expectKeyValue(lines, 2, "TYPE", expectedType); err != nil {
		return nil, err
	}

	dimension, err := parseKeyValueInt(lines, lineDimension, "DIMENSION")
	if err != nil {
		return nil, err
	}
	if dimension <= 0 {
		return nil, parseErr(lineDimension+1, "DIMENSION", errNonPositiveDimension)
	}

	if err := expectKeyValue(lines, 4, "EDGE_WEIGHT_TYPE", expectedEdgeWeightType); err != nil {
		return nil, err
	}

	capacity, err := parseKeyValueInt(lines, lineCapacity, "CAPACITY")
	if err != nil {
		return nil, err
	}

	coordStart := lineNodeCoordSection + 1
	coordEnd := coordStart + dimension // index of the "DEMAND_SECTION" label line
	demandStart := coordEnd + 1
	demandEnd := demandStart + dimension

	if len(lines) < demandEnd {
		return nil, parseErr(len(lines), "DEMAND_SECTION", errShortFile)
	}

	coords := make([]matrix.Point, dimension)
	for i := 0; i < dimension; i++ {
		lineNo := coordStart + i
		p, err := parseCoordLine(lines[lineNo])
		if err != nil {
			return nil, parseErr(lineNo+1, "NODE_COORD_SECTION entry", err)
		}
		coords[i] = p
	}

	demands := make([]int, dimension)
	for i := 0; i < dimension; i++ {
		lineNo := demandStart + i
		d, err := parseDemandLine(lines[lineNo])
		if err != nil {
			return nil, parseErr(lineNo+1, "DEMAND_SECTION entry", err)
		}
		demands[i] = d
	}

	adjacency, err := matrix.Adjacency(coords)
	if err != nil {
		return nil, parseErr(coordStart+1, "building adjacency matrix", err)
	}

	problem, err := vrp.New(adjacency, demands, capacity)
	if err != nil {
		return nil, parseErr(demandStart+1, "validating problem", err)
	}
	return problem, nil
}

func readAllLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// expectKeyValue checks that lines[idx] is "KEY : VALUE" and VALUE equals want.
func expectKeyValue(lines []string, idx int, key, want string) error {
	_, value, err := splitKeyValue(lines[idx])
	if err != nil {
		return parseErr(idx+1, key, err)
	}
	if value != want {
		return parseErr(idx+1, key, errUnexpectedValue(key, want, value))
	}
	return nil
}

func parseKeyValueInt(lines []string, idx int, key string) (int, error) {
	_, value, err := splitKeyValue(lines[idx])
	if err != nil {
		return 0, parseErr(idx+1, key, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, parseErr(idx+1, key, err)
	}
	return n, nil
}

func splitKeyValue(line string) (key, value string, err error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return "", "", errMissingColon
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// parseCoordLine parses "<id> <x> <y>"; id is 1-based and discarded.
func parseCoordLine(line string) (matrix.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return matrix.Point{}, errFieldCount
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return matrix.Point{}, err
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return matrix.Point{}, err
	}
	return matrix.Point{X: x, Y: y}, nil
}

// parseDemandLine parses "<id> <demand>"; id is 1-based and discarded.
func parseDemandLine(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, errFieldCount
	}
	return strconv.Atoi(fields[1])
}
