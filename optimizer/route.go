package optimizer

// PathToRoutes splits a depot-delimited tour into per-vehicle route
// segments. Every occurrence of node 0 starts a new (initially empty)
// segment; non-zero nodes are appended to the current segment. The final
// segment is typically empty, since a well-formed tour ends at the depot.
//
// Example: [0 3 4 0 1 2 0] -> [[3 4] [1 2] []].
func PathToRoutes(path []int) [][]int {
	routes := make([][]int, 0)
	for _, node := range path {
		if node == 0 {
			routes = append(routes, []int{})
			continue
		}
		last := len(routes) - 1
		routes[last] = append(routes[last], node)
	}
	return routes
}

// bracketRoutes frames each segment from PathToRoutes with a leading and
// trailing depot visit, then discards the final (trailing, empty) segment
// a well-formed closed tour always produces — not every empty segment, so
// a legitimate zero-customer bounce (0 -> 0) mid-tour still becomes its own
// [0 0] route rather than silently vanishing.
func bracketRoutes(path []int) [][]int {
	segments := PathToRoutes(path)
	if len(segments) > 0 {
		segments = segments[:len(segments)-1]
	}
	routes := make([][]int, 0, len(segments))
	for _, seg := range segments {
		route := make([]int, 0, len(seg)+2)
		route = append(route, 0)
		route = append(route, seg...)
		route = append(route, 0)
		routes = append(routes, route)
	}
	return routes
}

// joinRoutes rejoins bracketed routes into one tour, letting consecutive
// routes share their depot visit: [0 1 0] and [0 3 0] join as [0 1 0 3 0].
func joinRoutes(routes [][]int) []int {
	total := 0
	for _, r := range routes {
		total += len(r)
	}
	out := make([]int, 0, total)
	for i, r := range routes {
		if i > 0 {
			r = r[1:]
		}
		out = append(out, r...)
	}
	return out
}
