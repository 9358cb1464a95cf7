// Package matrix provides a dense, row-major numeric matrix used throughout
// cvrp-aco for the adjacency (distance) matrix and the pheromone field.
//
// Design goals, carried over from the teacher's matrix package:
//   - Strict sentinel errors on bad shape/index, never panics on caller input.
//   - No hidden allocations on the hot paths (At/Set/Update are O(1)).
//   - A single concrete backing type (Dense) behind a small Matrix interface,
//     so callers that only need read/write access don't need to know about
//     the flat-slice storage layout.
package matrix
