// SPDX-License-Identifier: MIT

// Package algorithms expresses classic graph algorithms as sequences of
// semiring operations on sparse adjacency matrices.
//
// A graph with n vertices is an n×n matrix A where a stored A[i][j] is the
// edge i→j. Every algorithm here reads A through the appliers of this module
// and never walks adjacency lists by hand.
//
//   - BFSLevels: level-synchronous breadth-first search. Each level is one
//     boolean mxv (LogicalOrLogicalAnd) of Aᵀ with the frontier, masked by the
//     complement of the visited set and written with replace.
//   - ShortestPaths: Bellman-Ford. Each round is one MinPlus mxv of Aᵀ with
//     the distance vector, folded back into it through a Min accumulator.
//
// Complexity (engine reference implementation):
//   - BFSLevels:     O(d·nnz(A)) where d is the eccentricity of the source.
//   - ShortestPaths: O(n·nnz(A)) worst case; stops at the first round that
//     changes nothing.
//
// Errors (sentinel):
//   - ErrNilMatrix        the adjacency argument is nil.
//   - ErrNotSquare        the matrix is not n×n.
//   - ErrSourceOutOfRange source ≥ n.
//   - ErrNegativeCycle    ShortestPaths found a negative cycle reachable
//     from the source.
//
// Engine failures surface as *execution.Error; cancellation returns the
// context's error.
package algorithms

import "errors"

var (
	// ErrNilMatrix is returned when the adjacency matrix is nil.
	ErrNilMatrix = errors.New("algorithms: matrix is nil")

	// ErrNotSquare is returned when the adjacency matrix is not square.
	ErrNotSquare = errors.New("algorithms: adjacency matrix must be square")

	// ErrSourceOutOfRange is returned when the source vertex lies outside
	// the matrix.
	ErrSourceOutOfRange = errors.New("algorithms: source vertex out of range")

	// ErrNegativeCycle is returned when a negative cycle is reachable from
	// the source, so shortest distances are undefined.
	ErrNegativeCycle = errors.New("algorithms: negative cycle reachable from source")
)
