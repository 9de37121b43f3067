// SPDX-License-Identifier: MIT

// Package builder produces deterministic adjacency matrices for common graph
// topologies: fixtures for the algorithms package, the appliers' tests and
// benchmarks.
//
// A build composes one or more Constructors over vertex indices 0..n-1 and
// materialises the collected edges as an n×n collections.SparseMatrix[T]
// where A[i][j] holds the weight of edge i→j. Constructors that share vertex
// indices overlap; a repeated edge keeps the weight emitted last.
//
// The package offers:
//
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Options (BuilderOption): WithDirected, WithLoops, WithSeed, WithRand,
//     WithWeightFn.
//   - Weight distributions (WeightFn): ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed yield identical matrices.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless values.
//   - Undirected graphs (the default) store both A[i][j] and A[j][i].
//
// Example:
//
//	g, err := builder.BuildAdjacency[float64](ctx, []builder.BuilderOption{
//		builder.WithSeed(7),
//		builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
//	}, builder.Grid(4, 4))
package builder
