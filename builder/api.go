// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// api.go - the BuildAdjacency orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildAdjacency(ctx, bopts, cons...). Resolves cfg,
//     runs cons in order, then materialises one matrix.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical matrices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/valuetype"
)

// Constructor emits the edges of one topology over vertex indices starting
// at 0. Constructors validate their parameters before emitting anything.
type Constructor func(s *edgeSet, cfg builderConfig) error

// BuildAdjacency runs cons in order and returns the n×n adjacency matrix of
// the union of their edges, where n is the largest vertex range any
// constructor touched. Weights are cast into T.
//
// Errors:
//   - ErrConstructFailed when cons is empty or holds a nil constructor.
//   - Any constructor sentinel, wrapped as "BuildAdjacency: %w".
//   - *execution.Error when the engine rejects the matrix.
func BuildAdjacency[T valuetype.Number](ctx *execution.Context, bopts []BuilderOption, cons ...Constructor) (*collections.SparseMatrix[T], error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildAdjacency: no constructors: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	var s edgeSet
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildAdjacency: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&s, cfg); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: %w", err)
		}
	}

	elements := make([]collections.MatrixElement[T], len(s.edges))
	for i, e := range s.edges {
		elements[i] = collections.MatrixElement[T]{Row: e.from, Column: e.to, Value: valuetype.FromEngine[T](e.weight)}
	}
	m, err := collections.MatrixFromElements(ctx, collections.Size{Rows: s.n, Columns: s.n}, elements, algebra.Second[T]())
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}
	ctx.Logger().Debug("adjacency built", "vertices", s.n, "edges", len(s.edges))

	return m, nil
}
