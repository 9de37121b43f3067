// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/multiply"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// BFSOptions configures traversal behavior.
type BFSOptions struct {
	// Ctx allows cancellation between levels; if nil, context.Background() is used.
	Ctx context.Context

	// MaxDepth stops the search after this level is assigned. Zero means no limit.
	MaxDepth int64

	// OnLevel(depth, reached) is called after the vertices of a level are
	// recorded. If it returns an error, traversal aborts with that error.
	OnLevel func(depth int64, reached uint64) error
}

// BFSLevels assigns every vertex reachable from source its distance in edges.
// The result has one entry per reached vertex; unreachable vertices are
// absent. An edge is a stored entry whose value casts to true.
//
// Steps:
//  1. frontier = {source}, levels = {}.
//  2. Record every true frontier entry in levels at the current depth.
//  3. frontier<¬struct(levels), replace> = Aᵀ ∨.∧ frontier.
//  4. Repeat from 2 until a level reaches no new vertex.
func BFSLevels[T valuetype.ValueType](adjacency *collections.SparseMatrix[T], source uint64, opts *BFSOptions) (*collections.SparseVector[int64], error) {
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}
	n, err := vertexCount(adjacency, source)
	if err != nil {
		return nil, err
	}

	gb := adjacency.Context()
	levels, err := collections.NewSparseVector[int64](gb, n)
	if err != nil {
		return nil, err
	}
	frontier, err := collections.NewSparseVector[bool](gb, n)
	if err != nil {
		return nil, err
	}
	if err = frontier.SetElement(source, true); err != nil {
		return nil, err
	}

	stepOpts, err := options.New(
		options.WithTransposeFirstOperand(),
		options.WithStructuralMask(),
		options.WithReplaceOutput(),
	)
	if err != nil {
		return nil, err
	}
	step := multiply.NewMatrixVectorMultiplication(algebra.LogicalOrLogicalAnd[bool](), stepOpts, nil)
	unvisited := mask.ForVector(levels, mask.Complement())

	for depth := int64(0); ; depth++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		reached, err := record(frontier, levels, depth)
		if err != nil {
			return nil, err
		}
		if reached == 0 {
			break
		}
		gb.Logger().Debug("bfs level", "source", source, "depth", depth, "reached", reached)
		if opts != nil && opts.OnLevel != nil {
			if err = opts.OnLevel(depth, reached); err != nil {
				return nil, err
			}
		}
		if opts != nil && opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			break
		}
		if err = step.ApplyWithMask(unvisited, adjacency, frontier, frontier); err != nil {
			return nil, fmt.Errorf("algorithms: bfs level %d: %w", depth+1, err)
		}
	}

	return levels, nil
}

// record stores depth in levels for every true entry of frontier.
func record(frontier *collections.SparseVector[bool], levels *collections.SparseVector[int64], depth int64) (uint64, error) {
	elements, err := frontier.Elements()
	if err != nil {
		return 0, err
	}
	var reached uint64
	for _, e := range elements {
		if !e.Value {
			continue
		}
		if err = levels.SetElement(e.Index, depth); err != nil {
			return 0, err
		}
		reached++
	}

	return reached, nil
}

// vertexCount validates a square adjacency matrix and a source inside it.
func vertexCount[T valuetype.ValueType](adjacency *collections.SparseMatrix[T], source uint64) (uint64, error) {
	if adjacency == nil {
		return 0, ErrNilMatrix
	}
	size := adjacency.Size()
	if size.Rows != size.Columns {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, size.Rows, size.Columns)
	}
	if source >= size.Rows {
		return 0, fmt.Errorf("%w: source %d, %d vertices", ErrSourceOutOfRange, source, size.Rows)
	}

	return size.Rows, nil
}
