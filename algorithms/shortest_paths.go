// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/multiply"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// PathOption configures ShortestPaths.
type PathOption func(*pathOptions)

type pathOptions struct {
	ctx       context.Context
	maxRounds uint64
}

// WithContext allows cancellation between relaxation rounds.
func WithContext(ctx context.Context) PathOption {
	return func(o *pathOptions) { o.ctx = ctx }
}

// WithMaxRounds caps the number of relaxation rounds. Distances returned
// under a cap lower than the vertex count may not be final, and negative
// cycles are not detected. Zero keeps the default of n rounds.
func WithMaxRounds(rounds uint64) PathOption {
	return func(o *pathOptions) { o.maxRounds = rounds }
}

// ShortestPaths computes single-source shortest distances over edge weights.
// weights[i][j] is the cost of edge i→j; the result stores one entry per
// reachable vertex, with the source at 0.
//
// Each round relaxes every edge at once:
//
//	dist = min(dist, Aᵀ min.+ dist)
//
// A round that changes nothing ends the search. If round n still changes a
// distance, a negative cycle is reachable and ErrNegativeCycle is returned.
func ShortestPaths[T valuetype.Number](weights *collections.SparseMatrix[T], source uint64, opts ...PathOption) (*collections.SparseVector[T], error) {
	cfg := pathOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	n, err := vertexCount(weights, source)
	if err != nil {
		return nil, err
	}
	rounds, capped := n, false
	if cfg.maxRounds > 0 && cfg.maxRounds < n {
		rounds, capped = cfg.maxRounds, true
	}

	dist, err := collections.NewSparseVector[T](weights.Context(), n)
	if err != nil {
		return nil, err
	}
	if err = dist.SetElement(source, 0); err != nil {
		return nil, err
	}

	relaxOpts, err := options.New(options.WithTransposeFirstOperand())
	if err != nil {
		return nil, err
	}
	relax := multiply.NewMatrixVectorMultiplication[T](algebra.MinPlus[T](), relaxOpts, algebra.Min[T]())

	previous, err := dist.Elements()
	if err != nil {
		return nil, err
	}
	for round := uint64(1); round <= rounds; round++ {
		if err = cfg.ctx.Err(); err != nil {
			return nil, err
		}
		if err = relax.Apply(weights, dist, dist); err != nil {
			return nil, fmt.Errorf("algorithms: relaxation round %d: %w", round, err)
		}
		current, err := dist.Elements()
		if err != nil {
			return nil, err
		}
		if slices.Equal(previous, current) {
			weights.Context().Logger().Debug("shortest paths converged", "source", source, "rounds", round)
			return dist, nil
		}
		previous = current
	}
	if capped {
		return dist, nil
	}

	return nil, fmt.Errorf("%w: still relaxing after %d rounds", ErrNegativeCycle, n)
}
