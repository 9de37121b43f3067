// SPDX-License-Identifier: MIT

// Package extract copies one column of a matrix into a vector.
package extract

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// RowSelector picks the rows of the extracted column. The zero value selects
// no rows.
type RowSelector struct {
	indices engine.Indices
}

// AllRows selects every row in order.
func AllRows() RowSelector { return RowSelector{indices: engine.All()} }

// Rows selects the given rows in the given order; output position k receives
// row rows[k]. Repeats are allowed.
func Rows(rows ...uint64) RowSelector { return RowSelector{indices: engine.List(rows...)} }

// Count returns how many rows the selector picks from a matrix with n rows.
func (s RowSelector) Count(n uint64) uint64 { return s.indices.Len(n) }

// MatrixColumnExtractor computes w<mask> = accum(w, A(rows, column)).
//
// With the first-operand transpose option it reads row `column` of A instead.
type MatrixColumnExtractor[D valuetype.ValueType] struct {
	accum algebra.Accumulator[D]
	opts  options.OperatorOptions
}

// NewMatrixColumnExtractor binds options and an accumulator.
// A nil accum behaves as algebra.Assignment.
func NewMatrixColumnExtractor[D valuetype.ValueType](opts options.OperatorOptions, accum algebra.Accumulator[D]) *MatrixColumnExtractor[D] {
	return &MatrixColumnExtractor[D]{accum: algebra.OrAssignment(accum), opts: opts}
}

// Apply extracts the selected rows of column into out.
func (e *MatrixColumnExtractor[D]) Apply(matrix collections.MatrixSource, column uint64, rows RowSelector, out collections.VectorTarget) error {
	return e.ApplyWithMask(mask.SelectEntireVector(out.Context()), matrix, column, rows, out)
}

// ApplyWithMask extracts into the coordinates of out that m selects.
//
// Errors:
//   - execution.ErrDimensionMismatch when out's length differs from the
//     number of selected rows.
//   - execution.ErrIndexOutOfBounds when column or a selected row lies
//     outside the matrix. In NonBlocking mode the row check may surface on a
//     later call that touches out.
func (e *MatrixColumnExtractor[D]) ApplyWithMask(m mask.VectorMask, matrix collections.MatrixSource, column uint64, rows RowSelector, out collections.VectorTarget) error {
	w := out.MutableEngineVector()
	desc := e.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Col_extract", func() engine.Info {
		return engine.ColExtract(w, m.EngineVector(), e.accum.AccumulatorHandle(), matrix.EngineMatrix(), rows.indices, column, desc)
	}, w)
}
