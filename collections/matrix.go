// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/valuetype"
)

// SparseMatrix is a matrix of fixed shape over domain T.
type SparseMatrix[T valuetype.ValueType] struct {
	ctx    *execution.Context
	handle *engine.Matrix
	size   Size
}

var _ MatrixTarget = (*SparseMatrix[float64])(nil)

// NewSparseMatrix creates an empty matrix of the given shape.
func NewSparseMatrix[T valuetype.ValueType](ctx *execution.Context, size Size) (*SparseMatrix[T], error) {
	var handle *engine.Matrix
	err := ctx.Call("GrB_Matrix_new", func() (info engine.Info) {
		handle, info = engine.NewMatrix(valuetype.EngineType[T](), size.Rows, size.Columns)
		return info
	}, nil)
	if err != nil {
		return nil, err
	}

	return &SparseMatrix[T]{ctx: ctx, handle: handle, size: size}, nil
}

// MatrixFromElements creates a matrix holding elements. Duplicate coordinates
// are combined with dup; the zero BinaryOperator rejects duplicates.
func MatrixFromElements[T valuetype.ValueType](ctx *execution.Context, size Size, elements []MatrixElement[T], dup algebra.BinaryOperator[T]) (*SparseMatrix[T], error) {
	m, err := NewSparseMatrix[T](ctx, size)
	if err != nil {
		return nil, err
	}
	rows := make([]uint64, len(elements))
	cols := make([]uint64, len(elements))
	values := make([]any, len(elements))
	for n, e := range elements {
		rows[n], cols[n], values[n] = e.Row, e.Column, e.Value
	}
	err = ctx.Call("GrB_Matrix_build", func() engine.Info {
		return engine.MatrixBuild(m.handle, rows, cols, values, dup.EngineHandle())
	}, m.handle)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Context implements MatrixSource.
func (m *SparseMatrix[T]) Context() *execution.Context { return m.ctx }

// EngineMatrix implements MatrixSource.
func (m *SparseMatrix[T]) EngineMatrix() *engine.Matrix { return m.handle }

// MutableEngineMatrix implements MatrixTarget.
func (m *SparseMatrix[T]) MutableEngineMatrix() *engine.Matrix { return m.handle }

// Size returns the matrix shape.
func (m *SparseMatrix[T]) Size() Size { return m.size }

// RowCount returns the number of rows.
func (m *SparseMatrix[T]) RowCount() uint64 { return m.size.Rows }

// ColumnCount returns the number of columns.
func (m *SparseMatrix[T]) ColumnCount() uint64 { return m.size.Columns }

// NumberOfStoredElements returns the number of stored entries.
func (m *SparseMatrix[T]) NumberOfStoredElements() (uint64, error) {
	var n uint64
	err := m.ctx.Call("GrB_Matrix_nvals", func() (info engine.Info) {
		n, info = engine.MatrixNvals(m.handle)
		return info
	}, m.handle)

	return n, err
}

// SetElement stores value at at.
func (m *SparseMatrix[T]) SetElement(at Coordinate, value T) error {
	return m.ctx.Call("GrB_Matrix_setElement", func() engine.Info {
		return engine.MatrixSetElement(m.handle, value, at.Row, at.Column)
	}, m.handle)
}

// Element returns the value at at and whether one is stored.
func (m *SparseMatrix[T]) Element(at Coordinate) (T, bool, error) {
	var (
		raw    any
		status engine.Info
	)
	err := m.ctx.Call("GrB_Matrix_extractElement", func() engine.Info {
		raw, status = engine.MatrixExtractElement(m.handle, at.Row, at.Column)
		return status
	}, m.handle)
	if err != nil || status == engine.NoValue {
		var zero T
		return zero, false, err
	}

	return valuetype.FromEngine[T](raw), true, nil
}

// ElementOrDefault returns the value at at, or the zero value when absent.
func (m *SparseMatrix[T]) ElementOrDefault(at Coordinate) (T, error) {
	value, _, err := m.Element(at)
	return value, err
}

// RemoveElement deletes the entry at at, if any.
func (m *SparseMatrix[T]) RemoveElement(at Coordinate) error {
	return m.ctx.Call("GrB_Matrix_removeElement", func() engine.Info {
		return engine.MatrixRemoveElement(m.handle, at.Row, at.Column)
	}, m.handle)
}

// Elements returns every stored entry in row-major order.
func (m *SparseMatrix[T]) Elements() ([]MatrixElement[T], error) {
	var (
		rows, cols []uint64
		values     []any
	)
	err := m.ctx.Call("GrB_Matrix_extractTuples", func() (info engine.Info) {
		rows, cols, values, info = engine.MatrixExtractTuples(m.handle)
		return info
	}, m.handle)
	if err != nil {
		return nil, err
	}
	out := make([]MatrixElement[T], len(rows))
	for n := range rows {
		out[n] = MatrixElement[T]{Row: rows[n], Column: cols[n], Value: valuetype.FromEngine[T](values[n])}
	}

	return out, nil
}

// Clear removes every entry.
func (m *SparseMatrix[T]) Clear() error {
	return m.ctx.Call("GrB_Matrix_clear", func() engine.Info { return engine.MatrixClear(m.handle) }, m.handle)
}

// Clone returns an independent copy sharing the same Context.
func (m *SparseMatrix[T]) Clone() (*SparseMatrix[T], error) {
	var dup *engine.Matrix
	err := m.ctx.Call("GrB_Matrix_dup", func() (info engine.Info) {
		dup, info = engine.MatrixDup(m.handle)
		return info
	}, m.handle)
	if err != nil {
		return nil, err
	}

	return &SparseMatrix[T]{ctx: m.ctx, handle: dup, size: m.size}, nil
}

// Wait completes pending work and reports any deferred error.
func (m *SparseMatrix[T]) Wait() error { return m.ctx.Wait(m.handle) }
