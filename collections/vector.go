// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/valuetype"
)

// SparseVector is a vector of fixed length over domain T.
type SparseVector[T valuetype.ValueType] struct {
	ctx    *execution.Context
	handle *engine.Vector
	length uint64
}

var _ VectorTarget = (*SparseVector[float64])(nil)

// NewSparseVector creates an empty vector of the given length.
func NewSparseVector[T valuetype.ValueType](ctx *execution.Context, length uint64) (*SparseVector[T], error) {
	var handle *engine.Vector
	err := ctx.Call("GrB_Vector_new", func() (info engine.Info) {
		handle, info = engine.NewVector(valuetype.EngineType[T](), length)
		return info
	}, nil)
	if err != nil {
		return nil, err
	}

	return &SparseVector[T]{ctx: ctx, handle: handle, length: length}, nil
}

// VectorFromElements creates a vector holding elements. Duplicate indices are
// combined with dup; the zero BinaryOperator rejects duplicates with
// execution.ErrInvalidValue.
func VectorFromElements[T valuetype.ValueType](ctx *execution.Context, length uint64, elements []VectorElement[T], dup algebra.BinaryOperator[T]) (*SparseVector[T], error) {
	v, err := NewSparseVector[T](ctx, length)
	if err != nil {
		return nil, err
	}
	indices := make([]uint64, len(elements))
	values := make([]any, len(elements))
	for n, e := range elements {
		indices[n], values[n] = e.Index, e.Value
	}
	err = ctx.Call("GrB_Vector_build", func() engine.Info {
		return engine.VectorBuild(v.handle, indices, values, dup.EngineHandle())
	}, v.handle)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Context implements VectorSource.
func (v *SparseVector[T]) Context() *execution.Context { return v.ctx }

// EngineVector implements VectorSource.
func (v *SparseVector[T]) EngineVector() *engine.Vector { return v.handle }

// MutableEngineVector implements VectorTarget.
func (v *SparseVector[T]) MutableEngineVector() *engine.Vector { return v.handle }

// Length returns the vector's length.
func (v *SparseVector[T]) Length() uint64 { return v.length }

// NumberOfStoredElements returns the number of stored entries.
func (v *SparseVector[T]) NumberOfStoredElements() (uint64, error) {
	var n uint64
	err := v.ctx.Call("GrB_Vector_nvals", func() (info engine.Info) {
		n, info = engine.VectorNvals(v.handle)
		return info
	}, v.handle)

	return n, err
}

// SetElement stores value at index.
func (v *SparseVector[T]) SetElement(index uint64, value T) error {
	return v.ctx.Call("GrB_Vector_setElement", func() engine.Info {
		return engine.VectorSetElement(v.handle, value, index)
	}, v.handle)
}

// Element returns the value at index and whether one is stored.
func (v *SparseVector[T]) Element(index uint64) (T, bool, error) {
	var (
		raw    any
		status engine.Info
	)
	err := v.ctx.Call("GrB_Vector_extractElement", func() engine.Info {
		raw, status = engine.VectorExtractElement(v.handle, index)
		return status
	}, v.handle)
	if err != nil || status == engine.NoValue {
		var zero T
		return zero, false, err
	}

	return valuetype.FromEngine[T](raw), true, nil
}

// ElementOrDefault returns the value at index, or the zero value when absent.
func (v *SparseVector[T]) ElementOrDefault(index uint64) (T, error) {
	value, _, err := v.Element(index)
	return value, err
}

// RemoveElement deletes the entry at index, if any.
func (v *SparseVector[T]) RemoveElement(index uint64) error {
	return v.ctx.Call("GrB_Vector_removeElement", func() engine.Info {
		return engine.VectorRemoveElement(v.handle, index)
	}, v.handle)
}

// Elements returns every stored entry in ascending index order.
func (v *SparseVector[T]) Elements() ([]VectorElement[T], error) {
	var (
		indices []uint64
		values  []any
	)
	err := v.ctx.Call("GrB_Vector_extractTuples", func() (info engine.Info) {
		indices, values, info = engine.VectorExtractTuples(v.handle)
		return info
	}, v.handle)
	if err != nil {
		return nil, err
	}
	out := make([]VectorElement[T], len(indices))
	for n := range indices {
		out[n] = VectorElement[T]{Index: indices[n], Value: valuetype.FromEngine[T](values[n])}
	}

	return out, nil
}

// Clear removes every entry.
func (v *SparseVector[T]) Clear() error {
	return v.ctx.Call("GrB_Vector_clear", func() engine.Info { return engine.VectorClear(v.handle) }, v.handle)
}

// Clone returns an independent copy sharing the same Context.
func (v *SparseVector[T]) Clone() (*SparseVector[T], error) {
	var dup *engine.Vector
	err := v.ctx.Call("GrB_Vector_dup", func() (info engine.Info) {
		dup, info = engine.VectorDup(v.handle)
		return info
	}, v.handle)
	if err != nil {
		return nil, err
	}

	return &SparseVector[T]{ctx: v.ctx, handle: dup, length: v.length}, nil
}

// Wait completes pending work and reports any deferred error.
func (v *SparseVector[T]) Wait() error { return v.ctx.Wait(v.handle) }
