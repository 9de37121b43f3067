// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/valuetype"
)

// Accumulator combines a freshly computed value with the value already stored
// at the same output coordinate.
//
// The interface is sealed: only BinaryOperator[D] and Assignment[D] satisfy
// it, and the unexported method ties it to D so that an applier over D rejects
// an accumulator over any other domain at compile time.
type Accumulator[D valuetype.ValueType] interface {
	// AccumulatorHandle returns the engine operator, or nil for plain assignment.
	AccumulatorHandle() *engine.BinaryOp
	accumulates() D
}

var (
	_ Accumulator[float64] = BinaryOperator[float64]{}
	_ Accumulator[float64] = Assignment[float64]{}
)

// Assignment overwrites the output with the computed value.
type Assignment[D valuetype.ValueType] struct{}

// NewAssignment returns the overwrite accumulator over D.
func NewAssignment[D valuetype.ValueType]() Assignment[D] { return Assignment[D]{} }

// AccumulatorHandle implements Accumulator; it is always nil.
func (Assignment[D]) AccumulatorHandle() *engine.BinaryOp { return nil }

func (Assignment[D]) accumulates() (zero D) { return zero }

// OrAssignment returns accum, or Assignment when accum is nil.
func OrAssignment[D valuetype.ValueType](accum Accumulator[D]) Accumulator[D] {
	if accum == nil {
		return Assignment[D]{}
	}

	return accum
}
