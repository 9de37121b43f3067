// SPDX-License-Identifier: MIT

// Package apply maps a unary operator over every stored entry of a vector or
// matrix. The output pattern equals the input pattern before masking.
package apply

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// UnaryOperatorApplier computes out<mask> = accum(out, f(in)).
type UnaryOperatorApplier[D valuetype.ValueType] struct {
	op    *engine.UnaryOp
	accum algebra.Accumulator[D]
	opts  options.OperatorOptions
}

// NewUnaryOperatorApplier binds op, options and an accumulator.
// A nil accum behaves as algebra.Assignment.
func NewUnaryOperatorApplier[D valuetype.ValueType](op algebra.UnaryOperator[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *UnaryOperatorApplier[D] {
	return &UnaryOperatorApplier[D]{op: op.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// ApplyToVector writes f(u) into out.
func (a *UnaryOperatorApplier[D]) ApplyToVector(u collections.VectorSource, out collections.VectorTarget) error {
	return a.ApplyToVectorWithMask(mask.SelectEntireVector(out.Context()), u, out)
}

// ApplyToVectorWithMask writes f(u) into the coordinates of out that m selects.
func (a *UnaryOperatorApplier[D]) ApplyToVectorWithMask(m mask.VectorMask, u collections.VectorSource, out collections.VectorTarget) error {
	w := out.MutableEngineVector()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Vector_apply", func() engine.Info {
		return engine.VectorApply(w, m.EngineVector(), a.accum.AccumulatorHandle(), a.op, u.EngineVector(), desc)
	}, w)
}

// ApplyToMatrix writes f(A) into out. The first-operand transpose option maps
// over Aᵀ.
func (a *UnaryOperatorApplier[D]) ApplyToMatrix(matrix collections.MatrixSource, out collections.MatrixTarget) error {
	return a.ApplyToMatrixWithMask(mask.SelectEntireMatrix(out.Context()), matrix, out)
}

// ApplyToMatrixWithMask writes f(A) into the coordinates of out that m selects.
func (a *UnaryOperatorApplier[D]) ApplyToMatrixWithMask(m mask.MatrixMask, matrix collections.MatrixSource, out collections.MatrixTarget) error {
	c := out.MutableEngineMatrix()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Matrix_apply", func() engine.Info {
		return engine.MatrixApply(c, m.EngineMatrix(), a.accum.AccumulatorHandle(), a.op, matrix.EngineMatrix(), desc)
	}, c)
}
