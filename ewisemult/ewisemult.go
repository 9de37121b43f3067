// SPDX-License-Identifier: MIT

// Package ewisemult applies a binary operator over the intersection of two
// collections' patterns: only coordinates stored in both inputs produce a
// result.
//
// Appliers are immutable after construction and safe to share between
// goroutines.
package ewisemult

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// Vector computes w<mask> = accum(w, u ⊗ v) for vectors.
type Vector[D valuetype.ValueType] struct {
	op    *engine.BinaryOp
	accum algebra.Accumulator[D]
	opts  options.OperatorOptions
}

// NewVectorWithBinaryOperator multiplies entries with op.
// A nil accum behaves as algebra.Assignment.
func NewVectorWithBinaryOperator[D valuetype.ValueType](op algebra.BinaryOperator[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Vector[D] {
	return &Vector[D]{op: op.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// NewVectorWithMonoid multiplies entries with the monoid's operator.
func NewVectorWithMonoid[D valuetype.ValueType](m algebra.Monoid[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Vector[D] {
	return NewVectorWithBinaryOperator(m.Operator(), opts, accum)
}

// NewVectorWithSemiring multiplies entries with the semiring's multiplication.
func NewVectorWithSemiring[D valuetype.ValueType](s algebra.Semiring[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Vector[D] {
	return NewVectorWithBinaryOperator(s.Multiply(), opts, accum)
}

// Apply writes u ⊗ v into out.
func (a *Vector[D]) Apply(u, v collections.VectorSource, out collections.VectorTarget) error {
	return a.ApplyWithMask(mask.SelectEntireVector(out.Context()), u, v, out)
}

// ApplyWithMask writes u ⊗ v into the coordinates of out that m selects.
func (a *Vector[D]) ApplyWithMask(m mask.VectorMask, u, v collections.VectorSource, out collections.VectorTarget) error {
	w := out.MutableEngineVector()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Vector_eWiseMult", func() engine.Info {
		return engine.VectorEWiseMult(w, m.EngineVector(), a.accum.AccumulatorHandle(), a.op, u.EngineVector(), v.EngineVector(), desc)
	}, w)
}

// Matrix computes C<mask> = accum(C, A ⊗ B) for matrices.
type Matrix[D valuetype.ValueType] struct {
	op    *engine.BinaryOp
	accum algebra.Accumulator[D]
	opts  options.OperatorOptions
}

// NewMatrixWithBinaryOperator multiplies entries with op.
func NewMatrixWithBinaryOperator[D valuetype.ValueType](op algebra.BinaryOperator[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Matrix[D] {
	return &Matrix[D]{op: op.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// NewMatrixWithMonoid multiplies entries with the monoid's operator.
func NewMatrixWithMonoid[D valuetype.ValueType](m algebra.Monoid[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Matrix[D] {
	return NewMatrixWithBinaryOperator(m.Operator(), opts, accum)
}

// NewMatrixWithSemiring multiplies entries with the semiring's multiplication.
func NewMatrixWithSemiring[D valuetype.ValueType](s algebra.Semiring[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Matrix[D] {
	return NewMatrixWithBinaryOperator(s.Multiply(), opts, accum)
}

// Apply writes A ⊗ B into out.
func (a *Matrix[D]) Apply(left, right collections.MatrixSource, out collections.MatrixTarget) error {
	return a.ApplyWithMask(mask.SelectEntireMatrix(out.Context()), left, right, out)
}

// ApplyWithMask writes A ⊗ B into the coordinates of out that m selects.
//
// Errors:
//   - execution.ErrDimensionMismatch when the (transposed) shapes differ.
func (a *Matrix[D]) ApplyWithMask(m mask.MatrixMask, left, right collections.MatrixSource, out collections.MatrixTarget) error {
	c := out.MutableEngineMatrix()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Matrix_eWiseMult", func() engine.Info {
		return engine.MatrixEWiseMult(c, m.EngineMatrix(), a.accum.AccumulatorHandle(), a.op, left.EngineMatrix(), right.EngineMatrix(), desc)
	}, c)
}
