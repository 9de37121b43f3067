// SPDX-License-Identifier: MIT

// Package ewiseadd applies a binary operator over the union of two
// collections' patterns: where both inputs store a value the operator combines
// them, where only one does that value is copied.
//
// Appliers are immutable after construction and safe to share between
// goroutines. Outputs are not: callers serialise writes to a shared output.
package ewiseadd

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// Vector computes w<mask> = accum(w, u ⊕ v) for vectors.
type Vector[D valuetype.ValueType] struct {
	op    *engine.BinaryOp
	accum algebra.Accumulator[D]
	opts  options.OperatorOptions
}

// NewVectorWithBinaryOperator combines entries with op.
// A nil accum behaves as algebra.Assignment.
func NewVectorWithBinaryOperator[D valuetype.ValueType](op algebra.BinaryOperator[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Vector[D] {
	return &Vector[D]{op: op.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// NewVectorWithMonoid combines entries with the monoid's operator.
func NewVectorWithMonoid[D valuetype.ValueType](m algebra.Monoid[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Vector[D] {
	return NewVectorWithBinaryOperator(m.Operator(), opts, accum)
}

// NewVectorWithSemiring combines entries with the semiring's addition.
func NewVectorWithSemiring[D valuetype.ValueType](s algebra.Semiring[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Vector[D] {
	return NewVectorWithBinaryOperator(s.Add().Operator(), opts, accum)
}

// Apply writes u ⊕ v into out, selecting every coordinate.
func (a *Vector[D]) Apply(u, v collections.VectorSource, out collections.VectorTarget) error {
	return a.ApplyWithMask(mask.SelectEntireVector(out.Context()), u, v, out)
}

// ApplyWithMask writes u ⊕ v into the coordinates of out that m selects.
//
// Errors (*execution.Error, match with errors.Is):
//   - execution.ErrDimensionMismatch when u, v, m and out differ in length.
//   - execution.ErrEngine when the operator panics.
func (a *Vector[D]) ApplyWithMask(m mask.VectorMask, u, v collections.VectorSource, out collections.VectorTarget) error {
	w := out.MutableEngineVector()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Vector_eWiseAdd", func() engine.Info {
		return engine.VectorEWiseAdd(w, m.EngineVector(), a.accum.AccumulatorHandle(), a.op, u.EngineVector(), v.EngineVector(), desc)
	}, w)
}

// Matrix computes C<mask> = accum(C, A ⊕ B) for matrices, honouring the
// transpose flags of its options.
type Matrix[D valuetype.ValueType] struct {
	op    *engine.BinaryOp
	accum algebra.Accumulator[D]
	opts  options.OperatorOptions
}

// NewMatrixWithBinaryOperator combines entries with op.
func NewMatrixWithBinaryOperator[D valuetype.ValueType](op algebra.BinaryOperator[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Matrix[D] {
	return &Matrix[D]{op: op.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// NewMatrixWithMonoid combines entries with the monoid's operator.
func NewMatrixWithMonoid[D valuetype.ValueType](m algebra.Monoid[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Matrix[D] {
	return NewMatrixWithBinaryOperator(m.Operator(), opts, accum)
}

// NewMatrixWithSemiring combines entries with the semiring's addition.
func NewMatrixWithSemiring[D valuetype.ValueType](s algebra.Semiring[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *Matrix[D] {
	return NewMatrixWithBinaryOperator(s.Add().Operator(), opts, accum)
}

// Apply writes A ⊕ B into out, selecting every coordinate.
func (a *Matrix[D]) Apply(left, right collections.MatrixSource, out collections.MatrixTarget) error {
	return a.ApplyWithMask(mask.SelectEntireMatrix(out.Context()), left, right, out)
}

// ApplyWithMask writes A ⊕ B into the coordinates of out that m selects.
func (a *Matrix[D]) ApplyWithMask(m mask.MatrixMask, left, right collections.MatrixSource, out collections.MatrixTarget) error {
	c := out.MutableEngineMatrix()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_Matrix_eWiseAdd", func() engine.Info {
		return engine.MatrixEWiseAdd(c, m.EngineMatrix(), a.accum.AccumulatorHandle(), a.op, left.EngineMatrix(), right.EngineMatrix(), desc)
	}, c)
}
