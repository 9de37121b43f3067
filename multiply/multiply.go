// SPDX-License-Identifier: MIT

// Package multiply runs semiring products: matrix by matrix and matrix by
// vector.
//
// For each output coordinate the semiring's multiply combines the matching
// pairs of the inner dimension and its additive monoid folds them. A
// coordinate is stored only when at least one pair contributes, so an empty
// product leaves a hole rather than the monoid identity.
//
// Complexity (engine reference implementation):
//   - MatrixMultiplication: O(Σ_k nnz(A[:,k])·nnz(B[k,:])) per call.
//   - MatrixVectorMultiplication: O(nnz(A)) per call.
package multiply

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/options"
	"github.com/katalvlaran/graphblas/valuetype"
)

// MatrixMultiplication computes C<mask> = accum(C, A ⊕.⊗ B).
type MatrixMultiplication[D valuetype.ValueType] struct {
	semiring *engine.Semiring
	accum    algebra.Accumulator[D]
	opts     options.OperatorOptions
}

// NewMatrixMultiplication binds a semiring, options and accumulator.
// A nil accum behaves as algebra.Assignment.
func NewMatrixMultiplication[D valuetype.ValueType](s algebra.Semiring[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *MatrixMultiplication[D] {
	return &MatrixMultiplication[D]{semiring: s.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// Apply writes A ⊕.⊗ B into out.
func (a *MatrixMultiplication[D]) Apply(left, right collections.MatrixSource, out collections.MatrixTarget) error {
	return a.ApplyWithMask(mask.SelectEntireMatrix(out.Context()), left, right, out)
}

// ApplyWithMask writes A ⊕.⊗ B into the coordinates of out that m selects.
//
// Errors:
//   - execution.ErrDimensionMismatch when the inner dimensions of the
//     (possibly transposed) operands differ, or out and m do not have the
//     product's shape.
func (a *MatrixMultiplication[D]) ApplyWithMask(m mask.MatrixMask, left, right collections.MatrixSource, out collections.MatrixTarget) error {
	c := out.MutableEngineMatrix()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_mxm", func() engine.Info {
		return engine.MxM(c, m.EngineMatrix(), a.accum.AccumulatorHandle(), a.semiring, left.EngineMatrix(), right.EngineMatrix(), desc)
	}, c)
}

// MatrixVectorMultiplication computes w<mask> = accum(w, A ⊕.⊗ u).
// The first-operand transpose option multiplies by Aᵀ instead.
type MatrixVectorMultiplication[D valuetype.ValueType] struct {
	semiring *engine.Semiring
	accum    algebra.Accumulator[D]
	opts     options.OperatorOptions
}

// NewMatrixVectorMultiplication binds a semiring, options and accumulator.
func NewMatrixVectorMultiplication[D valuetype.ValueType](s algebra.Semiring[D], opts options.OperatorOptions, accum algebra.Accumulator[D]) *MatrixVectorMultiplication[D] {
	return &MatrixVectorMultiplication[D]{semiring: s.EngineHandle(), accum: algebra.OrAssignment(accum), opts: opts}
}

// Apply writes A ⊕.⊗ u into out.
func (a *MatrixVectorMultiplication[D]) Apply(matrix collections.MatrixSource, u collections.VectorSource, out collections.VectorTarget) error {
	return a.ApplyWithMask(mask.SelectEntireVector(out.Context()), matrix, u, out)
}

// ApplyWithMask writes A ⊕.⊗ u into the coordinates of out that m selects.
func (a *MatrixVectorMultiplication[D]) ApplyWithMask(m mask.VectorMask, matrix collections.MatrixSource, u collections.VectorSource, out collections.VectorTarget) error {
	w := out.MutableEngineVector()
	desc := a.opts.Descriptor(m.Complemented())

	return out.Context().Call("GrB_mxv", func() engine.Info {
		return engine.MxV(w, m.EngineVector(), a.accum.AccumulatorHandle(), a.semiring, matrix.EngineMatrix(), u.EngineVector(), desc)
	}, w)
}
