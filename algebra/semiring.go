// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/valuetype"
)

// Semiring pairs an additive Monoid[D] with a multiplicative BinaryOperator[D].
type Semiring[D valuetype.ValueType] struct {
	handle *engine.Semiring
	add    Monoid[D]
	mul    BinaryOperator[D]
}

// NewSemiring builds a semiring from its two components.
func NewSemiring[D valuetype.ValueType](add Monoid[D], mul BinaryOperator[D]) Semiring[D] {
	s, info := engine.NewSemiring(add.handle, mul.handle)
	mustSucceed(add.op.Name()+"."+mul.Name(), info)

	return Semiring[D]{handle: s, add: add, mul: mul}
}

// EngineHandle returns the engine semiring.
func (s Semiring[D]) EngineHandle() *engine.Semiring { return s.handle }

// Add returns the additive monoid.
func (s Semiring[D]) Add() Monoid[D] { return s.add }

// Multiply returns the multiplicative operator.
func (s Semiring[D]) Multiply() BinaryOperator[D] { return s.mul }

// PlusTimes is the conventional arithmetic semiring.
func PlusTimes[D valuetype.Number]() Semiring[D] { return NewSemiring(PlusMonoid[D](), Times[D]()) }

// MinPlus is the tropical semiring of shortest paths.
func MinPlus[D valuetype.Number]() Semiring[D] { return NewSemiring(MinMonoid[D](), Plus[D]()) }

// MaxPlus is the tropical semiring of longest paths.
func MaxPlus[D valuetype.Number]() Semiring[D] { return NewSemiring(MaxMonoid[D](), Plus[D]()) }

// MaxTimes selects the largest product.
func MaxTimes[D valuetype.Number]() Semiring[D] { return NewSemiring(MaxMonoid[D](), Times[D]()) }

// MinTimes selects the smallest product.
func MinTimes[D valuetype.Number]() Semiring[D] { return NewSemiring(MinMonoid[D](), Times[D]()) }

// LogicalOrLogicalAnd is the boolean semiring of reachability.
func LogicalOrLogicalAnd[D valuetype.ValueType]() Semiring[D] {
	return NewSemiring(LogicalOrMonoid[D](), LogicalAnd[D]())
}

// AnyPair marks every reachable position with 1 and skips reduction work.
func AnyPair[D valuetype.ValueType]() Semiring[D] { return NewSemiring(AnyMonoid[D](), Pair[D]()) }

// PlusFirst sums the left operands of every contributing pair.
func PlusFirst[D valuetype.Number]() Semiring[D] { return NewSemiring(PlusMonoid[D](), First[D]()) }

// PlusSecond sums the right operands of every contributing pair.
func PlusSecond[D valuetype.Number]() Semiring[D] { return NewSemiring(PlusMonoid[D](), Second[D]()) }
