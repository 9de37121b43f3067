// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/valuetype"
)

// Monoid is an associative BinaryOperator[D] with an identity.
type Monoid[D valuetype.ValueType] struct {
	handle   *engine.Monoid
	op       BinaryOperator[D]
	identity D
}

// NewMonoid pairs op with identity. The caller vouches for associativity and
// for identity being neutral under op.
func NewMonoid[D valuetype.ValueType](op BinaryOperator[D], identity D) Monoid[D] {
	m, info := engine.NewMonoid(op.handle, identity)
	mustSucceed(op.Name()+" monoid", info)

	return Monoid[D]{handle: m, op: op, identity: identity}
}

// EngineHandle returns the engine monoid.
func (m Monoid[D]) EngineHandle() *engine.Monoid { return m.handle }

// Operator returns the monoid's binary operator.
func (m Monoid[D]) Operator() BinaryOperator[D] { return m.op }

// Identity returns the neutral element.
func (m Monoid[D]) Identity() D { return m.identity }

// PlusMonoid is (+, 0).
func PlusMonoid[D valuetype.Number]() Monoid[D] { return NewMonoid(Plus[D](), 0) }

// TimesMonoid is (×, 1).
func TimesMonoid[D valuetype.Number]() Monoid[D] { return NewMonoid(Times[D](), 1) }

// MinMonoid is (min, +max of D).
func MinMonoid[D valuetype.Number]() Monoid[D] {
	return NewMonoid(Min[D](), valuetype.MaxValue[D]())
}

// MaxMonoid is (max, -max of D).
func MaxMonoid[D valuetype.Number]() Monoid[D] {
	return NewMonoid(Max[D](), valuetype.MinValue[D]())
}

// LogicalOrMonoid is (||, false).
func LogicalOrMonoid[D valuetype.ValueType]() Monoid[D] {
	return NewMonoid(LogicalOr[D](), valuetype.FromEngine[D](false))
}

// LogicalAndMonoid is (&&, true).
func LogicalAndMonoid[D valuetype.ValueType]() Monoid[D] {
	return NewMonoid(LogicalAnd[D](), valuetype.FromEngine[D](true))
}

// AnyMonoid is (any, 0); any stored operand may be chosen.
func AnyMonoid[D valuetype.ValueType]() Monoid[D] {
	var zero D
	return NewMonoid(Any[D](), zero)
}
