// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/valuetype"
)

// BinaryOperator is z = f(x, y) with x, y and z in domain D.
// It is immutable, safe to share, and usable as an Accumulator[D].
type BinaryOperator[D valuetype.ValueType] struct {
	handle *engine.BinaryOp
}

// EngineHandle returns the engine operator.
func (o BinaryOperator[D]) EngineHandle() *engine.BinaryOp { return o.handle }

// Name returns the engine name, e.g. "GrB_PLUS_FP64".
func (o BinaryOperator[D]) Name() string { return o.handle.Name() }

// AccumulatorHandle implements Accumulator.
func (o BinaryOperator[D]) AccumulatorHandle() *engine.BinaryOp { return o.handle }

func (o BinaryOperator[D]) accumulates() (zero D) { return zero }

// NewBinaryOperator wraps fn as an engine operator over D.
func NewBinaryOperator[D valuetype.ValueType](name string, fn func(x, y D) D) BinaryOperator[D] {
	typ := valuetype.EngineType[D]()
	op, info := engine.NewBinaryOp(name, typ, typ, typ, func(x, y any) any { return fn(x.(D), y.(D)) })
	mustSucceed(name, info)

	return BinaryOperator[D]{handle: op}
}

// First returns x.
func First[D valuetype.ValueType]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_FIRST"), func(x, _ D) D { return x })
}

// Second returns y.
func Second[D valuetype.ValueType]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_SECOND"), func(_, y D) D { return y })
}

// Plus returns x + y.
func Plus[D valuetype.Number]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_PLUS"), func(x, y D) D { return x + y })
}

// Minus returns x - y.
func Minus[D valuetype.Number]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_MINUS"), func(x, y D) D { return x - y })
}

// Times returns x * y.
func Times[D valuetype.Number]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_TIMES"), func(x, y D) D { return x * y })
}

// Divide returns x / y under IEEE rules.
func Divide[D valuetype.Float]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_DIV"), func(x, y D) D { return x / y })
}

// Min returns the smaller operand.
func Min[D valuetype.Number]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_MIN"), func(x, y D) D { return min(x, y) })
}

// Max returns the larger operand.
func Max[D valuetype.Number]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GrB_MAX"), func(x, y D) D { return max(x, y) })
}

// Any returns either operand; this engine returns x.
func Any[D valuetype.ValueType]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GxB_ANY"), func(x, _ D) D { return x })
}

// Pair returns 1 (true for bool) for every pair of operands.
func Pair[D valuetype.ValueType]() BinaryOperator[D] {
	one := valuetype.FromEngine[D](true)
	return NewBinaryOperator(builtinName[D]("GrB_ONEB"), func(_, _ D) D { return one })
}

// LogicalOr returns x || y with operands read as != 0.
func LogicalOr[D valuetype.ValueType]() BinaryOperator[D] {
	return logical[D]("GrB_LOR", func(x, y bool) bool { return x || y })
}

// LogicalAnd returns x && y with operands read as != 0.
func LogicalAnd[D valuetype.ValueType]() BinaryOperator[D] {
	return logical[D]("GrB_LAND", func(x, y bool) bool { return x && y })
}

// LogicalXor returns x != y with operands read as != 0.
func LogicalXor[D valuetype.ValueType]() BinaryOperator[D] {
	return logical[D]("GrB_LXOR", func(x, y bool) bool { return x != y })
}

// IsEqual returns 1 (true) when x == y and 0 (false) otherwise.
func IsEqual[D valuetype.ValueType]() BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D]("GxB_ISEQ"), func(x, y D) D {
		return valuetype.FromEngine[D](x == y)
	})
}

func logical[D valuetype.ValueType](base string, fn func(x, y bool) bool) BinaryOperator[D] {
	return NewBinaryOperator(builtinName[D](base), func(x, y D) D {
		return valuetype.FromEngine[D](fn(engine.Truthy(x), engine.Truthy(y)))
	})
}
