// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/valuetype"
)

// UnaryOperator is z = f(x) with x and z in domain D.
// It is immutable and safe to share between goroutines.
type UnaryOperator[D valuetype.ValueType] struct {
	handle *engine.UnaryOp
}

// EngineHandle returns the engine operator.
func (o UnaryOperator[D]) EngineHandle() *engine.UnaryOp { return o.handle }

// Name returns the engine name, e.g. "GrB_AINV_INT32".
func (o UnaryOperator[D]) Name() string { return o.handle.Name() }

// NewUnaryOperator wraps fn as an engine operator over D.
// fn must not retain its argument; a panic inside fn is reported by the
// engine as a failed call, not propagated.
func NewUnaryOperator[D valuetype.ValueType](name string, fn func(x D) D) UnaryOperator[D] {
	typ := valuetype.EngineType[D]()
	op, info := engine.NewUnaryOp(name, typ, typ, func(x any) any { return fn(x.(D)) })
	mustSucceed(name, info)

	return UnaryOperator[D]{handle: op}
}

// Identity returns x unchanged.
func Identity[D valuetype.ValueType]() UnaryOperator[D] {
	return NewUnaryOperator(builtinName[D]("GrB_IDENTITY"), func(x D) D { return x })
}

// AdditiveInverse returns -x. Unsigned domains wrap around.
func AdditiveInverse[D valuetype.Number]() UnaryOperator[D] {
	return NewUnaryOperator(builtinName[D]("GrB_AINV"), func(x D) D { return -x })
}

// MultiplicativeInverse returns 1/x.
func MultiplicativeInverse[D valuetype.Float]() UnaryOperator[D] {
	return NewUnaryOperator(builtinName[D]("GrB_MINV"), func(x D) D { return 1 / x })
}

// AbsoluteValue returns |x|; unsigned domains are returned unchanged.
func AbsoluteValue[D valuetype.Number]() UnaryOperator[D] {
	return NewUnaryOperator(builtinName[D]("GrB_ABS"), func(x D) D {
		if x < 0 {
			return -x
		}
		return x
	})
}

// LogicalNegation returns !x, with x read as x != 0 and the result cast back to D.
func LogicalNegation[D valuetype.ValueType]() UnaryOperator[D] {
	return NewUnaryOperator(builtinName[D]("GrB_LNOT"), func(x D) D {
		return valuetype.FromEngine[D](!engine.Truthy(x))
	})
}

// One returns 1 (true for bool) regardless of x.
func One[D valuetype.ValueType]() UnaryOperator[D] {
	one := valuetype.FromEngine[D](true)
	return NewUnaryOperator(builtinName[D]("GxB_ONE"), func(D) D { return one })
}

// builtinName appends the GraphBLAS type suffix of D to base.
func builtinName[D valuetype.ValueType](base string) string {
	return base + "_" + suffixes[valuetype.EngineType[D]().Code()]
}

var suffixes = map[engine.TypeCode]string{
	engine.TypeBool:   "BOOL",
	engine.TypeInt8:   "INT8",
	engine.TypeInt16:  "INT16",
	engine.TypeInt32:  "INT32",
	engine.TypeInt64:  "INT64",
	engine.TypeUint8:  "UINT8",
	engine.TypeUint16: "UINT16",
	engine.TypeUint32: "UINT32",
	engine.TypeUint64: "UINT64",
	engine.TypeFP32:   "FP32",
	engine.TypeFP64:   "FP64",
}

// mustSucceed panics on a refused construction. Every constructor in this
// package passes engine-valid arguments, so a refusal is a programmer error.
func mustSucceed(name string, info engine.Info) {
	if info != engine.Success {
		panic(fmt.Sprintf("algebra: engine refused %s: %s", name, info))
	}
}
