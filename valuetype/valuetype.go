// SPDX-License-Identifier: MIT

// Package valuetype maps Go scalar types onto engine value domains.
//
// Purpose:
//   - Define ValueType, the closed set of Go types a collection or operator
//     may be parametrised by.
//   - Resolve a type parameter to its engine *Type handle at runtime.
//   - Convert engine values (type-erased) back into the Go type.
//
// The set is exact (no ~T): a named type such as `type Celsius float64`
// has no engine domain and is rejected by the compiler.
package valuetype

import (
	"math"

	"github.com/katalvlaran/graphblas/engine"
)

// ValueType is every Go type with a built-in engine domain.
type ValueType interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Number excludes bool: the domains arithmetic operators are defined on.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Signed is the subset of Number with a negation.
type Signed interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Float is the subset of Number with exact division and reciprocals.
type Float interface {
	float32 | float64
}

// EngineType returns the engine domain of T.
//
// Complexity: O(1).
func EngineType[T ValueType]() *engine.Type {
	var zero T
	switch any(zero).(type) {
	case bool:
		return engine.Bool
	case int8:
		return engine.Int8
	case int16:
		return engine.Int16
	case int32:
		return engine.Int32
	case int64:
		return engine.Int64
	case uint8:
		return engine.Uint8
	case uint16:
		return engine.Uint16
	case uint32:
		return engine.Uint32
	case uint64:
		return engine.Uint64
	case float32:
		return engine.FP32
	default:
		return engine.FP64
	}
}

// FromEngine converts a value produced by the engine into T, casting when the
// value's domain differs from T's.
func FromEngine[T ValueType](v any) T {
	if t, ok := v.(T); ok {
		return t
	}

	return engine.Cast(v, EngineType[T]()).(T)
}

// Name returns the Go spelling of T, e.g. "float32".
func Name[T ValueType]() string { return EngineType[T]().Name() }

// MaxValue returns the largest finite value of T (+Inf for floats, true for bool).
// It is the identity of the Min monoid.
func MaxValue[T ValueType]() T {
	var v any
	switch EngineType[T]() {
	case engine.Bool:
		v = true
	case engine.Int8:
		v = int8(math.MaxInt8)
	case engine.Int16:
		v = int16(math.MaxInt16)
	case engine.Int32:
		v = int32(math.MaxInt32)
	case engine.Int64:
		v = int64(math.MaxInt64)
	case engine.Uint8:
		v = uint8(math.MaxUint8)
	case engine.Uint16:
		v = uint16(math.MaxUint16)
	case engine.Uint32:
		v = uint32(math.MaxUint32)
	case engine.Uint64:
		v = uint64(math.MaxUint64)
	case engine.FP32:
		v = float32(math.Inf(1))
	default:
		v = math.Inf(1)
	}

	return v.(T)
}

// MinValue returns the smallest value of T (-Inf for floats, false for bool).
// It is the identity of the Max monoid.
func MinValue[T ValueType]() T {
	var v any
	switch EngineType[T]() {
	case engine.Bool:
		v = false
	case engine.Int8:
		v = int8(math.MinInt8)
	case engine.Int16:
		v = int16(math.MinInt16)
	case engine.Int32:
		v = int32(math.MinInt32)
	case engine.Int64:
		v = int64(math.MinInt64)
	case engine.Uint8:
		v = uint8(0)
	case engine.Uint16:
		v = uint16(0)
	case engine.Uint32:
		v = uint32(0)
	case engine.Uint64:
		v = uint64(0)
	case engine.FP32:
		v = float32(math.Inf(-1))
	default:
		v = math.Inf(-1)
	}

	return v.(T)
}
