// SPDX-License-Identifier: MIT

package engine

// TypeCode identifies one of the built-in value domains.
type TypeCode uint8

// Built-in type codes. The numeric values are part of the serialization format.
const (
	TypeBool TypeCode = iota + 1
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFP32
	TypeFP64
)

// Type is an immutable value-domain handle.
type Type struct {
	code TypeCode
	name string
	size int // bytes per value in the serialized form
}

// Built-in domains. Each maps 1:1 to a Go scalar type.
var (
	Bool   = &Type{code: TypeBool, name: "bool", size: 1}
	Int8   = &Type{code: TypeInt8, name: "int8", size: 1}
	Int16  = &Type{code: TypeInt16, name: "int16", size: 2}
	Int32  = &Type{code: TypeInt32, name: "int32", size: 4}
	Int64  = &Type{code: TypeInt64, name: "int64", size: 8}
	Uint8  = &Type{code: TypeUint8, name: "uint8", size: 1}
	Uint16 = &Type{code: TypeUint16, name: "uint16", size: 2}
	Uint32 = &Type{code: TypeUint32, name: "uint32", size: 4}
	Uint64 = &Type{code: TypeUint64, name: "uint64", size: 8}
	FP32   = &Type{code: TypeFP32, name: "float32", size: 4}
	FP64   = &Type{code: TypeFP64, name: "float64", size: 8}
)

// Code returns the type's code.
func (t *Type) Code() TypeCode { return t.code }

// Name returns the Go name of the domain.
func (t *Type) Name() string { return t.name }

// String implements fmt.Stringer.
func (t *Type) String() string { return t.name }

// TypeFromCode resolves a code to its built-in handle, or nil.
func TypeFromCode(code TypeCode) *Type {
	switch code {
	case TypeBool:
		return Bool
	case TypeInt8:
		return Int8
	case TypeInt16:
		return Int16
	case TypeInt32:
		return Int32
	case TypeInt64:
		return Int64
	case TypeUint8:
		return Uint8
	case TypeUint16:
		return Uint16
	case TypeUint32:
		return Uint32
	case TypeUint64:
		return Uint64
	case TypeFP32:
		return FP32
	case TypeFP64:
		return FP64
	default:
		return nil
	}
}

// TypeOfValue returns the domain of a Go scalar, or nil for any other value.
func TypeOfValue(v any) *Type {
	switch v.(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return FP32
	case float64:
		return FP64
	default:
		return nil
	}
}

// Cast converts a built-in scalar into the Go type of domain to.
// Numbers cast to bool as v != 0; bool casts to numbers as 0 or 1.
// Signed and unsigned sources are widened through int64/uint64 so that
// integer values survive round trips between integer domains of equal width.
func Cast(v any, to *Type) any {
	switch to.code {
	case TypeBool:
		return Truthy(v)
	case TypeInt8:
		return int8(asInt64(v))
	case TypeInt16:
		return int16(asInt64(v))
	case TypeInt32:
		return int32(asInt64(v))
	case TypeInt64:
		return asInt64(v)
	case TypeUint8:
		return uint8(asUint64(v))
	case TypeUint16:
		return uint16(asUint64(v))
	case TypeUint32:
		return uint32(asUint64(v))
	case TypeUint64:
		return asUint64(v)
	case TypeFP32:
		return float32(asFloat64(v))
	case TypeFP64:
		return asFloat64(v)
	default:
		return v
	}
}

// Truthy reports whether a built-in scalar casts to true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return false
	}
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func asUint64(v any) uint64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return uint64(x)
	case int16:
		return uint64(x)
	case int32:
		return uint64(x)
	case int64:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(x)
	case float64:
		return uint64(x)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
