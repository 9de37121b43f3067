// SPDX-License-Identifier: MIT

package engine

import "fmt"

// Info is the status code returned by every entry point.
// Zero and positive values are informational, negative values are errors.
type Info int

// Informational codes.
const (
	Success Info = 0 // call completed
	NoValue Info = 1 // requested entry is not stored
)

// API errors: always reported by the call that detected them.
const (
	UninitializedObject Info = -1  // engine not initialised, or handle never created
	NullPointer         Info = -2  // required handle is nil
	InvalidValue        Info = -3  // argument value is meaningless (mode, size, duplicates)
	InvalidIndex        Info = -4  // index outside the object's dimensions
	DomainMismatch      Info = -5  // value or operator types cannot be combined
	DimensionMismatch   Info = -6  // operand dimensions are incompatible
	OutputNotEmpty      Info = -7  // build target already holds entries
	NotImplemented      Info = -8  // combination not supported by this engine
)

// Execution errors: deferred under NonBlocking mode.
const (
	Panic             Info = -101 // a user function panicked
	OutOfMemory       Info = -102 // result exceeds the engine's entry limit
	InsufficientSpace Info = -103 // caller-provided buffer too small
	InvalidObject     Info = -104 // handle belongs to a finalised engine session or is corrupt
	IndexOutOfBounds  Info = -105 // an index list refers past the object's dimensions
	EmptyObject       Info = -106 // object has no entries where one is required
)

// IsError reports whether the code denotes a failure.
func (i Info) IsError() bool { return i < 0 }

// isExecutionError reports whether the code may be deferred under NonBlocking mode.
func (i Info) isExecutionError() bool {
	switch i {
	case Panic, OutOfMemory, IndexOutOfBounds, InsufficientSpace, EmptyObject:
		return true
	default:
		return false
	}
}

// String returns the GraphBLAS-style name of the status code.
func (i Info) String() string {
	switch i {
	case Success:
		return "GrB_SUCCESS"
	case NoValue:
		return "GrB_NO_VALUE"
	case UninitializedObject:
		return "GrB_UNINITIALIZED_OBJECT"
	case NullPointer:
		return "GrB_NULL_POINTER"
	case InvalidValue:
		return "GrB_INVALID_VALUE"
	case InvalidIndex:
		return "GrB_INVALID_INDEX"
	case DomainMismatch:
		return "GrB_DOMAIN_MISMATCH"
	case DimensionMismatch:
		return "GrB_DIMENSION_MISMATCH"
	case OutputNotEmpty:
		return "GrB_OUTPUT_NOT_EMPTY"
	case NotImplemented:
		return "GrB_NOT_IMPLEMENTED"
	case Panic:
		return "GrB_PANIC"
	case OutOfMemory:
		return "GrB_OUT_OF_MEMORY"
	case InsufficientSpace:
		return "GrB_INSUFFICIENT_SPACE"
	case InvalidObject:
		return "GrB_INVALID_OBJECT"
	case IndexOutOfBounds:
		return "GrB_INDEX_OUT_OF_BOUNDS"
	case EmptyObject:
		return "GrB_EMPTY_OBJECT"
	default:
		return fmt.Sprintf("GrB_INFO(%d)", int(i))
	}
}
