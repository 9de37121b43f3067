// SPDX-License-Identifier: MIT
// Package execution: sentinel error set and the structured call error.
// Every failed engine call is reported as *Error whose Kind is one of the
// sentinels below; callers match with errors.Is.

package execution

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphblas/engine"
)

// Every message is prefixed with "execution: ..." so logs stay greppable.
var (
	// ErrInitialization is returned when the engine refuses to start,
	// e.g. it already runs in the other mode.
	ErrInitialization = errors.New("execution: engine initialization failed")

	// ErrDomainMismatch reports incompatible value domains.
	ErrDomainMismatch = errors.New("execution: domain mismatch")

	// ErrDimensionMismatch reports incompatible operand, mask or output shapes.
	ErrDimensionMismatch = errors.New("execution: dimension mismatch")

	// ErrIndexOutOfBounds reports an index outside a collection's shape.
	ErrIndexOutOfBounds = errors.New("execution: index out of bounds")

	// ErrInvalidOrUninitializedHandle reports a nil, stale or uninitialised handle.
	ErrInvalidOrUninitializedHandle = errors.New("execution: invalid or uninitialized handle")

	// ErrOutOfMemory reports that the engine could not allocate.
	ErrOutOfMemory = errors.New("execution: out of memory")

	// ErrInvalidValue reports an argument the engine rejected as invalid.
	ErrInvalidValue = errors.New("execution: invalid value")

	// ErrNotImplemented reports an operation the engine does not support.
	ErrNotImplemented = errors.New("execution: not implemented")

	// ErrEngine covers every remaining engine failure, including panics
	// raised inside user operator functions.
	ErrEngine = errors.New("execution: engine failure")

	// ErrContextReleased is returned by calls on a released Context holder.
	ErrContextReleased = errors.New("execution: context released")
)

// Error is the structured failure of one engine call.
type Error struct {
	Kind      error       // one of the package sentinels
	Status    engine.Info // raw engine status
	Operation string      // engine entry point, e.g. "GrB_mxm"
	Detail    string      // engine diagnostic text, may be empty
}

// Error implements error.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s (%s)", e.Operation, e.Kind, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes the Kind sentinel to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Kind }

// Is matches the Kind sentinel.
func (e *Error) Is(target error) bool { return target == e.Kind }

// kindOf classifies an engine status into its sentinel family.
func kindOf(info engine.Info) error {
	switch info {
	case engine.DomainMismatch:
		return ErrDomainMismatch
	case engine.DimensionMismatch:
		return ErrDimensionMismatch
	case engine.InvalidIndex, engine.IndexOutOfBounds:
		return ErrIndexOutOfBounds
	case engine.UninitializedObject, engine.NullPointer, engine.InvalidObject:
		return ErrInvalidOrUninitializedHandle
	case engine.OutOfMemory, engine.InsufficientSpace:
		return ErrOutOfMemory
	case engine.InvalidValue, engine.OutputNotEmpty:
		return ErrInvalidValue
	case engine.NotImplemented:
		return ErrNotImplemented
	default:
		return ErrEngine
	}
}

// executionErrorf wraps err with a call-site tag.
func executionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
