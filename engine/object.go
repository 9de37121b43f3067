// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"sync"
)

// Object is any collection handle: *Vector or *Matrix.
// The interface is sealed; only this package implements it.
type Object interface {
	base() *object
}

// object carries the bookkeeping every collection shares: its session,
// its last diagnostic and, under NonBlocking mode, a deferred error.
type object struct {
	mu      sync.RWMutex
	session uint64
	pending Info
	errText string
}

func (o *object) base() *object { return o }

// ErrorString returns the diagnostic text left by the last failed call that
// targeted obj. It is empty when no call has failed.
func ErrorString(obj Object) string {
	b := baseOf(obj)
	if b == nil {
		return ""
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.errText
}

// Wait completes pending work on obj and returns any deferred error.
func Wait(obj Object) Info {
	if info := ready(); info != Success {
		return info
	}
	b := baseOf(obj)
	if b == nil {
		return NullPointer
	}
	if info := b.validate(); info != Success {
		return info
	}
	info, _ := b.takePending()

	return info
}

// baseOf unwraps obj, treating typed nil pointers as nil.
func baseOf(obj Object) *object {
	switch o := obj.(type) {
	case nil:
		return nil
	case *Vector:
		if o == nil {
			return nil
		}
	case *Matrix:
		if o == nil {
			return nil
		}
	}

	return obj.base()
}

// validate rejects handles created by a finalised session.
func (o *object) validate() Info {
	if o.session != currentSession() {
		return InvalidObject
	}

	return Success
}

// takePending returns and clears the deferred error.
func (o *object) takePending() (Info, string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	info := o.pending
	o.pending = Success
	if info == Success {
		return Success, ""
	}

	return info, o.errText
}

// reject records an API error on o and returns it.
func (o *object) reject(info Info, format string, args ...any) Info {
	o.mu.Lock()
	o.errText = fmt.Sprintf(format, args...)
	o.mu.Unlock()

	return info
}

// fail records an execution error on o. Under NonBlocking mode the error is
// deferred and Success is returned.
func (o *object) fail(info Info, text string) Info {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.errText = text
	if CurrentMode() == NonBlocking && info.isExecutionError() {
		o.pending = info
		return Success
	}

	return info
}

// begin runs the checks every entry point shares: engine running, handles
// from the current session, and no deferred error on any participant.
// A deferred error found on an input is reported through out.
func begin(out *object, inputs ...*object) Info {
	if info := ready(); info != Success {
		return info
	}
	if info := out.validate(); info != Success {
		return out.reject(info, "output handle belongs to a finalised session")
	}
	if info, text := out.takePending(); info != Success {
		return out.reject(info, "%s", text)
	}
	for _, in := range inputs {
		if in == nil || in == out {
			continue
		}
		if info := in.validate(); info != Success {
			return out.reject(info, "input handle belongs to a finalised session")
		}
		if info, text := in.takePending(); info != Success {
			return out.reject(info, "deferred error on input: %s", text)
		}
	}

	return Success
}
