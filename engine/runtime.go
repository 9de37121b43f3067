// SPDX-License-Identifier: MIT

package engine

import (
	"sync"
	"sync/atomic"
)

// Mode selects how the engine schedules work and reports execution errors.
type Mode int32

const (
	// Blocking executes each call fully and reports every error immediately.
	Blocking Mode = iota + 1
	// NonBlocking may defer execution errors to a later call on the same object.
	NonBlocking
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Blocking:
		return "blocking"
	case NonBlocking:
		return "nonblocking"
	default:
		return "unknown"
	}
}

// runtime is the process-wide engine state. Init/Finalize are reference
// counted; every Init of a fresh session bumps the session id so that handles
// from a finalised session are rejected as InvalidObject.
var runtime struct {
	mu      sync.Mutex
	refs    int
	mode    atomic.Int32
	session atomic.Uint64
}

// Init starts (or joins) the engine in the given mode.
// Joining a running engine with a different mode fails with InvalidValue.
func Init(mode Mode) Info {
	if mode != Blocking && mode != NonBlocking {
		return InvalidValue
	}
	runtime.mu.Lock()
	defer runtime.mu.Unlock()

	if runtime.refs > 0 {
		if Mode(runtime.mode.Load()) != mode {
			return InvalidValue
		}
		runtime.refs++

		return Success
	}
	runtime.refs = 1
	runtime.session.Add(1)
	runtime.mode.Store(int32(mode))

	return Success
}

// Finalize releases one Init. The last release tears the engine down.
func Finalize() Info {
	runtime.mu.Lock()
	defer runtime.mu.Unlock()

	if runtime.refs == 0 {
		return UninitializedObject
	}
	runtime.refs--
	if runtime.refs == 0 {
		runtime.mode.Store(0)
	}

	return Success
}

// CurrentMode returns the running mode, or 0 when the engine is not initialised.
func CurrentMode() Mode { return Mode(runtime.mode.Load()) }

// ready reports UninitializedObject when no session is running.
func ready() Info {
	if runtime.mode.Load() == 0 {
		return UninitializedObject
	}

	return Success
}

// currentSession returns the id handed to objects created now.
func currentSession() uint64 { return runtime.session.Load() }
