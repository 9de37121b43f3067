// SPDX-License-Identifier: MIT

// Package execution is the single gateway between the typed layer and the
// engine.
//
// Purpose:
//   - Start the engine once per process (Init, InitFromEnv) in Blocking or
//     NonBlocking mode and hand out reference-counted holders (Clone, Release).
//   - Run every engine entry point through Context.Call, the only place where
//     engine status codes are interpreted.
//   - Translate status families into *Error values matched with errors.Is
//     against the package sentinels.
//
// Ambient concerns:
//   - Logging via log/slog; the default logger discards.
//   - One OpenTelemetry span per call named "graphblas.<operation>"; the default
//     provider is the global one.
//
// Under NonBlocking mode the engine may report an execution error (a panicking
// operator, an out-of-bounds row) on a later call that touches the same output,
// or on Wait. Callers must not assume the failing Call caused the error.
package execution
