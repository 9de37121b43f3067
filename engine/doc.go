// SPDX-License-Identifier: MIT

// Package engine is the sparse compute engine behind the typed operator layer.
//
// The surface mirrors a GraphBLAS-style C API: opaque handles, entry points
// that return an Info status code, and no Go errors. Callers above this
// package never inspect handle internals; they pass handles back into entry
// points and interpret the returned Info through a single gateway
// (see package execution).
//
// Storage:
//   - Vectors and matrices keep their coordinate pattern in a 64-bit Roaring
//     bitmap (matrix keys are linearised as row*ncols + col) and their values
//     in a key→value map. Values are stored already cast to the collection's
//     Type.
//
// Write rule (every operation):
//   - compute T from the inputs;
//   - Z = T without an accumulator, otherwise Z = union(C, T) where
//     coordinates present in both become accum(C, T);
//   - every mask-selected coordinate takes Z (or is deleted when Z lacks it);
//     unselected coordinates keep C, or are deleted under Replace.
//
// Modes:
//   - Blocking: every error is returned by the call that caused it.
//   - NonBlocking: API errors (nil handles, dimension or domain mismatch,
//     invalid values) are still immediate; execution errors
//     (IndexOutOfBounds, OutOfMemory, Panic) are recorded on the output
//     object and returned by the next entry point that touches it, or by Wait.
//
// Concurrency:
//   - Operator, monoid, semiring, type and descriptor handles are immutable.
//   - Vector and Matrix guard their own storage; each entry point snapshots
//     its inputs before taking the output's write lock, so aliasing an input
//     with the output is legal.
package engine
