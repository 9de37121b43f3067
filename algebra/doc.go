// SPDX-License-Identifier: MIT

// Package algebra provides the typed operator handles the appliers consume:
// UnaryOperator, BinaryOperator, Monoid, Semiring and the Accumulator family.
//
// Every handle is parametrised by its evaluation domain D and wraps exactly one
// immutable engine handle, so values are cheap to copy and safe to share
// between goroutines. Mixing domains (a float32 accumulator on an int64
// multiplication, say) does not compile.
//
// Predefined constructors never fail. Custom operators are built with
// NewUnaryOperator, NewBinaryOperator, NewMonoid and NewSemiring.
//
// AI-Hints:
//   - Build operators once and reuse them; each constructor call allocates a
//     fresh engine handle.
//   - Use Assignment[D] when the output should simply be overwritten.
package algebra
