// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w as
// "<Constructor>: <detail>: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or weight
// function needs an RNG (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the build could not run: a nil
// constructor, no constructors at all, or a failure while materialising the
// matrix.
var ErrConstructFailed = errors.New("builder: construction failed")
