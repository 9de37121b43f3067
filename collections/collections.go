// SPDX-License-Identifier: MIT

// Package collections provides typed sparse vectors and matrices backed by
// engine handles, plus the narrow interfaces the appliers consume.
//
// Every engine call goes through the collection's execution.Context, so errors
// are *execution.Error values matched with errors.Is against the
// execution sentinels.
//
// Collections are not safe for concurrent writers: callers that share one
// output between goroutines serialise their writes (a sync.Mutex per output).
// Concurrent reads are fine.
package collections

import (
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/execution"
)

// VectorSource is a readable engine-backed vector.
type VectorSource interface {
	EngineVector() *engine.Vector
	Context() *execution.Context
}

// VectorTarget is a VectorSource an operation may write into.
type VectorTarget interface {
	VectorSource
	MutableEngineVector() *engine.Vector
}

// MatrixSource is a readable engine-backed matrix.
type MatrixSource interface {
	EngineMatrix() *engine.Matrix
	Context() *execution.Context
}

// MatrixTarget is a MatrixSource an operation may write into.
type MatrixTarget interface {
	MatrixSource
	MutableEngineMatrix() *engine.Matrix
}

// Coordinate addresses one matrix entry.
type Coordinate struct {
	Row, Column uint64
}

// Size is a matrix shape.
type Size struct {
	Rows, Columns uint64
}

// VectorElement is one stored vector entry.
type VectorElement[T any] struct {
	Index uint64
	Value T
}

// MatrixElement is one stored matrix entry.
type MatrixElement[T any] struct {
	Row, Column uint64
	Value       T
}
