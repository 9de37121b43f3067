// SPDX-License-Identifier: MIT

// Package mask restricts which output coordinates an operation may write.
//
// A mask is either "select all" (no engine handle) or an existing collection
// whose entries select coordinates: present and, unless the operation reads
// masks structurally, with a value that casts to true. Complement inverts the
// selection. Masks are immutable views and safe to share; the underlying
// collection must not be written while an operation reads it.
package mask

import (
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/execution"
)

// VectorMask selects coordinates of a vector output.
type VectorMask interface {
	// EngineVector returns the mask handle, or nil to select everything.
	EngineVector() *engine.Vector
	// Complemented reports whether the selection is inverted.
	Complemented() bool
}

// MatrixMask selects coordinates of a matrix output.
type MatrixMask interface {
	// EngineMatrix returns the mask handle, or nil to select everything.
	EngineMatrix() *engine.Matrix
	// Complemented reports whether the selection is inverted.
	Complemented() bool
}

// Option configures an explicit mask.
type Option func(*settings)

type settings struct {
	complement bool
}

// Complement inverts the mask selection.
func Complement() Option {
	return func(s *settings) { s.complement = !s.complement }
}

func gather(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

type selectAllVector struct{}

func (selectAllVector) EngineVector() *engine.Vector { return nil }

func (selectAllVector) Complemented() bool { return false }

type selectAllMatrix struct{}

func (selectAllMatrix) EngineMatrix() *engine.Matrix { return nil }

func (selectAllMatrix) Complemented() bool { return false }

// SelectEntireVector selects every coordinate of a vector output.
// It holds no engine handle; the Context is accepted so call sites read the
// same as ForVector.
func SelectEntireVector(*execution.Context) VectorMask { return selectAllVector{} }

// SelectEntireMatrix selects every coordinate of a matrix output.
func SelectEntireMatrix(*execution.Context) MatrixMask { return selectAllMatrix{} }

type vectorMask struct {
	handle     *engine.Vector
	complement bool
}

func (m vectorMask) EngineVector() *engine.Vector { return m.handle }

func (m vectorMask) Complemented() bool { return m.complement }

type matrixMask struct {
	handle     *engine.Matrix
	complement bool
}

func (m matrixMask) EngineMatrix() *engine.Matrix { return m.handle }

func (m matrixMask) Complemented() bool { return m.complement }

// ForVector uses the entries of v as a mask.
// The mask's shape must equal the output's; a mismatch surfaces as
// execution.ErrDimensionMismatch when the operation runs.
func ForVector(v collections.VectorSource, opts ...Option) VectorMask {
	s := gather(opts)
	return vectorMask{handle: v.EngineVector(), complement: s.complement}
}

// ForMatrix uses the entries of m as a mask.
func ForMatrix(m collections.MatrixSource, opts ...Option) MatrixMask {
	s := gather(opts)
	return matrixMask{handle: m.EngineMatrix(), complement: s.complement}
}
