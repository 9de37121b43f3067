// SPDX-License-Identifier: MIT

package collections

import (
	"fmt"

	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/serialize"
	"github.com/katalvlaran/graphblas/valuetype"
)

// SerializeVector snapshots v into an envelope produced by s.
func SerializeVector[T valuetype.ValueType](v *SparseVector[T], s serialize.Serializer) ([]byte, error) {
	var raw []byte
	err := v.ctx.Call("GxB_Vector_serialize", func() (info engine.Info) {
		raw, info = engine.VectorSerialize(v.handle)
		return info
	}, v.handle)
	if err != nil {
		return nil, err
	}
	blob, err := s.Encode(raw)
	if err != nil {
		return nil, fmt.Errorf("collections: encode vector: %w", err)
	}

	return blob, nil
}

// DeserializeVector rebuilds a vector from an envelope produced by
// SerializeVector with the same codec. A snapshot of another domain fails
// with execution.ErrDomainMismatch.
func DeserializeVector[T valuetype.ValueType](ctx *execution.Context, s serialize.Serializer, blob []byte) (*SparseVector[T], error) {
	raw, err := s.Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("collections: decode vector: %w", err)
	}
	var (
		handle *engine.Vector
		length uint64
	)
	err = ctx.Call("GxB_Vector_deserialize", func() (info engine.Info) {
		if handle, info = engine.VectorDeserialize(valuetype.EngineType[T](), raw); info != engine.Success {
			return info
		}
		length, info = engine.VectorSize(handle)
		return info
	}, nil)
	if err != nil {
		return nil, err
	}

	return &SparseVector[T]{ctx: ctx, handle: handle, length: length}, nil
}

// SerializeMatrix snapshots m into an envelope produced by s.
func SerializeMatrix[T valuetype.ValueType](m *SparseMatrix[T], s serialize.Serializer) ([]byte, error) {
	var raw []byte
	err := m.ctx.Call("GxB_Matrix_serialize", func() (info engine.Info) {
		raw, info = engine.MatrixSerialize(m.handle)
		return info
	}, m.handle)
	if err != nil {
		return nil, err
	}
	blob, err := s.Encode(raw)
	if err != nil {
		return nil, fmt.Errorf("collections: encode matrix: %w", err)
	}

	return blob, nil
}

// DeserializeMatrix rebuilds a matrix from an envelope produced by
// SerializeMatrix with the same codec.
func DeserializeMatrix[T valuetype.ValueType](ctx *execution.Context, s serialize.Serializer, blob []byte) (*SparseMatrix[T], error) {
	raw, err := s.Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("collections: decode matrix: %w", err)
	}
	var (
		handle *engine.Matrix
		size   Size
	)
	err = ctx.Call("GxB_Matrix_deserialize", func() (info engine.Info) {
		if handle, info = engine.MatrixDeserialize(valuetype.EngineType[T](), raw); info != engine.Success {
			return info
		}
		if size.Rows, info = engine.MatrixNrows(handle); info != engine.Success {
			return info
		}
		size.Columns, info = engine.MatrixNcols(handle)
		return info
	}, nil)
	if err != nil {
		return nil, err
	}

	return &SparseMatrix[T]{ctx: ctx, handle: handle, size: size}, nil
}
