// SPDX-License-Identifier: MIT

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// start joins the engine in Blocking mode for the duration of the test.
func start(t *testing.T) {
	t.Helper()
	require.Equal(t, Success, Init(Blocking))
	t.Cleanup(func() { require.Equal(t, Success, Finalize()) })
}

// vec builds a vector of the given domain from index → value pairs.
func vec(t *testing.T, typ *Type, size uint64, entries map[uint64]any) *Vector {
	t.Helper()
	v, info := NewVector(typ, size)
	require.Equal(t, Success, info)
	for i, x := range entries {
		require.Equal(t, Success, VectorSetElement(v, x, i))
	}

	return v
}

// mat builds a matrix of the given domain from {row, col, value} triples.
func mat(t *testing.T, typ *Type, nrows, ncols uint64, entries ...[3]any) *Matrix {
	t.Helper()
	m, info := NewMatrix(typ, nrows, ncols)
	require.Equal(t, Success, info)
	for _, e := range entries {
		require.Equal(t, Success, MatrixSetElement(m, e[2], uint64(e[0].(int)), uint64(e[1].(int))))
	}

	return m
}

// vecMap returns the stored entries of v as index → value.
func vecMap(t *testing.T, v *Vector) map[uint64]any {
	t.Helper()
	indices, values, info := VectorExtractTuples(v)
	require.Equal(t, Success, info)
	out := make(map[uint64]any, len(indices))
	for n, i := range indices {
		out[i] = values[n]
	}

	return out
}

// matMap returns the stored entries of m as [row, col] → value.
func matMap(t *testing.T, m *Matrix) map[[2]uint64]any {
	t.Helper()
	rows, cols, values, info := MatrixExtractTuples(m)
	require.Equal(t, Success, info)
	out := make(map[[2]uint64]any, len(rows))
	for n := range rows {
		out[[2]uint64{rows[n], cols[n]}] = values[n]
	}

	return out
}

func plus(t *testing.T, typ *Type) *BinaryOp {
	t.Helper()
	op, info := NewBinaryOp("plus", typ, typ, typ, func(x, y any) any { return addAny(x, y) })
	require.Equal(t, Success, info)

	return op
}

func times(t *testing.T, typ *Type) *BinaryOp {
	t.Helper()
	op, info := NewBinaryOp("times", typ, typ, typ, func(x, y any) any { return mulAny(x, y) })
	require.Equal(t, Success, info)

	return op
}

func plusTimes(t *testing.T, typ *Type) *Semiring {
	t.Helper()
	add, info := NewMonoid(plus(t, typ), int64(0))
	require.Equal(t, Success, info)
	s, info := NewSemiring(add, times(t, typ))
	require.Equal(t, Success, info)

	return s
}

// addAny and mulAny cover the domains the tests use.
func addAny(x, y any) any {
	switch a := x.(type) {
	case float32:
		return a + y.(float32)
	case float64:
		return a + y.(float64)
	case int64:
		return a + y.(int64)
	case uint8:
		return a + y.(uint8)
	}
	panic("unsupported domain")
}

func mulAny(x, y any) any {
	switch a := x.(type) {
	case float32:
		return a * y.(float32)
	case float64:
		return a * y.(float64)
	case int64:
		return a * y.(int64)
	case uint8:
		return a * y.(uint8)
	}
	panic("unsupported domain")
}
