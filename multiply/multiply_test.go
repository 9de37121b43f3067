// SPDX-License-Identifier: MIT

package multiply_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/multiply"
	"github.com/katalvlaran/graphblas/options"
)

func newContext(t *testing.T) *execution.Context {
	t.Helper()
	ctx, err := execution.Init(execution.NonBlocking)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ctx.Release()) })

	return ctx
}

// exampleOperands returns [[1,3],[2,4]] and [[5,7],[6,8]].
func exampleOperands(t *testing.T, ctx *execution.Context) (a, b *collections.SparseMatrix[int32]) {
	t.Helper()
	size := collections.Size{Rows: 2, Columns: 2}
	a, err := collections.MatrixFromElements(ctx, size, []collections.MatrixElement[int32]{
		{Row: 0, Column: 0, Value: 1}, {Row: 1, Column: 0, Value: 2}, {Row: 0, Column: 1, Value: 3}, {Row: 1, Column: 1, Value: 4},
	}, algebra.BinaryOperator[int32]{})
	require.NoError(t, err)
	b, err = collections.MatrixFromElements(ctx, size, []collections.MatrixElement[int32]{
		{Row: 0, Column: 0, Value: 5}, {Row: 1, Column: 0, Value: 6}, {Row: 0, Column: 1, Value: 7}, {Row: 1, Column: 1, Value: 8},
	}, algebra.BinaryOperator[int32]{})
	require.NoError(t, err)

	return a, b
}

func TestMatrixMultiplication_PlusTimes(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a, b := exampleOperands(t, ctx)
	out, err := collections.NewSparseMatrix[int32](ctx, collections.Size{Rows: 2, Columns: 2})
	require.NoError(t, err)

	mxm := multiply.NewMatrixMultiplication[int32](algebra.PlusTimes[int32](), options.NewDefault(), algebra.NewAssignment[int32]())
	require.NoError(t, mxm.Apply(a, b, out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.MatrixElement[int32]{
		{Row: 0, Column: 0, Value: 23},
		{Row: 0, Column: 1, Value: 31},
		{Row: 1, Column: 0, Value: 34},
		{Row: 1, Column: 1, Value: 46},
	}, got)

	doubling := multiply.NewMatrixMultiplication[int32](algebra.PlusTimes[int32](), options.NewDefault(), algebra.Plus[int32]())
	require.NoError(t, doubling.Apply(a, b, out))
	x, err := out.ElementOrDefault(collections.Coordinate{Row: 1, Column: 1})
	require.NoError(t, err)
	require.Equal(t, int32(92), x)
}

func TestMatrixMultiplication_ValueMask(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a, b := exampleOperands(t, ctx)
	m, err := collections.MatrixFromElements(ctx, collections.Size{Rows: 2, Columns: 2}, []collections.MatrixElement[uint8]{
		{Row: 0, Column: 0, Value: 3}, {Row: 1, Column: 0, Value: 0}, {Row: 1, Column: 1, Value: 1},
	}, algebra.BinaryOperator[uint8]{})
	require.NoError(t, err)
	out, err := collections.NewSparseMatrix[int32](ctx, collections.Size{Rows: 2, Columns: 2})
	require.NoError(t, err)

	mxm := multiply.NewMatrixMultiplication(algebra.PlusTimes[int32](), options.NewDefault(), nil)
	require.NoError(t, mxm.ApplyWithMask(mask.ForMatrix(m), a, b, out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.MatrixElement[int32]{
		{Row: 0, Column: 0, Value: 23},
		{Row: 1, Column: 1, Value: 46},
	}, got)

	inverted, err := collections.NewSparseMatrix[int32](ctx, collections.Size{Rows: 2, Columns: 2})
	require.NoError(t, err)
	complemented, err := options.New(options.WithComplementedMask())
	require.NoError(t, err)
	require.NoError(t, multiply.NewMatrixMultiplication(algebra.PlusTimes[int32](), complemented, nil).
		ApplyWithMask(mask.ForMatrix(m, mask.Complement()), a, b, inverted),
		"two complements cancel")
	got, err = inverted.Elements()
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestMatrixMultiplication_TransposeAndShape(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a, err := collections.MatrixFromElements(ctx, collections.Size{Rows: 3, Columns: 2}, []collections.MatrixElement[float64]{
		{Row: 0, Column: 0, Value: 1}, {Row: 2, Column: 1, Value: 2},
	}, algebra.BinaryOperator[float64]{})
	require.NoError(t, err)
	out, err := collections.NewSparseMatrix[float64](ctx, collections.Size{Rows: 2, Columns: 2})
	require.NoError(t, err)

	opts, err := options.New(options.WithTransposeFirstOperand())
	require.NoError(t, err)
	require.NoError(t, multiply.NewMatrixMultiplication(algebra.PlusTimes[float64](), opts, nil).Apply(a, a, out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.MatrixElement[float64]{
		{Row: 0, Column: 0, Value: 1},
		{Row: 1, Column: 1, Value: 4},
	}, got)

	err = multiply.NewMatrixMultiplication(algebra.PlusTimes[float64](), options.NewDefault(), nil).Apply(a, a, out)
	require.ErrorIs(t, err, execution.ErrDimensionMismatch)
}

func TestMatrixMultiplication_ZeroContributionIsStored(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	size := collections.Size{Rows: 2, Columns: 2}
	a, err := collections.MatrixFromElements(ctx, size, []collections.MatrixElement[int64]{
		{Row: 0, Column: 0, Value: 1}, {Row: 0, Column: 1, Value: 1},
	}, algebra.BinaryOperator[int64]{})
	require.NoError(t, err)
	b, err := collections.MatrixFromElements(ctx, size, []collections.MatrixElement[int64]{
		{Row: 0, Column: 0, Value: 2}, {Row: 1, Column: 0, Value: -2},
	}, algebra.BinaryOperator[int64]{})
	require.NoError(t, err)
	out, err := collections.NewSparseMatrix[int64](ctx, size)
	require.NoError(t, err)

	require.NoError(t, multiply.NewMatrixMultiplication(algebra.PlusTimes[int64](), options.NewDefault(), nil).Apply(a, b, out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.MatrixElement[int64]{{Row: 0, Column: 0, Value: 0}}, got,
		"row 1 has no contributions and stays empty")
}

func TestMatrixVectorMultiplication(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a, _ := exampleOperands(t, ctx)
	u, err := collections.VectorFromElements(ctx, 2, []collections.VectorElement[int32]{
		{Index: 0, Value: 5}, {Index: 1, Value: 6},
	}, algebra.BinaryOperator[int32]{})
	require.NoError(t, err)

	mxv := multiply.NewMatrixVectorMultiplication(algebra.PlusTimes[int32](), options.NewDefault(), nil)
	out, err := collections.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, mxv.Apply(a, u, out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[int32]{{Index: 0, Value: 23}, {Index: 1, Value: 34}}, got)

	opts, err := options.New(options.WithTransposeFirstOperand())
	require.NoError(t, err)
	m, err := collections.NewSparseVector[bool](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(1, true))
	masked, err := collections.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, multiply.NewMatrixVectorMultiplication(algebra.PlusTimes[int32](), opts, nil).
		ApplyWithMask(mask.ForVector(m), a, u, masked))
	got, err = masked.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[int32]{{Index: 1, Value: 39}}, got)

	short, err := collections.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.ErrorIs(t, mxv.Apply(a, u, short), execution.ErrDimensionMismatch)
}

func TestMatrixVectorMultiplication_MinPlus(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	// Edge weights stored as A[dst][src].
	a, err := collections.MatrixFromElements(ctx, collections.Size{Rows: 3, Columns: 3}, []collections.MatrixElement[float64]{
		{Row: 1, Column: 0, Value: 4}, {Row: 2, Column: 0, Value: 1}, {Row: 1, Column: 2, Value: 2},
	}, algebra.BinaryOperator[float64]{})
	require.NoError(t, err)
	dist, err := collections.VectorFromElements(ctx, 3, []collections.VectorElement[float64]{
		{Index: 0, Value: 0}, {Index: 2, Value: 1},
	}, algebra.BinaryOperator[float64]{})
	require.NoError(t, err)
	next, err := collections.NewSparseVector[float64](ctx, 3)
	require.NoError(t, err)

	require.NoError(t, multiply.NewMatrixVectorMultiplication(algebra.MinPlus[float64](), options.NewDefault(), nil).Apply(a, dist, next))
	got, err := next.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[float64]{{Index: 1, Value: 3}, {Index: 2, Value: 1}}, got)
}
