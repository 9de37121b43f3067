// SPDX-License-Identifier: MIT

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/extract"
	"github.com/katalvlaran/graphblas/mask"
	"github.com/katalvlaran/graphblas/options"
)

func newContext(t *testing.T) *execution.Context {
	t.Helper()
	ctx, err := execution.Init(execution.NonBlocking)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ctx.Release()) })

	return ctx
}

// columnMatrix is 3×2 with column 0 = [1,2,3] and column 1 = [0,10,0] sparse.
func columnMatrix(t *testing.T, ctx *execution.Context) *collections.SparseMatrix[uint16] {
	t.Helper()
	m, err := collections.MatrixFromElements(ctx, collections.Size{Rows: 3, Columns: 2}, []collections.MatrixElement[uint16]{
		{Row: 0, Column: 0, Value: 1}, {Row: 1, Column: 0, Value: 2}, {Row: 2, Column: 0, Value: 3}, {Row: 1, Column: 1, Value: 10},
	}, algebra.BinaryOperator[uint16]{})
	require.NoError(t, err)

	return m
}

func TestRowSelector_Count(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(7), extract.AllRows().Count(7))
	require.Equal(t, uint64(3), extract.Rows(2, 2, 0).Count(7))
	require.Zero(t, extract.RowSelector{}.Count(7))
}

func TestMatrixColumnExtractor_SelectedRows(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a := columnMatrix(t, ctx)
	extractor := extract.NewMatrixColumnExtractor[uint16](options.NewDefault(), algebra.NewAssignment[uint16]())

	out, err := collections.NewSparseVector[uint16](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, extractor.Apply(a, 0, extract.Rows(0, 2), out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[uint16]{{Index: 0, Value: 1}, {Index: 1, Value: 3}}, got)

	// Values are cast into the output domain.
	narrow, err := collections.NewSparseVector[uint8](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, extractor.Apply(a, 0, extract.AllRows(), narrow))
	gotNarrow, err := narrow.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[uint8]{{Index: 0, Value: 1}, {Index: 1, Value: 2}, {Index: 2, Value: 3}}, gotNarrow)
}

func TestMatrixColumnExtractor_SparseColumnAndRepeats(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a := columnMatrix(t, ctx)
	extractor := extract.NewMatrixColumnExtractor[uint16](options.NewDefault(), nil)

	out, err := collections.NewSparseVector[uint16](ctx, 4)
	require.NoError(t, err)
	require.NoError(t, extractor.Apply(a, 1, extract.Rows(1, 0, 1, 2), out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[uint16]{{Index: 0, Value: 10}, {Index: 2, Value: 10}}, got)
}

func TestMatrixColumnExtractor_TransposeReadsRow(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a := columnMatrix(t, ctx)
	opts, err := options.New(options.WithTransposeFirstOperand())
	require.NoError(t, err)

	out, err := collections.NewSparseVector[uint16](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, extract.NewMatrixColumnExtractor[uint16](opts, nil).Apply(a, 1, extract.AllRows(), out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[uint16]{{Index: 0, Value: 2}, {Index: 1, Value: 10}}, got)
}

func TestMatrixColumnExtractor_MaskAndAccumulator(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a := columnMatrix(t, ctx)
	out, err := collections.VectorFromElements(ctx, 3, []collections.VectorElement[uint16]{
		{Index: 0, Value: 100}, {Index: 2, Value: 100},
	}, algebra.BinaryOperator[uint16]{})
	require.NoError(t, err)
	m, err := collections.NewSparseVector[bool](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(2, true))

	extractor := extract.NewMatrixColumnExtractor[uint16](options.NewDefault(), algebra.Plus[uint16]())
	require.NoError(t, extractor.ApplyWithMask(mask.ForVector(m), a, 0, extract.AllRows(), out))
	got, err := out.Elements()
	require.NoError(t, err)
	require.Equal(t, []collections.VectorElement[uint16]{{Index: 0, Value: 100}, {Index: 2, Value: 103}}, got)
}

func TestMatrixColumnExtractor_Errors(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	a := columnMatrix(t, ctx)
	extractor := extract.NewMatrixColumnExtractor[uint16](options.NewDefault(), nil)

	out, err := collections.NewSparseVector[uint16](ctx, 2)
	require.NoError(t, err)
	require.ErrorIs(t, extractor.Apply(a, 0, extract.AllRows(), out), execution.ErrDimensionMismatch)
	require.ErrorIs(t, extractor.Apply(a, 2, extract.Rows(0, 1), out), execution.ErrIndexOutOfBounds)

	// A row outside the matrix is an execution error, deferred under NonBlocking.
	require.NoError(t, extractor.Apply(a, 0, extract.Rows(0, 3), out))
	err = out.Wait()
	require.ErrorIs(t, err, execution.ErrIndexOutOfBounds)
	require.Contains(t, err.Error(), "row 3 out of bounds")
}
