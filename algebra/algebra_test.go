// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/valuetype"
)

func startEngine(t *testing.T) {
	t.Helper()
	require.Equal(t, engine.Success, engine.Init(engine.Blocking))
	t.Cleanup(func() { engine.Finalize() })
}

// scalar stores x at index 0 of a fresh one-element vector.
func scalar[D valuetype.ValueType](t *testing.T, x D) *engine.Vector {
	t.Helper()
	v, info := engine.NewVector(valuetype.EngineType[D](), 1)
	require.Equal(t, engine.Success, info)
	require.Equal(t, engine.Success, engine.VectorSetElement(v, x, 0))

	return v
}

func result[D valuetype.ValueType](t *testing.T, v *engine.Vector) D {
	t.Helper()
	x, info := engine.VectorExtractElement(v, 0)
	require.Equal(t, engine.Success, info)

	return valuetype.FromEngine[D](x)
}

// evalBinary evaluates op(x, y) through the engine.
func evalBinary[D valuetype.ValueType](t *testing.T, op algebra.BinaryOperator[D], x, y D) D {
	t.Helper()
	w, _ := engine.NewVector(valuetype.EngineType[D](), 1)
	require.Equal(t, engine.Success, engine.VectorEWiseMult(w, nil, nil, op.EngineHandle(), scalar(t, x), scalar(t, y), nil))

	return result[D](t, w)
}

// evalUnary evaluates op(x) through the engine.
func evalUnary[D valuetype.ValueType](t *testing.T, op algebra.UnaryOperator[D], x D) D {
	t.Helper()
	w, _ := engine.NewVector(valuetype.EngineType[D](), 1)
	require.Equal(t, engine.Success, engine.VectorApply(w, nil, nil, op.EngineHandle(), scalar(t, x), nil))

	return result[D](t, w)
}

func TestBinaryOperators_Int64(t *testing.T) {
	t.Parallel()
	startEngine(t)

	cases := []struct {
		op   algebra.BinaryOperator[int64]
		x, y int64
		want int64
	}{
		{algebra.First[int64](), 3, 5, 3},
		{algebra.Second[int64](), 3, 5, 5},
		{algebra.Plus[int64](), 3, 5, 8},
		{algebra.Minus[int64](), 3, 5, -2},
		{algebra.Times[int64](), 3, 5, 15},
		{algebra.Min[int64](), 3, 5, 3},
		{algebra.Max[int64](), 3, 5, 5},
		{algebra.Any[int64](), 3, 5, 3},
		{algebra.Pair[int64](), 3, 5, 1},
		{algebra.LogicalOr[int64](), 0, 5, 1},
		{algebra.LogicalAnd[int64](), 0, 5, 0},
		{algebra.LogicalXor[int64](), 2, 5, 0},
		{algebra.IsEqual[int64](), 4, 4, 1},
	}
	for _, tc := range cases {
		t.Run(tc.op.Name(), func(t *testing.T) {
			require.Equal(t, tc.want, evalBinary(t, tc.op, tc.x, tc.y))
		})
	}
}

func TestBinaryOperators_FloatAndBool(t *testing.T) {
	t.Parallel()
	startEngine(t)

	require.Equal(t, 2.5, evalBinary(t, algebra.Divide[float64](), 5, 2))
	require.True(t, math.IsInf(float64(evalBinary(t, algebra.Divide[float32](), 1, 0)), 1))
	require.True(t, evalBinary(t, algebra.LogicalOr[bool](), false, true))
	require.False(t, evalBinary(t, algebra.IsEqual[bool](), false, true))
	require.Equal(t, "GrB_PLUS_FP32", algebra.Plus[float32]().Name())
}

func TestUnaryOperators(t *testing.T) {
	t.Parallel()
	startEngine(t)

	require.Equal(t, int32(-4), evalUnary(t, algebra.AdditiveInverse[int32](), 4))
	require.Equal(t, uint8(255), evalUnary(t, algebra.AdditiveInverse[uint8](), 1))
	require.Equal(t, 0.25, evalUnary(t, algebra.MultiplicativeInverse[float64](), 4))
	require.Equal(t, int16(7), evalUnary(t, algebra.AbsoluteValue[int16](), -7))
	require.Equal(t, uint8(1), evalUnary(t, algebra.One[uint8](), 200))
	require.Equal(t, uint8(200), evalUnary(t, algebra.Identity[uint8](), 200))
	require.Equal(t, float32(1), evalUnary(t, algebra.LogicalNegation[float32](), 0))
	require.False(t, evalUnary(t, algebra.LogicalNegation[bool](), true))
	require.True(t, evalUnary(t, algebra.One[bool](), false))
}

func TestMonoids_Identities(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(0), algebra.PlusMonoid[int64]().Identity())
	require.Equal(t, float32(1), algebra.TimesMonoid[float32]().Identity())
	require.Equal(t, uint16(math.MaxUint16), algebra.MinMonoid[uint16]().Identity())
	require.True(t, math.IsInf(algebra.MinMonoid[float64]().Identity(), 1))
	require.Equal(t, int8(math.MinInt8), algebra.MaxMonoid[int8]().Identity())
	require.False(t, algebra.LogicalOrMonoid[bool]().Identity())
	require.Equal(t, uint8(1), algebra.LogicalAndMonoid[uint8]().Identity())
	require.Equal(t, int32(0), algebra.AnyMonoid[int32]().Identity())
	require.Equal(t, "GrB_MIN_UINT16", algebra.MinMonoid[uint16]().Operator().Name())
}

func TestSemirings_Components(t *testing.T) {
	t.Parallel()

	s := algebra.MinPlus[float64]()
	require.Equal(t, "GrB_MIN_FP64", s.Add().Operator().Name())
	require.Equal(t, "GrB_PLUS_FP64", s.Multiply().Name())
	require.NotNil(t, s.EngineHandle())

	custom := algebra.NewSemiring(algebra.MaxMonoid[int64](), algebra.Min[int64]())
	require.Equal(t, "GrB_MIN_INT64", custom.Multiply().Name())

	for _, named := range []algebra.Semiring[int32]{
		algebra.PlusTimes[int32](), algebra.MaxPlus[int32](), algebra.MaxTimes[int32](),
		algebra.MinTimes[int32](), algebra.LogicalOrLogicalAnd[int32](), algebra.AnyPair[int32](),
		algebra.PlusFirst[int32](), algebra.PlusSecond[int32](),
	} {
		require.Same(t, named.Add().EngineHandle(), named.EngineHandle().Add())
	}
}

func TestAccumulators(t *testing.T) {
	t.Parallel()

	var acc algebra.Accumulator[float32] = algebra.NewAssignment[float32]()
	require.Nil(t, acc.AccumulatorHandle())

	plus := algebra.Plus[float32]()
	acc = plus
	require.Same(t, plus.EngineHandle(), acc.AccumulatorHandle())
}

func TestOrAssignment(t *testing.T) {
	t.Parallel()

	require.Equal(t, algebra.Accumulator[int32](algebra.Assignment[int32]{}), algebra.OrAssignment[int32](nil))
	lowest := algebra.Min[int32]()
	require.Equal(t, algebra.Accumulator[int32](lowest), algebra.OrAssignment[int32](lowest))
}

func TestZeroOperators_HaveEmptyName(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		require.Empty(t, algebra.BinaryOperator[int64]{}.Name())
		require.Empty(t, algebra.UnaryOperator[bool]{}.Name())
	})
	require.NotEmpty(t, algebra.Plus[int64]().Name())
}

func TestCustomOperatorPanic_IsContained(t *testing.T) {
	t.Parallel()
	startEngine(t)

	boom := algebra.NewBinaryOperator("boom", func(x, y int64) int64 { panic("bad operand") })
	w, _ := engine.NewVector(engine.Int64, 1)
	info := engine.VectorEWiseMult(w, nil, nil, boom.EngineHandle(), scalar(t, int64(1)), scalar(t, int64(2)), nil)
	require.Equal(t, engine.Panic, info)
	require.Contains(t, engine.ErrorString(w), "bad operand")
}
