// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/algorithms"
	"github.com/katalvlaran/graphblas/builder"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/execution"
	"github.com/katalvlaran/graphblas/valuetype"
)

func newContext(t *testing.T) *execution.Context {
	t.Helper()
	ctx, err := execution.Init(execution.NonBlocking)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ctx.Release()) })

	return ctx
}

type edge[T valuetype.ValueType] struct {
	from, to uint64
	weight   T
}

func graph[T valuetype.ValueType](t *testing.T, ctx *execution.Context, n uint64, edges ...edge[T]) *collections.SparseMatrix[T] {
	t.Helper()
	elements := make([]collections.MatrixElement[T], len(edges))
	for i, e := range edges {
		elements[i] = collections.MatrixElement[T]{Row: e.from, Column: e.to, Value: e.weight}
	}
	m, err := collections.MatrixFromElements(ctx, collections.Size{Rows: n, Columns: n}, elements, algebra.BinaryOperator[T]{})
	require.NoError(t, err)

	return m
}

func asMap[T valuetype.Number](t *testing.T, v *collections.SparseVector[T]) map[uint64]T {
	t.Helper()
	elements, err := v.Elements()
	require.NoError(t, err)
	got := make(map[uint64]T, len(elements))
	for _, e := range elements {
		got[e.Index] = e.Value
	}

	return got
}

// cyclic: 0→1, 0→2, 1→3, 3→0; vertex 4 is isolated.
func cyclic(t *testing.T, ctx *execution.Context) *collections.SparseMatrix[bool] {
	return graph(t, ctx, 5,
		edge[bool]{0, 1, true}, edge[bool]{0, 2, true}, edge[bool]{1, 3, true}, edge[bool]{3, 0, true})
}

func TestBFSLevels_ReachableVertices(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	levels, err := algorithms.BFSLevels(cyclic(t, ctx), 0, nil)
	require.NoError(t, err)
	require.Equal(t, map[uint64]int64{0: 0, 1: 1, 2: 1, 3: 2}, asMap(t, levels))

	levels, err = algorithms.BFSLevels(cyclic(t, ctx), 4, nil)
	require.NoError(t, err)
	require.Equal(t, map[uint64]int64{4: 0}, asMap(t, levels))
}

func TestBFSLevels_FalseEntriesAreNotEdges(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g := graph(t, ctx, 3, edge[uint8]{0, 1, 0}, edge[uint8]{0, 2, 7}, edge[uint8]{1, 2, 1})

	levels, err := algorithms.BFSLevels(g, 0, nil)
	require.NoError(t, err)
	require.Equal(t, map[uint64]int64{0: 0, 2: 1}, asMap(t, levels))
}

func TestBFSLevels_OptionsAndHooks(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	var seen [][2]uint64
	levels, err := algorithms.BFSLevels(cyclic(t, ctx), 0, &algorithms.BFSOptions{
		MaxDepth: 1,
		OnLevel: func(depth int64, reached uint64) error {
			seen = append(seen, [2]uint64{uint64(depth), reached})
			return nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, map[uint64]int64{0: 0, 1: 1, 2: 1}, asMap(t, levels))
	require.Equal(t, [][2]uint64{{0, 1}, {1, 2}}, seen)

	stop := errors.New("stop")
	_, err = algorithms.BFSLevels(cyclic(t, ctx), 0, &algorithms.BFSOptions{
		OnLevel: func(int64, uint64) error { return stop },
	})
	require.ErrorIs(t, err, stop)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = algorithms.BFSLevels(cyclic(t, ctx), 0, &algorithms.BFSOptions{Ctx: cancelled})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFSLevels_Validation(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	_, err := algorithms.BFSLevels[bool](nil, 0, nil)
	require.ErrorIs(t, err, algorithms.ErrNilMatrix)

	_, err = algorithms.BFSLevels(cyclic(t, ctx), 5, nil)
	require.ErrorIs(t, err, algorithms.ErrSourceOutOfRange)

	rect, err := collections.NewSparseMatrix[bool](ctx, collections.Size{Rows: 2, Columns: 3})
	require.NoError(t, err)
	_, err = algorithms.BFSLevels(rect, 0, nil)
	require.ErrorIs(t, err, algorithms.ErrNotSquare)
}

func TestShortestPaths(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	cases := []struct {
		name  string
		edges []edge[int64]
		want  map[uint64]int64
	}{
		{
			name:  "detour beats direct edge",
			edges: []edge[int64]{{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}},
			want:  map[uint64]int64{0: 0, 1: 3, 2: 1, 3: 4},
		},
		{
			name:  "negative edge without cycle",
			edges: []edge[int64]{{0, 1, 5}, {0, 2, 2}, {2, 1, -4}},
			want:  map[uint64]int64{0: 0, 1: -2, 2: 2},
		},
		{
			name:  "unreachable vertices stay absent",
			edges: []edge[int64]{{1, 2, 1}, {2, 3, 1}},
			want:  map[uint64]int64{0: 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, err := algorithms.ShortestPaths(graph(t, ctx, 4, tc.edges...), 0)
			require.NoError(t, err)
			require.Equal(t, tc.want, asMap(t, dist))
		})
	}
}

func TestShortestPaths_Unsigned(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g := graph(t, ctx, 3, edge[uint32]{0, 1, 10}, edge[uint32]{0, 2, 3}, edge[uint32]{2, 1, 3})

	dist, err := algorithms.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, map[uint64]uint32{0: 0, 1: 6, 2: 3}, asMap(t, dist))
}

func TestShortestPaths_NegativeCycle(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g := graph(t, ctx, 3, edge[int64]{0, 1, 1}, edge[int64]{1, 2, -3}, edge[int64]{2, 1, 1})

	_, err := algorithms.ShortestPaths(g, 0)
	require.ErrorIs(t, err, algorithms.ErrNegativeCycle)

	dist, err := algorithms.ShortestPaths(g, 0, algorithms.WithMaxRounds(1))
	require.NoError(t, err, "a capped search returns the partial distances")
	require.Equal(t, map[uint64]int64{0: 0, 1: 1}, asMap(t, dist))
}

func TestShortestPaths_Cancelled(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := algorithms.ShortestPaths(graph[int64](t, ctx, 2), 0, algorithms.WithContext(cancelled))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFSLevels_GridManhattanDistance(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	const rows, cols = 3, 4
	g, err := builder.BuildAdjacency[uint8](ctx, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	levels, err := algorithms.BFSLevels(g, 0, nil)
	require.NoError(t, err)
	got := asMap(t, levels)
	require.Len(t, got, rows*cols)
	for r := uint64(0); r < rows; r++ {
		for c := uint64(0); c < cols; c++ {
			require.Equal(t, int64(r+c), got[r*cols+c], "cell (%d,%d)", r, c)
		}
	}
}

func TestShortestPaths_UnitWeightsMatchBFS(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	for seed := int64(1); seed <= 5; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithDirected()}
		g, err := builder.BuildAdjacency[int64](ctx, opts, builder.RandomSparse(20, 0.15))
		require.NoError(t, err)

		levels, err := algorithms.BFSLevels(g, 0, nil)
		require.NoError(t, err)
		dist, err := algorithms.ShortestPaths(g, 0)
		require.NoError(t, err)
		require.Equal(t, asMap(t, levels), asMap(t, dist), "seed %d", seed)
	}
}

func TestShortestPaths_CycleWithUniformWeights(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g, err := builder.BuildAdjacency[float64](ctx, []builder.BuilderOption{
		builder.WithDirected(),
		builder.WithWeightFn(builder.ConstantWeightFn(2.5)),
	}, builder.Cycle(6))
	require.NoError(t, err)

	dist, err := algorithms.ShortestPaths(g, 2)
	require.NoError(t, err)
	elements, err := dist.Elements()
	require.NoError(t, err)
	require.Len(t, elements, 6)
	for _, e := range elements {
		hops := (e.Index + 6 - 2) % 6
		require.InDelta(t, 2.5*float64(hops), e.Value, 1e-9)
	}
}
