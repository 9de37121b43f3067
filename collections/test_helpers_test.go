// SPDX-License-Identifier: MIT

package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/execution"
)

// newContext joins the engine in NonBlocking mode for one test.
func newContext(t *testing.T) *execution.Context {
	t.Helper()
	ctx, err := execution.Init(execution.NonBlocking)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ctx.Release()) })

	return ctx
}
