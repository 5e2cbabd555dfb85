// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernel tests.
//   - Keep all data finite and well-formed; numeric-policy cases build their
//     own inputs inline.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
)

// epsilon is the tolerance for floating-point result comparisons.
const epsilon = 1e-9

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) kernel paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err) // allocation must succeed for valid shapes
	return m
}

// buildDense allocates an r×c *Dense and fills it row by row from rows.
func buildDense(tb testing.TB, r, c int, rows ...[]float64) *matrix.Dense {
	tb.Helper()
	require.Len(tb, rows, r) // fixture must supply every row
	m := mustDense(tb, r, c)
	for i, row := range rows {
		require.NoError(tb, m.SetRow(i, row)) // row lengths must equal c
	}
	return m
}

// requireMatrixEqual asserts got matches the expected grid exactly.
func requireMatrixEqual(tb testing.TB, want [][]float64, got matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, len(want), got.Rows())    // row counts agree
	require.Equal(tb, len(want[0]), got.Cols()) // column counts agree
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.Equal(tb, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// requireMatrixInDelta asserts got matches the expected grid within epsilon.
func requireMatrixInDelta(tb testing.TB, want [][]float64, got matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, len(want), got.Rows())    // row counts agree
	require.Equal(tb, len(want[0]), got.Cols()) // column counts agree
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.InDelta(tb, want[i][j], v, epsilon, "cell (%d,%d)", i, j)
		}
	}
}
