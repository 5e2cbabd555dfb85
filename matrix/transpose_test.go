// Package matrix_test contains unit tests for the four transpose variants:
// main diagonal, side diagonal, vertical line, horizontal line.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
)

// fixture3 builds the canonical 3x3 grid 1..9 used across the remap tests.
func fixture3(tb testing.TB) *matrix.Dense {
	return buildDense(tb, 3, 3,
		[]float64{1, 2, 3},
		[]float64{4, 5, 6},
		[]float64{7, 8, 9},
	)
}

// TestTransposeMain checks the main-diagonal reflection (i,j) → (j,i).
func TestTransposeMain(t *testing.T) {
	got, err := matrix.Transpose(fixture3(t))
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}, got)
}

// TestTransposeSide checks the anti-diagonal reflection (i,j) → (n-1-j, n-1-i).
func TestTransposeSide(t *testing.T) {
	got, err := matrix.TransposeSide(fixture3(t))
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{
		{9, 6, 3},
		{8, 5, 2},
		{7, 4, 1},
	}, got)
}

// TestTransposeVertical checks the vertical-midline reflection (i,j) → (i, n-1-j).
func TestTransposeVertical(t *testing.T) {
	got, err := matrix.TransposeVertical(fixture3(t))
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{
		{3, 2, 1},
		{6, 5, 4},
		{9, 8, 7},
	}, got)
}

// TestTransposeHorizontal checks the horizontal-midline reflection (i,j) → (n-1-i, j).
func TestTransposeHorizontal(t *testing.T) {
	got, err := matrix.TransposeHorizontal(fixture3(t))
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{
		{7, 8, 9},
		{4, 5, 6},
		{1, 2, 3},
	}, got)
}

// TestTransposeInvolution verifies every variant undoes itself.
func TestTransposeInvolution(t *testing.T) {
	variants := map[string]func(matrix.Matrix) (matrix.Matrix, error){
		"main":       matrix.Transpose,
		"side":       matrix.TransposeSide,
		"vertical":   matrix.TransposeVertical,
		"horizontal": matrix.TransposeHorizontal,
	}

	src := fixture3(t)
	for name, f := range variants {
		t.Run(name, func(t *testing.T) {
			once, err := f(src) // first application
			require.NoError(t, err)
			twice, err := f(once) // second application restores the source
			require.NoError(t, err)
			requireMatrixEqual(t, toGrid(t, src), twice)
		})
	}
}

// TestTransposeNonSquare ensures each variant rejects rectangular input.
func TestTransposeNonSquare(t *testing.T) {
	rect := mustDense(t, 2, 3) // 2x3 is not square

	for _, f := range []func(matrix.Matrix) (matrix.Matrix, error){
		matrix.Transpose, matrix.TransposeSide,
		matrix.TransposeVertical, matrix.TransposeHorizontal,
	} {
		_, err := f(rect)
		require.ErrorIs(t, err, matrix.ErrNonSquare) // expect ErrNonSquare
	}
}

// TestTransposeFallbackPath forces the interface path and compares to the fast path.
func TestTransposeFallbackPath(t *testing.T) {
	src := fixture3(t)

	fast, err := matrix.Transpose(src) // *Dense path
	require.NoError(t, err)
	slow, err := matrix.Transpose(hide{src}) // masked input de-opts the kernel
	require.NoError(t, err)
	requireMatrixEqual(t, toGrid(t, fast), slow)
}

// TestDeterminantInvariantUnderTranspose checks det(Aᵀ) == det(A).
func TestDeterminantInvariantUnderTranspose(t *testing.T) {
	src := buildDense(t, 3, 3,
		[]float64{2, -1, 0},
		[]float64{1, 3, 4},
		[]float64{0, 5, -2},
	)

	d1, err := matrix.Det(src) // determinant of the source
	require.NoError(t, err)

	tr, err := matrix.Transpose(src) // main-diagonal transpose
	require.NoError(t, err)
	d2, err := matrix.Det(tr) // determinant of the transpose
	require.NoError(t, err)

	require.InDelta(t, d1, d2, epsilon) // invariant within tolerance
}
