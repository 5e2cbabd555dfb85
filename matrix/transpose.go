// SPDX-License-Identifier: MIT
// Package matrix: the four transpose variants. Each is a pure geometric
// remap — no state machine, no arithmetic — defined by a bijective index
// transform applied to every source cell exactly once.

package matrix

import "fmt"

// indexRemap maps a source cell (i, j) to its destination cell (di, dj)
// inside an n×n matrix. Implementations must be bijections on [0,n)².
type indexRemap func(n, i, j int) (di, dj int)

// Transpose reflects the matrix across its main diagonal: (i,j) → (j,i).
// Requires a square matrix; applying it twice restores the original.
func Transpose(m Matrix) (Matrix, error) {
	return remap(m, opTranspose, func(n, i, j int) (int, int) { return j, i })
}

// TransposeSide reflects across the side (anti-) diagonal:
// (i,j) → (n-1-j, n-1-i). Requires a square matrix.
func TransposeSide(m Matrix) (Matrix, error) {
	return remap(m, opTranspose, func(n, i, j int) (int, int) { return n - 1 - j, n - 1 - i })
}

// TransposeVertical reflects across the vertical midline: (i,j) → (i, n-1-j).
// Requires a square matrix.
func TransposeVertical(m Matrix) (Matrix, error) {
	return remap(m, opTranspose, func(n, i, j int) (int, int) { return i, n - 1 - j })
}

// TransposeHorizontal reflects across the horizontal midline: (i,j) → (n-1-i, j).
// Requires a square matrix.
func TransposeHorizontal(m Matrix) (Matrix, error) {
	return remap(m, opTranspose, func(n, i, j int) (int, int) { return n - 1 - i, j })
}

// remap is the shared kernel behind the transpose family.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Allocate Dense(n, n).
//   - Stage 2: walk source cells in fixed i→j order, writing each to f(n,i,j).
//     Fast-path reads the *Dense backing slice directly; fallback uses At.
//
// Behavior highlights:
//   - f is a bijection, so every destination cell is written exactly once.
//   - Deterministic traversal order; one allocation for the result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows != cols), both wrapped
//     with opTranspose.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the returned matrix.
func remap(m Matrix, tag string, f indexRemap) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Allocate result Dense with the same shape
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j, di, dj int // loop iterators and destination indices

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				di, dj = f(n, i, j)
				res.data[di*n+dj] = dm.data[i*n+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			di, dj = f(n, i, j)
			if err = res.Set(di, dj, v); err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", di, dj, err))
			}
		}
	}

	// Return result
	return res, nil
}
