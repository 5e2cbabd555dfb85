// SPDX-License-Identifier: MIT
// Package matrix: recursive Laplace (cofactor-expansion) determinant and the
// minor/cofactor machinery it is built from.
//
// TERMINOLOGY (deliberate, non-textbook):
//   - Minor(i,j) is the determinant of the submatrix with row i and column j
//     deleted — a scalar, not a submatrix.
//   - Cofactor(i,j) is the sign-adjusted ELEMENT ±a[i,j], not a sign-adjusted
//     minor. The row-0 expansion therefore sums Minor(0,j)*Cofactor(0,j),
//     which folds the sign and the element into a single factor. Composing
//     the two the other way round — Cofactors applied to the Minors matrix —
//     yields the classical cofactor matrix the inverse needs.

package matrix

import "fmt"

// Det computes the determinant of a square matrix by Laplace expansion
// along row 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: base cases n=1 (single element) and n=2 (ad - cb).
//   - Stage 3: general case — for j = 0..n-1 left to right, delete row 0 and
//     column j, recurse on the submatrix, and accumulate
//     Det(sub) * Cofactor(m, 0, j).
//
// Behavior highlights:
//   - Fixed left-to-right summation order; recursion depth equals n.
//   - Each recursive step materializes a genuinely smaller Dense, keeping
//     the expansion order (and therefore the floating-point result) stable.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with opDeterminant).
//
// Complexity:
//   - Time O(n!) — acceptable only for the small matrices this package
//     targets. Space O(n²) per recursion level.
func Det(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.Rows()

	// Base case n=1: the single element.
	if n == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		return v, nil
	}

	// Base case n=2: a00*a11 - a10*a01.
	if n == 2 {
		var a [2][2]float64
		var err error
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if a[i][j], err = m.At(i, j); err != nil {
					return 0, matrixErrorf(opDeterminant, err)
				}
			}
		}
		return a[0][0]*a[1][1] - a[1][0]*a[0][1], nil
	}

	// General case: expand along row 0, j ascending.
	sum := ZeroSum
	var (
		sub  *Dense
		d, c float64
		err  error
	)
	for j := 0; j < n; j++ {
		// Delete row 0 and column j.
		sub, err = deleted(m, 0, j)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		// Recurse on the (n-1)×(n-1) submatrix.
		d, err = Det(sub)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		// Signed element ±a[0,j] folds sign and element into one factor.
		c, err = Cofactor(m, 0, j)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		sum += d * c
	}

	return sum, nil
}

// Minor returns the determinant of the submatrix of m with row i and
// column j deleted. The submatrix is an intermediate only; the result is
// a scalar.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare  (validation, wrapped with opMinor).
//   - ErrIndexOutOfBounds         (i or j outside [0,n)).
//   - ErrInvalidDimensions        (m is 1×1, so the submatrix would be 0×0).
//
// Complexity: O((n-1)!) via Det on the submatrix.
func Minor(m Matrix, i, j int) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	// Delete row i and column j; rejects 1×1 input via NewDense(0,0).
	sub, err := deleted(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	// The minor is the determinant of the submatrix.
	d, err := Det(sub)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return d, nil
}

// Cofactor returns the sign-adjusted element: a[i,j] when i+j is even,
// -a[i,j] when odd. See the package note — this is a signed element, not a
// signed minor.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation, wrapped with opCofactor).
//   - ErrIndexOutOfBounds        (invalid i or j, from At).
//
// Complexity: O(1).
func Cofactor(m Matrix, i, j int) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	// Read the element
	v, err := m.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	// Apply the checkerboard sign
	if (i+j)%2 != 0 {
		v = -v
	}

	return v, nil
}

// Minors builds the matrix of minors: a same-shape Dense whose cell (i,j)
// holds Minor(m, i, j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrInvalidDimensions       (1×1 input — minors need a 2×2 at least).
//
// Complexity: O(n² · (n-1)!).
func Minors(m Matrix) (Matrix, error) {
	return cellwise(m, opMinor, Minor)
}

// Cofactors builds the matrix of cofactors: a same-shape Dense whose cell
// (i,j) holds Cofactor(m, i, j) — the checkerboard-signed elements of m.
// Applied to a Minors result this produces the classical cofactor matrix.
//
// Complexity: O(n²).
func Cofactors(m Matrix) (Matrix, error) {
	return cellwise(m, opCofactor, Cofactor)
}

// cellwise fills a same-shape Dense by evaluating f at every cell of m in
// fixed i→j order. Shared scaffolding for Minors and Cofactors.
func cellwise(m Matrix, tag string, f func(Matrix, int, int) (float64, error)) (Matrix, error) {
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

	// Evaluate f cell by cell
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err = f(m, i, j)
			if err != nil {
				return nil, err // f already wraps with its own tag
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// deleted materializes the (n-1)×(n-1) submatrix of m with row di and
// column dj removed. Assumes m is square (callers validate); bounds-checks
// di/dj itself. A 1×1 input fails with ErrInvalidDimensions since the
// result would be 0×0.
//
// Complexity: O(n²).
func deleted(m Matrix, di, dj int) (*Dense, error) {
	n := m.Rows()

	// Validate the deleted indices
	if di < 0 || di >= n || dj < 0 || dj >= n {
		return nil, fmt.Errorf("deleted(%d,%d): %w", di, dj, ErrIndexOutOfBounds)
	}

	// Allocate the smaller Dense; rejects n==1.
	sub, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, err
	}

	// Copy every surviving cell, preserving relative order.
	var si, sj int // destination indices
	var v float64
	for i := 0; i < n; i++ {
		if i == di {
			continue // skip the deleted row
		}
		sj = 0
		for j := 0; j < n; j++ {
			if j == dj {
				continue // skip the deleted column
			}
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			sub.data[si*(n-1)+sj] = v
			sj++
		}
		si++
	}

	return sub, nil
}
