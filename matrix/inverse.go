// SPDX-License-Identifier: MIT
// Package matrix: adjugate (cofactor-matrix) inverse. Intentionally the
// naive method — no LU, no pivoting — matching the determinant machinery
// this package is built around.

package matrix

// Inverse computes m⁻¹ via the adjugate:
//
//	inverse = Transpose(Cofactors(Minors(m))) · (1/det)
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); compute Det(m), reject 0 as singular.
//   - Stage 2: matrix of minors → checkerboard signs (the classical cofactor
//     matrix, see determinant.go note) → main-diagonal transpose (adjugate).
//   - Stage 3: Scale the adjugate by 1/det.
//
// Behavior highlights:
//   - Singularity is an exact comparison (det == 0), not an epsilon test:
//     near-singular input inverts with whatever precision the determinant
//     left available.
//   - Each stage allocates a fresh Dense; m is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation, wrapped with opInverse).
//   - ErrSingular               (det == 0).
//   - ErrInvalidDimensions      (1×1 input — see Minors).
//
// Complexity:
//   - Time O(n² · (n-1)!) dominated by the matrix of minors.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Compute the determinant first; a zero determinant means no inverse.
	d, err := Det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Matrix of minors.
	minors, err := Minors(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Checkerboard signs applied to the minors → classical cofactor matrix.
	cof, err := Cofactors(minors)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Main-diagonal transpose → adjugate.
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Scale by the reciprocal determinant.
	inv, err := Scale(adj, 1/d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
