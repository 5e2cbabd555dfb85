// Package matrix provides a dense, row-major float64 matrix value type and
// the algebra a small interactive calculator needs.
//
// The matrix package provides:
//
//   - Dense, a rectangular float64 container with bounds-checked element,
//     row and column access.
//   - Element-wise addition, scalar scaling, and matrix multiplication built
//     on a shared dot-product primitive.
//   - Four square-only transpose variants: main diagonal, side diagonal,
//     vertical line, horizontal line.
//   - Laplace (cofactor-expansion) determinant, matrix of minors, matrix of
//     cofactors, and the adjugate inverse composed from them.
//   - A canonical text rendering (Format) with at most two decimal places
//     and trailing zeros stripped.
//
// Every operation allocates a fresh result; operands are never mutated.
// All failure modes are package-level sentinels (errors.go) matched with
// errors.Is. Cost of the determinant is factorial in the matrix order — the
// package targets small matrices by design.
package matrix
