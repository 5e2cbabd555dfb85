// Package lvlmat is a small interactive calculator for dense numeric
// matrices: addition, scalar and matrix multiplication, four transpose
// variants, the Laplace (cofactor-expansion) determinant, and the adjugate
// inverse.
//
// Everything is organized under two subpackages plus one command:
//
//	matrix/     — the Dense value type and all algebraic kernels
//	calc/       — the interactive menu loop (thin console glue)
//	cmd/lvlmat/ — the executable wiring calc to stdin/stdout
//
// The matrix package is the core: a rectangular float64 grid with
// fail-fast validation, sentinel errors matched via errors.Is, and
// fresh-result semantics (operands are never mutated). The calculator
// deliberately uses the naive cofactor method for determinant and inverse —
// factorial cost, small matrices only.
package lvlmat
