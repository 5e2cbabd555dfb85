// SPDX-License-Identifier: MIT
// Package matrix: the calculator-facing text rendering. Distinct from
// Dense.String (a bracketed debug form): Format emits bare space-separated
// cells, the sole externally observable representation.

package matrix

import (
	"strconv"
	"strings"
)

// formatPrecision is the maximum number of decimal places rendered.
const formatPrecision = 2

// FormatValue renders a single float to at most two decimal places with
// trailing zeros and a dangling decimal point stripped: 3.0 → "3",
// 3.5 → "3.5", 3.14159 → "3.14". A negative zero normalizes to "0".
// Complexity: O(1).
func FormatValue(v float64) string {
	// Fixed-point with two decimals, then strip the noise.
	s := strconv.FormatFloat(v, 'f', formatPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	// Values rounding to zero must not render a stray sign.
	if s == "-0" {
		s = "0"
	}

	return s
}

// Format renders the matrix as newline-separated rows of space-separated
// cells, each cell formatted per FormatValue.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity: O(r*c).
func Format(m Matrix) (string, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return "", err
	}

	rows, cols := m.Rows(), m.Cols()
	var sb strings.Builder
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return "", err
			}
			if j > 0 {
				sb.WriteByte(' ') // single space between cells
			}
			sb.WriteString(FormatValue(v))
		}
		if i < rows-1 {
			sb.WriteByte('\n') // newline between rows, none trailing
		}
	}

	return sb.String(), nil
}
