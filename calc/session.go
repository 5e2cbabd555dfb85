// SPDX-License-Identifier: MIT

package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlmat/matrix"
)

// Menu and prompt text. The calculator is line-oriented but tolerant:
// tokens are read word by word, so dimensions and rows may be split across
// lines any way the user likes.
const (
	menuText = `1. Add matrices
2. Multiply matrix by a constant
3. Multiply matrices
4. Transpose matrix
5. Calculate a determinant
6. Inverse matrix
0. Exit`

	transposeMenuText = `1. Main diagonal
2. Side diagonal
3. Vertical line
4. Horizontal line`

	promptChoice = "Your choice: "
	resultBanner = "The result is:"

	msgCannotPerform = "The operation cannot be performed."
	msgNoInverse     = "This matrix doesn't have an inverse."
)

// errBadInput marks malformed numeric input; the loop reports the generic
// failure line and continues thereafter.
var errBadInput = errors.New("calc: malformed input")

// Session drives one interactive calculator conversation over a token
// stream. It owns no resources beyond the scanner; construct with
// NewSession and call Run.
type Session struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewSession wraps a reader/writer pair into a Session. The reader is
// tokenized on whitespace.
func NewSession(r io.Reader, w io.Writer) *Session {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Session{sc: sc, out: w}
}

// Run loops the menu until the user picks 0 or the input ends.
// Operation failures are displayed and swallowed; only I/O breakage
// (scanner errors) propagates.
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.out, menuText)
		fmt.Fprint(s.out, promptChoice)

		choice, err := s.nextToken()
		if errors.Is(err, io.EOF) {
			return nil // input exhausted, treat as exit
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			return nil
		}

		if err = s.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fmt.Fprintln(s.out) // blank line between interactions
	}
}

// dispatch runs one menu entry. Core and parse failures are rendered and
// absorbed; unknown choices fall through silently to the next menu print.
func (s *Session) dispatch(choice string) error {
	var err error
	switch choice {
	case "1":
		err = s.runAdd()
	case "2":
		err = s.runScale()
	case "3":
		err = s.runMul()
	case "4":
		err = s.runTranspose()
	case "5":
		err = s.runDeterminant()
	case "6":
		err = s.runInverse()
	default:
		return nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		return err
	}

	// Uniform display policy: singular inverse has dedicated wording,
	// everything else collapses to the generic line.
	if errors.Is(err, matrix.ErrSingular) {
		fmt.Fprintln(s.out, msgNoInverse)
	} else {
		fmt.Fprintln(s.out, msgCannotPerform)
	}

	return nil
}

// runAdd reads two matrices and prints their sum.
func (s *Session) runAdd() error {
	a, err := s.readMatrix("first ")
	if err != nil {
		return err
	}
	b, err := s.readMatrix("second ")
	if err != nil {
		return err
	}

	sum, err := matrix.Add(a, b)
	if err != nil {
		return err
	}

	return s.printMatrix(sum)
}

// runScale reads a matrix and a constant and prints the scaled matrix.
func (s *Session) runScale() error {
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, "Enter constant: ")
	c, err := s.readFloat()
	if err != nil {
		return err
	}

	scaled, err := matrix.Scale(m, c)
	if err != nil {
		return err
	}

	return s.printMatrix(scaled)
}

// runMul reads two matrices and prints their product.
func (s *Session) runMul() error {
	a, err := s.readMatrix("first ")
	if err != nil {
		return err
	}
	b, err := s.readMatrix("second ")
	if err != nil {
		return err
	}

	prod, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}

	return s.printMatrix(prod)
}

// runTranspose shows the variant submenu, reads a matrix and prints the
// selected reflection.
func (s *Session) runTranspose() error {
	fmt.Fprintln(s.out, transposeMenuText)
	fmt.Fprint(s.out, promptChoice)

	variant, err := s.nextToken()
	if err != nil {
		return err
	}

	m, err := s.readMatrix("")
	if err != nil {
		return err
	}

	var res matrix.Matrix
	switch variant {
	case "1":
		res, err = matrix.Transpose(m)
	case "2":
		res, err = matrix.TransposeSide(m)
	case "3":
		res, err = matrix.TransposeVertical(m)
	case "4":
		res, err = matrix.TransposeHorizontal(m)
	default:
		return errBadInput
	}
	if err != nil {
		return err
	}

	return s.printMatrix(res)
}

// runDeterminant reads a matrix and prints its determinant as a scalar.
func (s *Session) runDeterminant() error {
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}

	d, err := matrix.Det(m)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, resultBanner)
	fmt.Fprintln(s.out, matrix.FormatValue(d))

	return nil
}

// runInverse reads a matrix and prints its inverse.
func (s *Session) runInverse() error {
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}

	inv, err := matrix.Inverse(m)
	if err != nil {
		return err
	}

	return s.printMatrix(inv)
}

// readMatrix prompts for dimensions and rows and builds a Dense.
// ordinal is "first ", "second " or "" and only affects the prompt text.
func (s *Session) readMatrix(ordinal string) (*matrix.Dense, error) {
	fmt.Fprintf(s.out, "Enter size of %smatrix: ", ordinal)
	rows, err := s.readInt()
	if err != nil {
		return nil, err
	}
	cols, err := s.readInt()
	if err != nil {
		return nil, err
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.out, "Enter %smatrix:\n", ordinal)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if row[j], err = s.readFloat(); err != nil {
				return nil, err
			}
		}
		if err = m.SetRow(i, row); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// printMatrix renders a result under the banner.
func (s *Session) printMatrix(m matrix.Matrix) error {
	text, err := matrix.Format(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, resultBanner)
	fmt.Fprintln(s.out, text)

	return nil
}

// nextToken returns the next whitespace-separated token, io.EOF when the
// stream ends, or the scanner's underlying error.
func (s *Session) nextToken() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return s.sc.Text(), nil
}

// readInt parses the next token as a base-10 int.
func (s *Session) readInt() (int, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadInput, tok)
	}

	return n, nil
}

// readFloat parses the next token as a float64.
func (s *Session) readFloat() (float64, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadInput, tok)
	}

	return v, nil
}
