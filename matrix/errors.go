// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ". Sentinels are returned wrapped
// with a call-site tag; callers match them with errors.Is.
var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates a backing slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonRectangular indicates [][]float64 input with rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf tags err with the public entry point that produced it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an index error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
