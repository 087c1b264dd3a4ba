// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One place for the guards shared by constructors, the printer and kernels.
//   - Validators return plain sentinels wrapped with their own tag so call
//     sites can wrap once more uniformly.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is usable. A nil interface and typed nil *Dense or
// *mat.Dense pointers are rejected with ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	switch v := m.(type) {
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *mat.Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateRectangular ensures every row of rows has the length of the first.
// An empty outer slice is rectangular.
// Complexity: O(R).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 {
		return nil
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrNonRectangular)
		}
	}

	return nil
}
