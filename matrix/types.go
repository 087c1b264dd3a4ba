// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Matrix is a read-only two-dimensional view of float64 values addressed by
// zero-based (row, column). It is the gonum interface, so *mat.Dense,
// mat.Transpose and friends satisfy it directly.
//
// Contract (inherited from gonum):
//   - Dims returns (rows, cols); both may be zero.
//   - At panics when (i, j) lies outside Dims.
type Matrix = mat.Matrix

