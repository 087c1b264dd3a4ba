// SPDX-License-Identifier: MIT

// Package matrix holds the numeric matrix data model shared by the ggbrain
// helpers.
//
// What:
//
//   - Matrix is gonum's mat.Matrix: Dims, At and T. Any gonum matrix can be
//     handed to the printer and the kernels without conversion.
//   - Dense is a row-major, flat-backed implementation that also permits the
//     empty shapes (0×C, R×0, 0×0) gonum refuses to allocate.
//   - FromRows / FromMatrix / ToRows / ToGonum move data in and out.
//
// Errors:
//
//   - ErrBadShape: negative dimension requested.
//   - ErrDimensionMismatch: backing slice length differs from rows*cols.
//   - ErrNonRectangular: jagged [][]float64 input.
//   - ErrOutOfRange: row or column index outside the matrix.
//   - ErrNilMatrix: nil matrix passed where one is required.
//
// Complexity:
//
//   - Dims, At, Get, Set: O(1).
//   - Clone, FromRows, FromMatrix, ToRows, ToGonum: O(R×C) time and memory.
package matrix
