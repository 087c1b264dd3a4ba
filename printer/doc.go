// SPDX-License-Identifier: MIT

// Package printer renders a numeric matrix as plain text for human inspection
// during development.
//
// Layout (default options):
//
//	--------
//	 0: 1 2 3
//	 1: 4 5 6
//	--------
//
// Each row line is a space, the zero-based row index, a colon and a space,
// followed by every value in column order, each trailed by one space. An
// empty matrix prints only the two delimiter lines; a matrix without columns
// prints bare row labels.
//
// Values use %g-style formatting with six significant digits (1, 0.5,
// 1e+06) and print NaN and infinities as nan (-nan with the sign bit set),
// inf and -inf.
//
// The sink is injected: Fprint writes to any io.Writer, Print targets
// os.Stdout and Sprint returns the rendering as a string. Nothing is retained
// between calls, so printing the same matrix twice produces identical bytes.
package printer
