// Package ggbrain is the Go home of the ggbrain native helper layer: the
// matrix and image routines a neuroimaging visualization front end calls
// across its host boundary.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  — row-major Dense matrices; accepts any gonum mat.Matrix
//	printer/ — labelled, delimiter-framed matrix print for debugging
//	kernels/ — the capability set of declared native entry points
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	_ = printer.Print(m)
//
// prints
//
//	--------
//	 0: 1 2 3
//	 1: 4 5 6
//	--------
//
// (each value is followed by one space). The cmd/printmat tool prints
// matrices read from delimited text files.
package ggbrain
