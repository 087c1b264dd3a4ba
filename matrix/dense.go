// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Unlike *mat.Dense, zero rows or zero columns are a valid shape.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// compile-time check
var _ mat.Matrix = (*Dense)(nil)

// NewDense creates an rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): dimensions non-negative and rows*cols representable.
// Stage 2 (Prepare): allocate flat backing slice.
// Returns ErrBadShape on a negative or overflowing shape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewDense", err)
	}

	// Allocate zeroed storage
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an rows×cols Dense matrix that adopts data as its
// row-major backing slice. The slice is not copied.
// Stage 1 (Validate): shape via validateShape, then len(data) == rows*cols.
// Stage 2 (Finalize): wrap data; nil data becomes an empty slice.
// Returns ErrBadShape on a negative or overflowing shape and
// ErrDimensionMismatch when len(data) != rows*cols.
// Complexity: O(1).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	// Validate shape before multiplying
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewDenseFrom", err)
	}
	// Backing slice must cover the shape exactly
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	if data == nil {
		data = []float64{}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// validateShape rejects negative dimensions and shapes whose element count
// rows*cols does not fit in an int.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	// rows*cols must not wrap
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrBadShape
	}

	return nil
}

// Dims returns the number of rows and columns.
// Complexity: O(1).
func (m *Dense) Dims() (r, c int) {
	return m.r, m.c
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col). It panics with an error wrapping
// ErrOutOfRange when the index is invalid, matching the mat.Matrix contract.
// Use Get for an error-returning read.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) float64 {
	// Compute flat index or panic with the wrapped sentinel
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		panic(err)
	}

	return m.data[idx]
}

// Get returns the element at (row, col) or an error wrapping ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Get(row, col int) (float64, error) {
	idx, err := m.indexOf("Get", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) or returns an error wrapping ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// T returns the transpose view of m. The view shares storage with m.
func (m *Dense) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// RawRowView returns the backing slice of row i. Writes through the
// returned slice modify m. Panics with ErrOutOfRange for an invalid row.
func (m *Dense) RawRowView(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf("RawRowView", i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	// Allocate and copy the flat storage
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for quick inspection: one bracketed,
// comma-separated line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
