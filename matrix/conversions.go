// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// FromRows builds a Dense from a row-major [][]float64, deep-copying every row.
// A nil or empty outer slice yields a 0×0 matrix; rows of equal length zero
// yield an R×0 matrix. Returns ErrNonRectangular for jagged input.
// Complexity: O(R×C) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// FromMatrix deep-copies any gonum matrix into a Dense.
// Returns ErrNilMatrix if m is nil.
// Complexity: O(R×C) time and memory.
func FromMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("FromMatrix", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone(), nil
	}
	r, c := m.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out, nil
}

// ToRows returns a deep copy of m as [][]float64, one slice per row.
// Complexity: O(R×C).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToGonum returns a *mat.Dense holding a copy of m's values.
// gonum cannot represent zero-length dimensions, so an empty m yields nil.
// Complexity: O(R×C).
func (m *Dense) ToGonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}
