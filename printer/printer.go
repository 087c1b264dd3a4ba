// SPDX-License-Identifier: MIT

package printer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/ggbrain/matrix"
	"github.com/sirupsen/logrus"
)

// printerErrorf tags err with the public entry point that produced it.
func printerErrorf(tag string, err error) error {
	return fmt.Errorf("printer.%s: %w", tag, err)
}

// Fprint writes m to w: an opening delimiter line, one labelled line per
// row, and a closing delimiter line identical to the opening one.
//
// Behavior:
//  1. Validate m (ErrNilMatrix on nil).
//  2. Stream every line through a buffered writer; m is only read.
//  3. Flush and report the first write error, if any.
//
// R rows always produce exactly R+2 lines.
// Complexity: O(R×C) time, O(C) memory for the line buffer.
func Fprint(w io.Writer, m matrix.Matrix, opts ...Option) error {
	// Validate input matrix
	if err := matrix.ValidateNotNil(m); err != nil {
		return printerErrorf("Fprint", err)
	}
	// Resolve options over defaults
	o := gatherOptions(opts...)
	rows, cols := m.Dims()
	o.logger.WithFields(logrus.Fields{
		"rows": rows,
		"cols": cols,
	}).Debug("printing matrix")

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 16+cols*(o.precision+8))

	// Opening delimiter
	line = append(append(line[:0], o.delimiter...), '\n')
	_, _ = bw.Write(line)
	for r := 0; r < rows; r++ { // one labelled line per row
		line = append(line[:0], ' ')
		line = strconv.AppendInt(line, int64(r), 10)
		line = append(line, ':', ' ')
		for c := 0; c < cols; c++ { // values in column order, each trailed by a space
			line = appendValue(line, m.At(r, c), o.precision)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		_, _ = bw.Write(line)
	}
	// Closing delimiter, identical to the opening one
	line = append(append(line[:0], o.delimiter...), '\n')
	_, _ = bw.Write(line)

	// bufio.Writer latches the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return printerErrorf("Fprint", err)
	}

	return nil
}

// Print writes m to standard output. See Fprint.
func Print(m matrix.Matrix, opts ...Option) error {
	return Fprint(os.Stdout, m, opts...)
}

// Sprint returns the rendering of m as a string. A nil matrix yields "".
func Sprint(m matrix.Matrix, opts ...Option) string {
	var buf bytes.Buffer
	if err := Fprint(&buf, m, opts...); err != nil {
		return ""
	}

	return buf.String()
}
