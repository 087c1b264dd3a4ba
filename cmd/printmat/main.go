// Command printmat prints a numeric matrix read from delimited text in the
// labelled row layout used for debugging ggbrain matrices.
//
// Usage:
//
//	printmat [-delim S] [-precision N] [-v] [file]
//
// Rows are lines; values are separated by commas, or by whitespace on lines
// without a comma. Blank lines and lines starting with '#' are skipped. NA,
// NaN and empty comma-separated cells read as NaN.
// Without a file argument the matrix is read from standard input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ggbrain/matrix"
	"github.com/katalvlaran/ggbrain/printer"
	log "github.com/sirupsen/logrus"
)

var errTooManyArgs = errors.New("at most one input file may be given")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("printmat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	delim := fs.String("delim", printer.DefaultDelimiter, "delimiter line printed before and after the rows")
	precision := fs.Int("precision", printer.DefaultPrecision, fmt.Sprintf("significant digits per value (1-%d)", printer.MaxPrecision))
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: printmat [flags] [file]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger := log.New()
	logger.SetOutput(stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *delim == "" || strings.ContainsAny(*delim, "\r\n") {
		fmt.Fprintf(stderr, "invalid -delim %q\n", *delim)
		return 1
	}
	if *precision < 1 || *precision > printer.MaxPrecision {
		fmt.Fprintf(stderr, "invalid -precision %d\n", *precision)
		return 1
	}

	in, name, closeFn, err := openInput(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error opening input: %v\n", err)
		return 1
	}
	defer closeFn()

	m, err := readMatrix(in)
	if err != nil {
		fmt.Fprintf(stderr, "error reading %s: %v\n", name, err)
		return 1
	}
	rows, cols := m.Dims()
	logger.WithFields(log.Fields{
		"input": name,
		"rows":  rows,
		"cols":  cols,
	}).Debug("Read matrix")

	err = printer.Fprint(stdout, m,
		printer.WithDelimiter(*delim),
		printer.WithPrecision(*precision),
		printer.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error printing: %v\n", err)
		return 1
	}

	return 0
}

// openInput resolves the positional arguments to a reader, its display name
// and a close function.
func openInput(args []string, stdin io.Reader) (io.Reader, string, func(), error) {
	switch len(args) {
	case 0:
		return stdin, "<stdin>", func() {}, nil
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", nil, err
		}
		return f, args[0], func() { f.Close() }, nil
	default:
		return nil, "", nil, errTooManyArgs
	}
}

// readMatrix parses delimited text into a Dense. All data lines must carry
// the same number of values.
func readMatrix(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := parseValue(f)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", lineNo, i+1, err)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", lineNo, len(row), len(rows[0]), matrix.ErrNonRectangular)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return matrix.FromRows(rows)
}

// splitFields splits a data line into value tokens. Lines containing a comma
// are split on every comma, so an empty cell stays a (empty) token in its
// column; other lines are split on runs of whitespace.
func splitFields(line string) []string {
	if !strings.Contains(line, ",") {
		return strings.Fields(line)
	}
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return fields
}

// parseValue reads one numeric token; NA (any case) and an empty CSV cell
// map to NaN.
func parseValue(s string) (float64, error) {
	if s == "" || strings.EqualFold(s, "NA") {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(s, 64)
}
