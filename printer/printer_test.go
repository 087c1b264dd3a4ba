package printer_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/ggbrain/matrix"
	"github.com/katalvlaran/ggbrain/printer"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// quiet keeps debug entries out of test output.
func quiet() printer.Option {
	l, _ := test.NewNullLogger()
	return printer.WithLogger(l)
}

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// lines splits output on '\n', dropping the empty tail after the final newline.
func lines(t *testing.T, out string) []string {
	t.Helper()
	require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

// TestFprint_TwoByThree checks the canonical 2×3 rendering byte for byte.
func TestFprint_TwoByThree(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	var sb strings.Builder
	require.NoError(t, printer.Fprint(&sb, m, quiet()))

	want := "--------\n" +
		" 0: 1 2 3 \n" +
		" 1: 4 5 6 \n" +
		"--------\n"
	require.Equal(t, want, sb.String())
}

// TestFprint_LineStructure checks R+2 lines, ordered labels and C tokens per row
// across a range of shapes.
func TestFprint_LineStructure(t *testing.T) {
	shapes := []struct{ r, c int }{{0, 0}, {0, 4}, {1, 1}, {3, 0}, {4, 7}, {12, 2}}
	for _, s := range shapes {
		m, err := matrix.NewDense(s.r, s.c)
		require.NoError(t, err)
		for i := 0; i < s.r; i++ {
			for j := 0; j < s.c; j++ {
				require.NoError(t, m.Set(i, j, float64(i*s.c+j)+0.25))
			}
		}

		ls := lines(t, printer.Sprint(m, quiet()))
		require.Len(t, ls, s.r+2, "shape %dx%d", s.r, s.c)
		require.Equal(t, printer.DefaultDelimiter, ls[0])
		require.Equal(t, ls[0], ls[len(ls)-1])

		for i, l := range ls[1 : len(ls)-1] {
			label := " " + strconv.Itoa(i) + ": "
			require.True(t, strings.HasPrefix(l, label), "line %q lacks label %q", l, label)
			tokens := strings.Fields(strings.TrimPrefix(l, label))
			require.Len(t, tokens, s.c)
			for j, tok := range tokens {
				require.Equal(t, printer.FormatValue(m.At(i, j), printer.DefaultPrecision), tok)
			}
		}
	}
}

// TestFprint_EmptyRows ensures R = 0 prints only the two delimiter lines.
func TestFprint_EmptyRows(t *testing.T) {
	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, "--------\n--------\n", printer.Sprint(m, quiet()))
}

// TestFprint_EmptyCols ensures C = 0 prints bare row labels.
func TestFprint_EmptyCols(t *testing.T) {
	m, err := matrix.NewDense(2, 0)
	require.NoError(t, err)
	require.Equal(t, "--------\n 0: \n 1: \n--------\n", printer.Sprint(m, quiet()))
}

// TestFprint_Idempotent prints twice and compares bytes; the matrix is untouched.
func TestFprint_Idempotent(t *testing.T) {
	m := mustRows(t, [][]float64{{0.1, -2, 3e9}, {math.NaN(), 5, math.Inf(-1)}})
	before := m.Clone()

	first := printer.Sprint(m, quiet())
	second := printer.Sprint(m, quiet())
	require.Equal(t, first, second)
	require.Equal(t, before.String(), m.String())
}

// TestFprint_ValueFormatting covers %g-style digits and non-finite values.
func TestFprint_ValueFormatting(t *testing.T) {
	m := mustRows(t, [][]float64{{0.5, 1e6, 123456, 1234567, 1.5e-7, -0.25, math.NaN(), math.Inf(1), math.Inf(-1), 1.0 / 3}})
	ls := lines(t, printer.Sprint(m, quiet()))
	require.Equal(t, " 0: 0.5 1e+06 123456 1.23457e+06 1.5e-07 -0.25 nan inf -inf 0.333333 ", ls[1])
}

// TestFprint_NegativeNaN prints a sign-bit NaN the way glibc streams do.
func TestFprint_NegativeNaN(t *testing.T) {
	m := mustRows(t, [][]float64{{math.Copysign(math.NaN(), -1), math.NaN()}})
	require.Equal(t, "--------\n 0: -nan nan \n--------\n", printer.Sprint(m, quiet()))
}

// TestFprint_Options exercises delimiter and precision overrides.
func TestFprint_Options(t *testing.T) {
	m := mustRows(t, [][]float64{{math.Pi}})
	out := printer.Sprint(m, quiet(), printer.WithDelimiter("==="), printer.WithPrecision(3))
	require.Equal(t, "===\n 0: 3.14 \n===\n", out)
}

// TestFprint_GonumInput accepts gonum matrices and views directly.
func TestFprint_GonumInput(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.Equal(t, "--------\n 0: 1 3 \n 1: 2 4 \n--------\n", printer.Sprint(g.T(), quiet()))
}

// TestFprint_NilMatrix rejects nil input.
func TestFprint_NilMatrix(t *testing.T) {
	var sb strings.Builder
	err := printer.Fprint(&sb, nil, quiet())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Empty(t, sb.String())
	require.Empty(t, printer.Sprint(nil, quiet()))
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

// TestFprint_WriteError surfaces the sink's error.
func TestFprint_WriteError(t *testing.T) {
	sinkErr := errors.New("disk full")
	m := mustRows(t, [][]float64{{1}})
	err := printer.Fprint(failingWriter{err: sinkErr}, m, quiet())
	require.ErrorIs(t, err, sinkErr)
}

// TestFprint_DebugLog records the shape at debug level.
func TestFprint_DebugLog(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, printer.Fprint(&strings.Builder{}, m, printer.WithLogger(l)))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.DebugLevel, entry.Level)
	require.Equal(t, 2, entry.Data["rows"])
	require.Equal(t, 3, entry.Data["cols"])
}
