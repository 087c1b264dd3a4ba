package kernels_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ggbrain/kernels"
	"github.com/katalvlaran/ggbrain/matrix"
	"github.com/katalvlaran/ggbrain/printer"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newNative(t *testing.T, sb *strings.Builder) *kernels.Native {
	t.Helper()
	l, _ := test.NewNullLogger()
	n, err := kernels.New(sb, printer.WithLogger(l))
	require.NoError(t, err)
	return n
}

func TestNew_NilSink(t *testing.T) {
	_, err := kernels.New(nil)
	require.ErrorIs(t, err, kernels.ErrNilSink)
}

func TestPrintMat_WritesToSink(t *testing.T) {
	var sb strings.Builder
	n := newNative(t, &sb)

	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.NoError(t, n.PrintMat(m))
	require.Equal(t, "--------\n 0: 1 2 3 \n 1: 4 5 6 \n--------\n", sb.String())
}

func TestPrintMat_Nil(t *testing.T) {
	var sb strings.Builder
	n := newNative(t, &sb)
	err := n.PrintMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Contains(t, err.Error(), kernels.OpPrintMat)
}

// TestDeclaredOnly verifies every unimplemented entry point reports
// ErrNotImplemented tagged with its operation name and leaves inputs intact.
func TestDeclaredOnly(t *testing.T) {
	var sb strings.Builder
	n := newNative(t, &sb)
	m, err := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	im := kernels.LogicalImage{{true, false}, {false, true}}

	calls := map[string]func() error{
		kernels.OpFillFromEdge: func() error { _, err := n.FillFromEdge(im, 0, 0); return err },
		kernels.OpFloodFill:    func() error { return n.FloodFill(im, 0, 0, 1, 0) },
		kernels.OpCountNeighbors: func() error {
			_, err := n.CountNeighbors(kernels.UintMatrix{{1, 0}, {0, 1}}, true)
			return err
		},
		kernels.OpFindThreads:   func() error { _, err := n.FindThreads(m, 2, 10, false); return err },
		kernels.OpSortMat:       func() error { _, err := n.SortMat(m, 0); return err },
		kernels.OpNearestPoints: func() error { _, err := n.NearestPoints(0, 0, m, 4, 2, true); return err },
		kernels.OpIntegerMode:   func() error { _, err := n.IntegerMode([]int{1, 1, 2}, true); return err },
		kernels.OpNNImpute:      func() error { _, err := n.NNImpute(m, 4, 2, "mean", true); return err },
		kernels.OpMatToTable:    func() error { _, err := n.MatToTable(m, false); return err },
		kernels.OpTableToMat:    func() error { _, err := n.TableToMat(kernels.Table{}, nil); return err },
	}

	for _, op := range kernels.Operations() {
		if kernels.Implemented(op) {
			continue
		}
		call, ok := calls[op]
		require.True(t, ok, "no call registered for %s", op)
		err := call()
		require.ErrorIs(t, err, kernels.ErrNotImplemented, op)
		require.Contains(t, err.Error(), op)
	}
	require.Len(t, calls, len(kernels.Operations())-1)
	require.Equal(t, kernels.LogicalImage{{true, false}, {false, true}}, im)
	require.Empty(t, sb.String())
}

func TestOperations(t *testing.T) {
	ops := kernels.Operations()
	require.Len(t, ops, 11)
	require.Equal(t, kernels.OpFillFromEdge, ops[0])
	require.Equal(t, kernels.OpTableToMat, ops[len(ops)-1])
	require.True(t, kernels.Implemented(kernels.OpPrintMat))
	require.False(t, kernels.Implemented(kernels.OpNNImpute))
	require.False(t, kernels.Implemented("unknown"))
}
