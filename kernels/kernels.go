package kernels

import (
	"fmt"
	"io"

	"github.com/katalvlaran/ggbrain/matrix"
	"github.com/katalvlaran/ggbrain/printer"
)

// Kernels is the capability set of native entry points.
type Kernels interface {
	// FillFromEdge fills the region reachable from (x, y) and returns a new image.
	FillFromEdge(im LogicalImage, x, y int) (LogicalImage, error)
	// FloodFill fills im in place starting at (x, y).
	FloodFill(im LogicalImage, x, y, region, count int) error
	// CountNeighbors counts matching adjacent cells, optionally with diagonals.
	CountNeighbors(im UintMatrix, diagonal bool) (IntMatrix, error)
	// FindThreads flags thin filament-like structures in img.
	FindThreads(img matrix.Matrix, minNeighbors, maxIter int, diagonal bool) (LogicalImage, error)
	// SortMat returns x with its rows ordered by column col.
	SortMat(x matrix.Matrix, col int) (*matrix.Dense, error)
	// PrintMat writes m to the output sink.
	PrintMat(m matrix.Matrix) error
	// NearestPoints searches in for the neighbors of (x, y) within radius.
	NearestPoints(x, y int, in matrix.Matrix, neighbors, radius int, ignoreZeros bool) ([]float64, error)
	// IntegerMode returns the most frequent value of v.
	IntegerMode(v []int, demoteZeros bool) (int, error)
	// NNImpute fills missing cells of in from nearby known cells using aggFun.
	NNImpute(in matrix.Matrix, neighbors, radius int, aggFun string, ignoreZeros bool) (*matrix.Dense, error)
	// MatToTable converts m to a table, optionally mapping NA to zero.
	MatToTable(m matrix.Matrix, naZeros bool) (Table, error)
	// TableToMat converts t to a matrix; a nil replaceNA leaves NA cells as is.
	TableToMat(t Table, replaceNA []float64) (*matrix.Dense, error)
}

// compile-time check
var _ Kernels = (*Native)(nil)

// Native implements Kernels. It is safe to share across goroutines only if
// the injected sink is.
type Native struct {
	out  io.Writer
	opts []printer.Option
}

// New returns a Native writing PrintMat output to w with the given printer
// options. Returns ErrNilSink if w is nil.
func New(w io.Writer, opts ...printer.Option) (*Native, error) {
	if w == nil {
		return nil, fmt.Errorf("New: %w", ErrNilSink)
	}
	o := make([]printer.Option, len(opts))
	copy(o, opts)

	return &Native{out: w, opts: o}, nil
}

// Operations returns the declared operation names in declaration order.
func Operations() []string {
	return []string{
		OpFillFromEdge, OpFloodFill, OpCountNeighbors, OpFindThreads,
		OpSortMat, OpPrintMat, OpNearestPoints, OpIntegerMode,
		OpNNImpute, OpMatToTable, OpTableToMat,
	}
}

// Implemented reports whether Native serves the named operation.
func Implemented(op string) bool {
	return op == OpPrintMat
}

// PrintMat writes m to the sink given to New. See printer.Fprint.
func (n *Native) PrintMat(m matrix.Matrix) error {
	if err := printer.Fprint(n.out, m, n.opts...); err != nil {
		return fmt.Errorf("%s: %w", OpPrintMat, err)
	}

	return nil
}

func (n *Native) FillFromEdge(LogicalImage, int, int) (LogicalImage, error) {
	return nil, notImplemented(OpFillFromEdge)
}

func (n *Native) FloodFill(LogicalImage, int, int, int, int) error {
	return notImplemented(OpFloodFill)
}

func (n *Native) CountNeighbors(UintMatrix, bool) (IntMatrix, error) {
	return nil, notImplemented(OpCountNeighbors)
}

func (n *Native) FindThreads(matrix.Matrix, int, int, bool) (LogicalImage, error) {
	return nil, notImplemented(OpFindThreads)
}

func (n *Native) SortMat(matrix.Matrix, int) (*matrix.Dense, error) {
	return nil, notImplemented(OpSortMat)
}

func (n *Native) NearestPoints(int, int, matrix.Matrix, int, int, bool) ([]float64, error) {
	return nil, notImplemented(OpNearestPoints)
}

func (n *Native) IntegerMode([]int, bool) (int, error) {
	return 0, notImplemented(OpIntegerMode)
}

func (n *Native) NNImpute(matrix.Matrix, int, int, string, bool) (*matrix.Dense, error) {
	return nil, notImplemented(OpNNImpute)
}

func (n *Native) MatToTable(matrix.Matrix, bool) (Table, error) {
	return Table{}, notImplemented(OpMatToTable)
}

func (n *Native) TableToMat(Table, []float64) (*matrix.Dense, error) {
	return nil, notImplemented(OpTableToMat)
}
