package kernels

// LogicalImage is a boolean image addressed as im[row][col].
type LogicalImage [][]bool

// IntMatrix is a signed integer matrix addressed as m[row][col].
type IntMatrix [][]int

// UintMatrix is an unsigned integer matrix addressed as m[row][col].
type UintMatrix [][]uint

// Table is a column-oriented tabular structure: Names[i] labels Columns[i].
// All columns share one length.
type Table struct {
	Names   []string
	Columns [][]float64
}

// Operation names, in declaration order.
const (
	OpFillFromEdge   = "fill_from_edge"
	OpFloodFill      = "flood_fill"
	OpCountNeighbors = "count_neighbors"
	OpFindThreads    = "find_threads"
	OpSortMat        = "sort_mat"
	OpPrintMat       = "print_mat"
	OpNearestPoints  = "nearest_pts"
	OpIntegerMode    = "integer_mode"
	OpNNImpute       = "nn_impute"
	OpMatToTable     = "mat2df"
	OpTableToMat     = "df2mat"
)
