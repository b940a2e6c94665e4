package cumulative

import "errors"

var (
	// ErrNilRaster indicates that a nil energy raster was passed.
	ErrNilRaster = errors.New("cumulative: energy raster is nil")

	// ErrFullMatrixRequired indicates that the full cost map was requested
	// under a memory mode that does not retain it.
	ErrFullMatrixRequired = errors.New("cumulative: full cost map requires MemoryMode=FullMatrix")

	// ErrOverflow indicates an accumulated cost that does not fit in int64.
	ErrOverflow = errors.New("cumulative: accumulated cost overflows int64")
)

// MemoryMode controls how many rows of the DP table are retained.
//
//   - FullMatrix - every row is kept and returned. Memory: O(W·H).
//   - TwoRows    - only the previous and current rows. Memory: O(W).
//     Only the final row survives.
type MemoryMode int

const (
	// FullMatrix keeps the entire cost map.
	FullMatrix MemoryMode = iota

	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures the accumulator.
//
// Fields:
//   - MemoryMode - FullMatrix (default) or TwoRows.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns Options{MemoryMode: FullMatrix}.
func DefaultOptions() *Options {
	return &Options{MemoryMode: FullMatrix}
}
