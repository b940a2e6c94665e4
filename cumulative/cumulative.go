package cumulative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seamcarve/raster"
)

// Accumulate returns the cumulative minimum-cost map of e.
//
// Row 0 is a copy of e's row 0; each later cell adds its own energy to the
// cheapest present predecessor in the row above. The result has e's shape.
// A nil opts means DefaultOptions().
//
// Errors:
//   - ErrNilRaster if e is nil.
//   - ErrFullMatrixRequired if opts.MemoryMode is TwoRows.
//   - ErrOverflow if a cost does not fit in int64.
//
// Complexity: O(W·H) time, O(W·H) memory.
func Accumulate(e *raster.Raster, opts *Options) (*raster.Raster, error) {
	if e == nil {
		return nil, ErrNilRaster
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MemoryMode != FullMatrix {
		return nil, ErrFullMatrixRequired
	}

	out, err := raster.New(e.Width(), e.Height())
	if err != nil {
		return nil, fmt.Errorf("cumulative: %w", err)
	}
	copy(out.RowView(0), e.RowView(0))
	for r := 1; r < e.Height(); r++ {
		if err = accumulateRow(out.RowView(r-1), e.RowView(r), out.RowView(r)); err != nil {
			return nil, fmt.Errorf("cumulative: row %d: %w", r, err)
		}
	}

	return out, nil
}

// LastRow returns the bottom row of the cost map while holding only two rows
// in memory. It equals the final row of Accumulate(e, nil).
//
// Errors: ErrNilRaster, ErrOverflow.
//
// Complexity: O(W·H) time, O(W) memory.
func LastRow(e *raster.Raster) ([]int64, error) {
	if e == nil {
		return nil, ErrNilRaster
	}
	prev := make([]int64, e.Width())
	curr := make([]int64, e.Width())
	copy(prev, e.RowView(0))
	for r := 1; r < e.Height(); r++ {
		if err := accumulateRow(prev, e.RowView(r), curr); err != nil {
			return nil, fmt.Errorf("cumulative: row %d: %w", r, err)
		}
		prev, curr = curr, prev
	}

	return prev, nil
}

// accumulateRow fills dst[c] = energy[c] + min present predecessor in above.
func accumulateRow(above, energy, dst []int64) error {
	for c := range dst {
		best := above[c]
		if v, ok := predecessor(above, c-1); ok && v < best {
			best = v
		}
		if v, ok := predecessor(above, c+1); ok && v < best {
			best = v
		}
		if energy[c] > 0 && best > math.MaxInt64-energy[c] {
			return fmt.Errorf("column %d: %w", c, ErrOverflow)
		}
		dst[c] = energy[c] + best
	}

	return nil
}

// predecessor returns above[c] and true, or false when c is outside the row.
func predecessor(above []int64, c int) (int64, bool) {
	if c < 0 || c >= len(above) {
		return 0, false
	}

	return above[c], true
}
