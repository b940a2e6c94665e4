package energy

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seamcarve/raster"
)

// Compute returns the energy raster of img. The result has img's shape and
// every value is >= 0 when img holds non-negative samples.
//
// Rows are independent, so with WithWorkers(n>1) they are filled by up to n
// goroutines; each goroutine writes a disjoint row of the output.
//
// Errors:
//   - ErrNilRaster if img is nil.
//   - ErrOverflow if a difference or sum does not fit in int64.
//
// Complexity: O(W·H) time, O(W·H) memory.
func Compute(img *raster.Raster, opts ...Option) (*raster.Raster, error) {
	if img == nil {
		return nil, ErrNilRaster
	}
	o := gatherOptions(opts...)

	out, err := raster.New(img.Width(), img.Height())
	if err != nil {
		return nil, fmt.Errorf("energy: %w", err)
	}

	fill := func(row int) error {
		dst := out.RowView(row)
		for col := range dst {
			v, err := pixel(img, row, col)
			if err != nil {
				return err
			}
			dst[col] = v
		}

		return nil
	}

	if o.workers == 1 || img.Height() == 1 {
		for row := 0; row < img.Height(); row++ {
			if err = fill(row); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for row := 0; row < img.Height(); row++ {
		row := row
		g.Go(func() error {
			return fill(row)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Pixel returns the energy of the single cell (row, col).
// Returns ErrNilRaster, a wrapped raster.ErrOutOfRange or ErrOverflow.
func Pixel(img *raster.Raster, row, col int) (int64, error) {
	if img == nil {
		return 0, ErrNilRaster
	}
	if !img.InBounds(row, col) {
		return 0, fmt.Errorf("energy: Pixel(%d,%d): %w", row, col, raster.ErrOutOfRange)
	}

	return pixel(img, row, col)
}

// pixel sums |I(row,col) − I(n)| over the in-bounds 4-neighbours n.
func pixel(img *raster.Raster, row, col int) (int64, error) {
	v := img.RowView(row)[col]
	var e int64
	for _, d := range raster.Conn4Offsets {
		nr, nc := row+d[0], col+d[1]
		if !img.InBounds(nr, nc) {
			continue
		}
		diff, ok := absDiff(v, img.RowView(nr)[nc])
		if !ok || e > math.MaxInt64-diff {
			return 0, fmt.Errorf("energy: Pixel(%d,%d): %w", row, col, ErrOverflow)
		}
		e += diff
	}

	return e, nil
}

// absDiff returns |a − b| and false when it does not fit in int64.
func absDiff(a, b int64) (int64, bool) {
	if a < b {
		a, b = b, a
	}
	if b < 0 && a > math.MaxInt64+b {
		return 0, false
	}

	return a - b, true
}
