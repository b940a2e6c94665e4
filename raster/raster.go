package raster

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// rasterErrorf attaches method context and coordinates to a sentinel.
func rasterErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Raster.%s(%d,%d): %w", method, row, col, err)
}

// New allocates a zero-filled width×height raster.
// Returns ErrInvalidDimensions if width <= 0 or height <= 0.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}

	return &Raster{w: width, h: height, data: make([]int64, width*height)}, nil
}

// FromRows builds a raster from a non-empty rectangular [][]int64 (rows[row][col]).
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows(rows [][]int64) (*Raster, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	r := &Raster{w: w, h: h, data: make([]int64, w*h)}
	for y := 0; y < h; y++ {
		copy(r.data[y*w:(y+1)*w], rows[y])
	}

	return r, nil
}

// Width returns the number of columns.
func (r *Raster) Width() int { return r.w }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.h }

// Len returns width*height.
func (r *Raster) Len() int { return len(r.data) }

// InBounds reports whether (row, col) lies within the raster.
// Complexity: O(1).
func (r *Raster) InBounds(row, col int) bool {
	return row >= 0 && row < r.h && col >= 0 && col < r.w
}

// Index maps (row, col) to a row-major offset: row*width + col.
// The caller is responsible for bounds; see InBounds.
func (r *Raster) Index(row, col int) int {
	return row*r.w + col
}

// Coordinate converts a row-major offset back to (row, col).
func (r *Raster) Coordinate(idx int) (row, col int) {
	return idx / r.w, idx % r.w
}

// At returns the sample at (row, col), or ErrOutOfRange.
func (r *Raster) At(row, col int) (int64, error) {
	if !r.InBounds(row, col) {
		return 0, rasterErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return r.data[r.Index(row, col)], nil
}

// Set stores v at (row, col), or returns ErrOutOfRange.
func (r *Raster) Set(row, col int, v int64) error {
	if !r.InBounds(row, col) {
		return rasterErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	r.data[r.Index(row, col)] = v

	return nil
}

// RowView returns the backing slice of one row without copying.
// It is intended for the pipeline stages that own the raster while filling
// it; callers must not retain or mutate it after hand-off.
// Panics if row is out of range (programmer error).
func (r *Raster) RowView(row int) []int64 {
	return r.data[row*r.w : (row+1)*r.w : (row+1)*r.w]
}

// Row returns a copy of one row, or ErrOutOfRange.
func (r *Raster) Row(row int) ([]int64, error) {
	if row < 0 || row >= r.h {
		return nil, rasterErrorf("Row", row, 0, ErrOutOfRange)
	}
	out := make([]int64, r.w)
	copy(out, r.RowView(row))

	return out, nil
}

// Rows returns a deep copy of the raster as rows[row][col].
func (r *Raster) Rows() [][]int64 {
	out := make([][]int64, r.h)
	for y := range out {
		out[y] = make([]int64, r.w)
		copy(out[y], r.RowView(y))
	}

	return out
}

// Values returns a copy of the flat row-major buffer.
func (r *Raster) Values() []int64 {
	out := make([]int64, len(r.data))
	copy(out, r.data)

	return out
}

// Clone returns an independent deep copy.
func (r *Raster) Clone() *Raster {
	return &Raster{w: r.w, h: r.h, data: r.Values()}
}

// SameShape reports whether r and o have identical dimensions.
func (r *Raster) SameShape(o *Raster) bool {
	return o != nil && r.w == o.w && r.h == o.h
}

// Equal reports whether r and o have the same shape and samples.
func (r *Raster) Equal(o *Raster) bool {
	if !r.SameShape(o) {
		return false
	}
	for i, v := range r.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Max returns the largest sample.
func (r *Raster) Max() int64 {
	best := r.data[0]
	for _, v := range r.data[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// String renders the raster one bracketed row per line.
func (r *Raster) String() string {
	var sb strings.Builder
	for y := 0; y < r.h; y++ {
		sb.WriteString("[")
		for x, v := range r.RowView(y) {
			if x > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// NewImage wraps samples with their gray bound.
// Returns ErrEmptyGrid for nil samples and ErrInvalidMaxGray if maxGray <= 0.
func NewImage(samples *Raster, maxGray int64) (*Image, error) {
	if samples == nil {
		return nil, ErrEmptyGrid
	}
	if maxGray <= 0 {
		return nil, fmt.Errorf("NewImage(max=%d): %w", maxGray, ErrInvalidMaxGray)
	}

	return &Image{Samples: samples, MaxGray: maxGray}, nil
}
