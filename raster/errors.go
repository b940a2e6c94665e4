package raster

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("raster: index out of range")
	// ErrInvalidMaxGray indicates an image whose gray bound is not positive.
	ErrInvalidMaxGray = errors.New("raster: max gray value must be > 0")
)
