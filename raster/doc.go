// Package raster provides the fixed-size integer grid that every stage of
// the seam-carving pipeline reads and produces.
//
// What:
//
//   - Raster is a width×height grid of int64 samples in a flat row-major
//     buffer (offset = row*width + col).
//   - Image pairs an intensity Raster with the MaxGray bound that travels
//     with it through decoding and encoding.
//   - Public accessors (At/Set) return sentinel errors instead of panicking.
//
// Range:
//
//	A pixel energy is at most 4·MaxGray and a cumulative cost at most
//	height·4·MaxGray; both fit in int64 for any realistic image.
//
// Complexity:
//
//   - New, FromRows, Clone, Rows: O(W×H) time and memory.
//   - At, Set, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyGrid: FromRows received no rows or no columns.
//   - ErrNonRectangular: FromRows received rows of differing lengths.
//   - ErrOutOfRange: (row, col) outside the raster.
//   - ErrInvalidMaxGray: Image MaxGray is not positive.
package raster
