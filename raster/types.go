package raster

// Raster is a rectangular row-major grid of int64 samples.
// Width and height are fixed at construction; data has length width*height.
// A Raster handed to the next pipeline stage is never mutated afterwards.
type Raster struct {
	w, h int
	data []int64
}

// Image is an intensity raster together with its gray bound.
// MaxGray is carried through to any output unchanged and plays no part in
// energy or cost computation.
type Image struct {
	Samples *Raster
	MaxGray int64
}

// Conn4Offsets lists the four axis-aligned neighbours as (dRow, dCol):
// up, down, left, right.
var Conn4Offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
