// Package energy derives a per-pixel importance score from a grayscale
// intensity raster.
//
// 🚀 What is pixel energy?
//
//	Energy measures how much a pixel differs from its surroundings. Seam
//	carving removes low-energy pixels first, so flat regions shrink while
//	edges and texture survive.
//
// Formula (4-neighbour absolute gradient):
//
//	e(r,c) = |I(r,c)−I(r−1,c)|·[r>0]   + |I(r,c)−I(r+1,c)|·[r<H−1]
//	       + |I(r,c)−I(r,c−1)|·[c>0]   + |I(r,c)−I(r,c+1)|·[c<W−1]
//
//	Neighbours outside the raster contribute nothing: corner pixels sum two
//	terms, edge pixels three, interior pixels four. No wrapping, no mirroring.
//
// ✨ Key features:
//   - Compute: full energy raster, same shape as the input.
//   - Pixel: energy of a single cell.
//   - WithWorkers(n): evaluate rows concurrently; output is identical for any n.
//   - Summarize / RowMeans: descriptive statistics over an energy raster.
//
// ⚙️ Usage:
//
//	img, _ := raster.FromRows([][]int64{{1, 5}, {3, 3}})
//	e, err := energy.Compute(img, energy.WithWorkers(4))
//	// e = [[6, 6], [2, 2]]
//
// Errors:
//   - ErrNilRaster: nil input.
//   - ErrOverflow: a neighbour difference or the four-term sum does not fit
//     in int64.
//
// Performance:
//
//   - Time:   O(W·H)
//   - Memory: O(W·H) for the output raster, O(1) auxiliary.
package energy
