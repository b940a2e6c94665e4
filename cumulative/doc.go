// Package cumulative builds the top-down minimum-cost map that seam carving
// searches for its cheapest vertical seam.
//
// 🚀 What is the cumulative cost map?
//
//	For every cell it records the smallest total energy of any path that
//	starts anywhere in the top row and steps down one row at a time, moving
//	at most one column left or right per step.
//
// Algorithm Outline:
//  1. M[0][c] = e[0][c] for every column c.
//  2. For r = 1..H−1, for every column c:
//     M[r][c] = e[r][c] + min(M[r−1][c−1], M[r−1][c], M[r−1][c+1])
//     where a predecessor outside [0, W−1] is absent, not +∞.
//  3. M[r−1][c] always exists, so every row has a real minimum.
//
// Memory Modes:
//   - FullMatrix - keep every row; Accumulate returns the whole map. O(W·H).
//   - TwoRows    - keep only the previous and current row; LastRow returns the
//     bottom row. O(W).
//
// ⚙️ Usage:
//
//	cost, err := cumulative.Accumulate(e, nil)
//	bottom, err := cumulative.LastRow(e)
//
// Errors:
//   - ErrNilRaster           - nil energy raster.
//   - ErrFullMatrixRequired  - Accumulate called with MemoryMode=TwoRows.
//   - ErrOverflow            - an accumulated cost would exceed math.MaxInt64.
package cumulative
