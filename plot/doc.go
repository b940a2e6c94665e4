// Package plot renders per-row profiles of a pipeline result as a chart.
//
// Two series are drawn against the row index:
//   - the minimum cumulative cost reached in each row (the cost of the
//     cheapest partial seam ending there);
//   - the mean energy of each row.
//
// The output format follows the file extension (png, svg, pdf, ...), as
// supported by gonum.org/v1/plot.
package plot
