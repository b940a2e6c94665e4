// Package pgm reads and writes the plain-text ("P2") grayscale raster format.
//
// Format:
//
//	P2
//	# comments run from a '#' token to the end of its line
//	<width> <height>
//	<maxGray>
//	<width·height whitespace-separated samples, row-major>
//
// Decode accepts any whitespace layout; Encode writes the header fields one
// per line, then one line per raster row with every value followed by a
// single space. Samples above maxGray are accepted on input so that cost maps
// written with the source image's maxGray decode again unchanged.
//
// Errors:
//
//   - ErrMalformedInput: missing, non-integer, non-positive header fields,
//     negative samples, too few or too many samples.
//   - ErrUnsupportedFormat: tag other than "P2".
//   - ErrMissingFile: ReadFile target does not exist.
//   - ErrIOFailure: reading or writing the underlying stream failed.
package pgm
