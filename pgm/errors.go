package pgm

import "errors"

// Tag is the only supported format tag (plain grayscale).
const Tag = "P2"

// MaxSamples bounds width·height accepted by Decode.
const MaxSamples = 1 << 28

var (
	// ErrMalformedInput indicates a token that is missing, not an integer,
	// or out of its valid range, or a sample count other than width·height.
	ErrMalformedInput = errors.New("pgm: malformed input")

	// ErrUnsupportedFormat indicates a format tag other than "P2".
	ErrUnsupportedFormat = errors.New("pgm: unsupported format, only P2 is supported")

	// ErrMissingFile indicates that the input path does not exist.
	ErrMissingFile = errors.New("pgm: file does not exist")

	// ErrIOFailure indicates that the underlying reader or writer failed.
	ErrIOFailure = errors.New("pgm: i/o failure")

	// ErrNilImage indicates a nil image or an image without samples.
	ErrNilImage = errors.New("pgm: image is nil")
)
