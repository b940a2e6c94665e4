package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/katalvlaran/seamcarve/internal/fsutil"
	"github.com/katalvlaran/seamcarve/raster"
)

// Decode parses a P2 image from r. On any error no image is returned.
func Decode(r io.Reader) (*raster.Image, error) {
	tok := newTokenizer(r)

	tag, err := tok.next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing format tag: %w", ErrMalformedInput)
	}
	if err != nil {
		return nil, err
	}
	if tag != Tag {
		return nil, fmt.Errorf("tag %q: %w", tag, ErrUnsupportedFormat)
	}

	width, err := positive(tok, "width")
	if err != nil {
		return nil, err
	}
	height, err := positive(tok, "height")
	if err != nil {
		return nil, err
	}
	if width > MaxSamples || height > MaxSamples || width*height > MaxSamples {
		return nil, fmt.Errorf("%dx%d exceeds %d samples: %w", width, height, MaxSamples, ErrMalformedInput)
	}
	maxGray, err := positive(tok, "max gray value")
	if err != nil {
		return nil, err
	}

	samples, err := raster.New(int(width), int(height))
	if err != nil {
		return nil, err
	}
	for row := 0; row < samples.Height(); row++ {
		dst := samples.RowView(row)
		for col := range dst {
			v, err := tok.int(fmt.Sprintf("sample (%d,%d)", row, col))
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, fmt.Errorf("line %d: sample (%d,%d) = %d is negative: %w", tok.tokLine, row, col, v, ErrMalformedInput)
			}
			dst[col] = v
		}
	}

	extra, err := tok.next()
	if err == nil {
		return nil, fmt.Errorf("line %d: unexpected token %q after %d samples: %w", tok.tokLine, extra, width*height, ErrMalformedInput)
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}

	return raster.NewImage(samples, maxGray)
}

// positive reads a header field that must be a positive integer.
func positive(tok *tokenizer, what string) (int64, error) {
	v, err := tok.int(what)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("line %d: %s must be > 0, got %d: %w", tok.tokLine, what, v, ErrMalformedInput)
	}

	return v, nil
}

// Encode writes img to w in P2 layout.
func Encode(w io.Writer, img *raster.Image) error {
	if img == nil || img.Samples == nil {
		return ErrNilImage
	}
	bw := bufio.NewWriter(w)
	s := img.Samples

	var line []byte
	line = append(line, Tag...)
	line = append(line, '\n')
	line = strconv.AppendInt(line, int64(s.Width()), 10)
	line = append(line, '\n')
	line = strconv.AppendInt(line, int64(s.Height()), 10)
	line = append(line, '\n')
	line = strconv.AppendInt(line, img.MaxGray, 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	for row := 0; row < s.Height(); row++ {
		line = line[:0]
		for _, v := range s.RowView(row) {
			line = strconv.AppendInt(line, v, 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %w", ErrIOFailure, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return nil
}

// ReadFile opens path on fsys and decodes it.
// A missing path yields ErrMissingFile.
func ReadFile(fsys fsutil.FileSystem, path string) (*raster.Image, error) {
	f, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrIOFailure, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// WriteFile encodes img into path on fsys, creating or truncating it.
func WriteFile(fsys fsutil.FileSystem, path string, img *raster.Image) (err error) {
	if img == nil || img.Samples == nil {
		return ErrNilImage
	}
	w, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrIOFailure, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w: %w", path, ErrIOFailure, cerr)
		}
	}()

	if err = Encode(w, img); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
