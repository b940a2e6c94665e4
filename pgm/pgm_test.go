package pgm_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/internal/fsutil"
	"github.com/katalvlaran/seamcarve/pgm"
	"github.com/katalvlaran/seamcarve/raster"
)

const sample2x2 = "P2\n2\n2\n255\n1 5 \n3 3 \n"

//----------------------------------------------------------------------------//
// Decode
//----------------------------------------------------------------------------//

// TestDecode_Basic parses a canonical file.
func TestDecode_Basic(t *testing.T) {
	img, err := pgm.Decode(strings.NewReader(sample2x2))
	require.NoError(t, err)
	assert.Equal(t, int64(255), img.MaxGray)
	if diff := cmp.Diff([][]int64{{1, 5}, {3, 3}}, img.Samples.Rows()); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

// TestDecode_CommentsAndLayout accepts comments anywhere and free whitespace.
func TestDecode_CommentsAndLayout(t *testing.T) {
	src := "# leading comment\nP2 # tag comment 9 9 9\n3 # width\n\t2\r\n# whole line 1 2 3\n15\n" +
		"0 1 2\n3 4 15"
	img, err := pgm.Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Samples.Width())
	assert.Equal(t, 2, img.Samples.Height())
	assert.Equal(t, int64(15), img.MaxGray)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 15}, img.Samples.Values())
}

// TestDecode_CommentTokenAtLineEnd ensures a bare '#' at the end of a line
// does not swallow the following line.
func TestDecode_CommentTokenAtLineEnd(t *testing.T) {
	img, err := pgm.Decode(strings.NewReader("P2 #\n1 1 9\n4\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, img.Samples.Values())
}

// TestDecode_SamplesAboveMaxGray accepts cost maps stored with a small maxGray.
func TestDecode_SamplesAboveMaxGray(t *testing.T) {
	img, err := pgm.Decode(strings.NewReader("P2\n2\n1\n3\n600 7 \n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{600, 7}, img.Samples.Values())
}

// TestDecode_Errors covers every rejected input.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", pgm.ErrMalformedInput},
		{"OnlyComments", "# nothing here\n", pgm.ErrMalformedInput},
		{"WrongTag", "P5\n1 1 255\n0", pgm.ErrUnsupportedFormat},
		{"LowercaseTag", "p2\n1 1 255\n0", pgm.ErrUnsupportedFormat},
		{"MissingWidth", "P2", pgm.ErrMalformedInput},
		{"MissingMaxGray", "P2 1 1", pgm.ErrMalformedInput},
		{"NonIntegerWidth", "P2 x 1 255 0", pgm.ErrMalformedInput},
		{"ZeroWidth", "P2 0 1 255", pgm.ErrMalformedInput},
		{"NegativeHeight", "P2 1 -1 255", pgm.ErrMalformedInput},
		{"ZeroMaxGray", "P2 1 1 0 0", pgm.ErrMalformedInput},
		{"TooLarge", "P2 1000000 1000000 255", pgm.ErrMalformedInput},
		{"TooFewSamples", "P2 2 2 255 1 2 3", pgm.ErrMalformedInput},
		{"TooManySamples", "P2 1 1 255 1 2", pgm.ErrMalformedInput},
		{"NonIntegerSample", "P2 2 1 255 1 two", pgm.ErrMalformedInput},
		{"NegativeSample", "P2 2 1 255 1 -2", pgm.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := pgm.Decode(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, img, "no partial image on error")
		})
	}
}

// failingReader returns data then a non-EOF error.
type failingReader struct{ data []byte }

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("disk on fire")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

// TestDecode_ReadError maps reader failures to ErrIOFailure.
func TestDecode_ReadError(t *testing.T) {
	_, err := pgm.Decode(&failingReader{data: []byte("P2 2 2 255 1 ")})
	assert.ErrorIs(t, err, pgm.ErrIOFailure)
}

//----------------------------------------------------------------------------//
// Encode
//----------------------------------------------------------------------------//

// TestEncode_Layout checks the exact byte layout.
func TestEncode_Layout(t *testing.T) {
	r, err := raster.FromRows([][]int64{{6, 6}, {8, 8}})
	require.NoError(t, err)
	img, err := raster.NewImage(r, 255)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pgm.Encode(&buf, img))
	assert.Equal(t, "P2\n2\n2\n255\n6 6 \n8 8 \n", buf.String())
}

// TestEncode_Nil rejects missing images.
func TestEncode_Nil(t *testing.T) {
	assert.ErrorIs(t, pgm.Encode(&bytes.Buffer{}, nil), pgm.ErrNilImage)
	assert.ErrorIs(t, pgm.Encode(&bytes.Buffer{}, &raster.Image{MaxGray: 1}), pgm.ErrNilImage)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no space left") }

// TestEncode_WriteError maps writer failures to ErrIOFailure.
func TestEncode_WriteError(t *testing.T) {
	r, err := raster.New(1, 1)
	require.NoError(t, err)
	err = pgm.Encode(failingWriter{}, &raster.Image{Samples: r, MaxGray: 1})
	assert.ErrorIs(t, err, pgm.ErrIOFailure)
}

// TestRoundTrip ensures decode(encode(x)) preserves samples, shape and maxGray.
func TestRoundTrip(t *testing.T) {
	src := "P2\n# c\n4 3\n255\n0 10 20 30\n40 50 60 70\n80 90 100 255\n"
	img, err := pgm.Decode(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pgm.Encode(&buf, img))
	again, err := pgm.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, img.MaxGray, again.MaxGray)
	assert.True(t, img.Samples.Equal(again.Samples))
}

//----------------------------------------------------------------------------//
// ReadFile / WriteFile
//----------------------------------------------------------------------------//

// TestReadWriteFile exercises the filesystem helpers.
func TestReadWriteFile(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("/in.pgm", []byte(sample2x2))

	img, err := pgm.ReadFile(mfs, "/in.pgm")
	require.NoError(t, err)
	require.NoError(t, pgm.WriteFile(mfs, "/out.pgm", img))

	data, err := mfs.ReadFile("/out.pgm")
	require.NoError(t, err)
	assert.Equal(t, sample2x2, string(data))
}

// TestReadFile_Errors covers missing and malformed files.
func TestReadFile_Errors(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	_, err := pgm.ReadFile(mfs, "/missing.pgm")
	assert.ErrorIs(t, err, pgm.ErrMissingFile)

	mfs.WriteFile("/bad.pgm", []byte("P2 1 1 255 x"))
	_, err = pgm.ReadFile(mfs, "/bad.pgm")
	assert.ErrorIs(t, err, pgm.ErrMalformedInput)
	assert.Contains(t, err.Error(), "/bad.pgm")
}

// TestWriteFile_Errors covers nil images and create failures.
func TestWriteFile_Errors(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	assert.ErrorIs(t, pgm.WriteFile(mfs, "/x.pgm", nil), pgm.ErrNilImage)

	img, err := pgm.Decode(strings.NewReader(sample2x2))
	require.NoError(t, err)
	mfs.ReadOnly = true
	assert.ErrorIs(t, pgm.WriteFile(mfs, "/x.pgm", img), pgm.ErrIOFailure)
}
