package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/internal/fsutil"
	"github.com/katalvlaran/seamcarve/pgm"
)

const input2x2 = "P2\n# test card\n2 2\n255\n1 5\n3 3\n"

// execute runs the command against fsys and returns stdout, stderr and error.
func execute(t *testing.T, fsys fsutil.FileSystem, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(fsys)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// TestRoot_WrongArgCount prints usage and succeeds.
func TestRoot_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a.pgm"}, {"a.pgm", "1"}, {"a.pgm", "1", "2", "3"}} {
		stdout, _, err := execute(t, fsutil.NewMemoryFileSystem(), args...)
		assert.NoError(t, err, "args %v", args)
		assert.Contains(t, stdout, "Usage:", "args %v", args)
	}
}

// TestRoot_MissingFile reports and succeeds without writing anything.
func TestRoot_MissingFile(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	stdout, _, err := execute(t, mfs, "/nope.pgm", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, missingMessage+"\n", stdout)
	assert.False(t, mfs.Exists("/nope_processed.pgm"))
}

// TestRoot_WritesCostMap runs the full pipeline end to end.
func TestRoot_WritesCostMap(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("/img/card.pgm", []byte(input2x2))

	_, stderr, err := execute(t, mfs, "/img/card.pgm", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Max Width: 2")
	assert.Contains(t, stderr, "Max Height: 2")

	data, err := mfs.ReadFile("/img/card_processed.pgm")
	require.NoError(t, err)
	assert.Equal(t, "P2\n2\n2\n255\n6 6 \n8 8 \n", string(data))

	out, err := pgm.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 6, 8, 8}, out.Samples.Values())
}

// TestRoot_FlagsAndPlot covers --suffix, --workers, --quiet and --plot.
func TestRoot_FlagsAndPlot(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("/card.pgm", []byte(input2x2))

	_, stderr, err := execute(t, mfs, "--suffix", "_cost", "-w", "4", "-q", "--plot", "/profile.svg", "/card.pgm", "0", "0")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.True(t, mfs.Exists("/card_cost.pgm"))

	svg, err := mfs.ReadFile("/profile.svg")
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

// TestRoot_Errors surfaces malformed input, unsupported format, bad flags and
// write failures as errors.
func TestRoot_Errors(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("/bad.pgm", []byte("P2 2 2 255 1 2 x 4"))
	mfs.WriteFile("/p5.pgm", []byte("P5 1 1 255 0"))
	mfs.WriteFile("/ok.pgm", []byte(input2x2))

	_, _, err := execute(t, mfs, "/bad.pgm", "1", "1")
	assert.ErrorIs(t, err, pgm.ErrMalformedInput)

	_, _, err = execute(t, mfs, "/p5.pgm", "1", "1")
	assert.ErrorIs(t, err, pgm.ErrUnsupportedFormat)

	_, _, err = execute(t, mfs, "--workers", "0", "/ok.pgm", "1", "1")
	assert.Error(t, err)

	mfs.ReadOnly = true
	_, _, err = execute(t, mfs, "/ok.pgm", "1", "1")
	assert.ErrorIs(t, err, pgm.ErrIOFailure)
}

// TestOutputPath checks suffix placement before the four-character extension.
func TestOutputPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"photo.pgm", "photo_processed.pgm"},
		{"/a/b/c.PGM", "/a/b/c_processed.PGM"},
		{"x.pg", "_processedx.pg"},
		{"ab", "ab_processed"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, outputPath(tc.in, DefaultSuffix), tc.in)
	}
	assert.True(t, strings.HasSuffix(outputPath("img.pgm", "_cost"), "_cost.pgm"))
}
