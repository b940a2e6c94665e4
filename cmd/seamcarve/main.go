// Command seamcarve reads a P2 grayscale image, computes its cumulative
// seam cost map and writes it next to the input.
//
// Usage:
//
//	seamcarve [flags] <input-path> <horizontal-lines-to-remove> <vertical-lines-to-remove>
//
// The output is written to the input path with "_processed" inserted before
// its four-character extension, e.g. photo.pgm -> photo_processed.pgm.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/seamcarve/internal/fsutil"
)

func main() {
	if err := newRootCmd(fsutil.OSFileSystem{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
