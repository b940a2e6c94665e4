package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seamcarve"
	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/internal/fsutil"
	"github.com/katalvlaran/seamcarve/pgm"
	"github.com/katalvlaran/seamcarve/plot"
)

const (
	usageMessage   = "Incorrect syntax:\n\nUsage:\n\tseamcarve [filepath] [horizontal lines to remove] [vertical lines to remove]"
	missingMessage = "The file specified does not exist."

	// DefaultSuffix is inserted before the input's extension to name the output.
	DefaultSuffix = "_processed"

	extLen = 4
)

// options holds the parsed command-line flags.
type options struct {
	workers int
	suffix  string
	plot    string
	quiet   bool
}

// newRootCmd builds the command over fsys.
func newRootCmd(fsys fsutil.FileSystem) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "seamcarve <input-path> <horizontal-lines-to-remove> <vertical-lines-to-remove>",
		Short: "Compute the cumulative seam cost map of a P2 grayscale image",
		Long: "seamcarve computes the per-pixel energy of a plain (P2) grayscale image,\n" +
			"accumulates it into the top-down minimum seam cost map and writes that map\n" +
			"as a P2 image next to the input.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				fmt.Fprintln(cmd.OutOrStdout(), usageMessage)

				return nil
			}

			return run(cmd, fsys, opts, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.workers, "workers", "w", energy.DefaultWorkers, "rows evaluated concurrently by the energy stage")
	f.StringVar(&opts.suffix, "suffix", DefaultSuffix, "inserted before the input extension to name the output")
	f.StringVar(&opts.plot, "plot", "", "also write a per-row profile chart to this path (png, svg, pdf)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress logging")

	return cmd
}

// run executes one invocation: decode, compute, encode.
func run(cmd *cobra.Command, fsys fsutil.FileSystem, opts options, args []string) error {
	if opts.workers < 1 {
		return fmt.Errorf("--workers must be >= 1, got %d", opts.workers)
	}
	var logw io.Writer = cmd.ErrOrStderr()
	if opts.quiet {
		logw = io.Discard
	}
	logger := log.New(logw, "", 0)

	input := args[0]
	if !fsys.Exists(input) {
		fmt.Fprintln(cmd.OutOrStdout(), missingMessage)

		return nil
	}

	img, err := pgm.ReadFile(fsys, input)
	if err != nil {
		return err
	}
	logger.Printf("Max Width: %d", img.Samples.Width())
	logger.Printf("Max Height: %d", img.Samples.Height())
	logger.Printf("seam removal not performed (horizontal=%s, vertical=%s)", args[1], args[2])

	res, err := seamcarve.Run(img, seamcarve.WithWorkers(opts.workers))
	if err != nil {
		return err
	}
	if s, err := energy.Summarize(res.Energy); err == nil {
		logger.Printf("energy: min=%d max=%d mean=%.2f stddev=%.2f", s.Min, s.Max, s.Mean, s.StdDev)
	}

	out := outputPath(input, opts.suffix)
	if err = pgm.WriteFile(fsys, out, res.CostImage()); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)

	if opts.plot != "" {
		if err = plot.RowProfile(fsys, opts.plot, res); err != nil {
			return err
		}
		logger.Printf("wrote %s", opts.plot)
	}

	return nil
}

// outputPath inserts suffix before the final four characters of input
// (the assumed ".ext"). Shorter paths get the suffix appended.
func outputPath(input, suffix string) string {
	if len(input) < extLen {
		return input + suffix
	}
	cut := len(input) - extLen

	return input[:cut] + suffix + input[cut:]
}
