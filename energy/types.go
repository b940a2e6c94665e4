package energy

import "errors"

var (
	// ErrNilRaster indicates that a nil input raster was passed.
	ErrNilRaster = errors.New("energy: input raster is nil")

	// ErrOverflow indicates a pixel energy that does not fit in int64.
	ErrOverflow = errors.New("energy: pixel energy overflows int64")
)

// DefaultWorkers evaluates rows sequentially.
const DefaultWorkers = 1

const panicWorkersInvalid = "energy: WithWorkers: n must be >= 1"

// Option mutates the effective Options.
type Option func(*Options)

// Options holds the resolved configuration of Compute.
type Options struct {
	workers int // >= 1; DefaultWorkers
}

// DefaultOptions returns Options with documented defaults.
func DefaultOptions() Options {
	return Options{workers: DefaultWorkers}
}

// Workers reports the configured row parallelism.
func (o Options) Workers() int { return o.workers }

// WithWorkers bounds the number of rows evaluated concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Summary holds descriptive statistics of an energy raster.
type Summary struct {
	Min, Max int64
	Total    int64
	Mean     float64
	StdDev   float64
}
