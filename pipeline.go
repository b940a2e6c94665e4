package seamcarve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seamcarve/cumulative"
	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/raster"
)

// ErrNilImage indicates a nil image or an image without samples.
var ErrNilImage = errors.New("seamcarve: image is nil")

// Result holds the outputs of one pipeline run. Energy and Cost have the
// input's shape; MaxGray is copied from the input unchanged.
type Result struct {
	Energy  *raster.Raster
	Cost    *raster.Raster
	MaxGray int64
}

// CostImage wraps the cost map with the source gray bound for encoding.
func (r *Result) CostImage() *raster.Image {
	return &raster.Image{Samples: r.Cost, MaxGray: r.MaxGray}
}

// Option configures Run.
type Option func(*config)

type config struct {
	energy []energy.Option
}

// WithWorkers forwards row parallelism to the energy stage.
// Panics if n < 1.
func WithWorkers(n int) Option {
	opt := energy.WithWorkers(n)

	return func(c *config) { c.energy = append(c.energy, opt) }
}

// Run computes the energy map of img and accumulates it into the cost map.
//
// Errors:
//   - ErrNilImage if img or its samples are nil.
//   - energy.ErrOverflow if a pixel energy does not fit in int64.
//   - cumulative.ErrOverflow if a cost does not fit in int64.
func Run(img *raster.Image, opts ...Option) (*Result, error) {
	if img == nil || img.Samples == nil {
		return nil, ErrNilImage
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	e, err := energy.Compute(img.Samples, cfg.energy...)
	if err != nil {
		return nil, fmt.Errorf("seamcarve: energy: %w", err)
	}
	cost, err := cumulative.Accumulate(e, nil)
	if err != nil {
		return nil, fmt.Errorf("seamcarve: %w", err)
	}

	return &Result{Energy: e, Cost: cost, MaxGray: img.MaxGray}, nil
}
