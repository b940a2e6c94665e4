package energy

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/seamcarve/raster"
)

// Summarize computes min, max, total, mean and sample standard deviation
// over every cell of e. A 1×1 raster has StdDev 0.
func Summarize(e *raster.Raster) (Summary, error) {
	if e == nil {
		return Summary{}, ErrNilRaster
	}
	vals := e.Values()
	xs := make([]float64, len(vals))
	s := Summary{Min: vals[0], Max: vals[0]}
	for i, v := range vals {
		xs[i] = float64(v)
		s.Total += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	if len(xs) == 1 {
		s.Mean = xs[0]

		return s, nil
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)

	return s, nil
}

// RowMeans returns the mean value of each row of e, top to bottom.
func RowMeans(e *raster.Raster) ([]float64, error) {
	if e == nil {
		return nil, ErrNilRaster
	}
	means := make([]float64, e.Height())
	row := make([]float64, e.Width())
	for y := range means {
		for x, v := range e.RowView(y) {
			row[x] = float64(v)
		}
		means[y] = stat.Mean(row, nil)
	}

	return means, nil
}
