package plot

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/seamcarve"
	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/internal/fsutil"
)

var (
	// ErrNilResult indicates a nil result or a result without maps.
	ErrNilResult = errors.New("plot: result is nil")
	// ErrNoFormat indicates a path without a file extension.
	ErrNoFormat = errors.New("plot: output path has no extension")
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var (
	costColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	energyColor = color.RGBA{R: 40, G: 90, B: 200, A: 255}
)

// Profile extracts the two plotted series: minimum cumulative cost per row
// and mean energy per row, both top to bottom.
func Profile(res *seamcarve.Result) (minCost, meanEnergy []float64, err error) {
	if res == nil || res.Cost == nil || res.Energy == nil {
		return nil, nil, ErrNilResult
	}
	minCost = make([]float64, res.Cost.Height())
	for y := range minCost {
		row := res.Cost.RowView(y)
		best := row[0]
		for _, v := range row[1:] {
			best = min(best, v)
		}
		minCost[y] = float64(best)
	}
	meanEnergy, err = energy.RowMeans(res.Energy)
	if err != nil {
		return nil, nil, err
	}

	return minCost, meanEnergy, nil
}

// RowProfile draws the Profile series and writes the chart to path on fsys.
func RowProfile(fsys fsutil.FileSystem, path string, res *seamcarve.Result) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%s: %w", path, ErrNoFormat)
	}
	minCost, meanEnergy, err := Profile(res)
	if err != nil {
		return err
	}

	p := gplot.New()
	p.Title.Text = fmt.Sprintf("Row profile (%dx%d)", res.Cost.Width(), res.Cost.Height())
	p.X.Label.Text = "Row"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())

	if err = addLine(p, "min cumulative cost", minCost, costColor); err != nil {
		return err
	}
	if err = addLine(p, "mean energy", meanEnergy, energyColor); err != nil {
		return err
	}
	p.Legend.Top = true

	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return fmt.Errorf("plot: %s: %w", path, err)
	}
	w, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("plot: %w", cerr)
		}
	}()
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("plot: %s: %w", path, err)
	}

	return nil
}

// addLine adds ys against their index as a coloured line with a legend entry.
func addLine(p *gplot.Plot, name string, ys []float64, c color.Color) error {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot: %s: %w", name, err)
	}
	l.Color = c
	l.Width = vg.Points(1.5)
	p.Add(l)
	p.Legend.Add(name, l)

	return nil
}
