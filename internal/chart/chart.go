// Package chart renders cleaned series as line charts with fixed
// per-indicator styling.
package chart

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"macroplot/internal/model"
)

var ErrNoSeries = errors.New("chart: no series to render")

// Style carries the fixed axis titles and unit scaling for one indicator.
type Style struct {
	Title  string
	XLabel string
	YLabel string
	// Scale divides every value before plotting; zero means unscaled.
	Scale float64

	WidthInches  float64
	HeightInches float64
}

// Render overlays one line per series on a single chart and writes it to
// outPath (format chosen by extension, normally .png). Legend entries use
// the series labels.
func Render(style Style, series []model.Series, outPath string) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = style.Title
	p.X.Label.Text = style.XLabel
	p.Y.Label.Text = style.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006"}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}

	for i, s := range series {
		points := make(plotter.XYs, len(s.Points))
		for j, point := range s.Points {
			points[j].X = float64(point.Date.Unix())
			points[j].Y = point.Value / scale
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	width := style.WidthInches
	if width <= 0 {
		width = 12
	}
	height := style.HeightInches
	if height <= 0 {
		height = 6
	}
	return p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, outPath)
}
