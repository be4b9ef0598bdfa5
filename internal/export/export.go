// Package export renders a chart to an image file with gonum/plot.
package export

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"clusterview/internal/chart"
)

// maxLabels caps the labelled ticks per axis; the rest are drawn as minor ticks.
const (
	maxLabels = 10
	maxTicks  = 50
)

// Plot builds a scatter plot with one glyph style per series.
func Plot(c chart.Chart, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = c.X.Label
	p.Y.Label.Text = c.Y.Label
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range c.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = pt.X
			xys[j].Y = pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = plotutil.Shape(i)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)
	}

	// Add widens the axes to the data; pin them to the chart bounds afterwards.
	p.X.Min, p.X.Max = c.X.Min, c.X.Max
	p.Y.Min, p.Y.Max = c.Y.Min, c.Y.Max
	p.X.Tick.Marker = ticker(c.X)
	p.Y.Tick.Marker = ticker(c.Y)
	return p, nil
}

// ticker marks every axis tick and labels at most maxLabels of them.
func ticker(a chart.Axis) plot.Ticker {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		values := a.TicksIn(min, max, maxTicks)
		stride := int(math.Ceil(float64(len(values)) / maxLabels))
		if stride < 1 {
			stride = 1
		}
		ticks := make([]plot.Tick, len(values))
		for i, v := range values {
			ticks[i].Value = v
			if i%stride == 0 {
				ticks[i].Label = chart.Label(v)
			}
		}
		return ticks
	})
}

// Save writes the chart to path; the format follows the file extension.
func Save(c chart.Chart, title, path string, widthCM, heightCM float64) error {
	p, err := Plot(c, title)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter, path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Write renders the chart in format ("png", "svg", "pdf", ...) to w.
func Write(w io.Writer, c chart.Chart, title, format string, widthCM, heightCM float64) error {
	p, err := Plot(c, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}
