package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/podolab/podo-analyzer/internal/pressure"
)

var (
	leftBarColor  = color.RGBA{R: 57, G: 106, B: 177, A: 255}
	rightBarColor = color.RGBA{R: 204, G: 97, B: 97, A: 255}
)

// DistributionChart renders the per-zone pressure percentages of both
// feet as a grouped bar chart and returns it as PNG bytes. Sides absent
// from the distribution are drawn as zero-height bars so the zone axis
// stays aligned. An entirely empty distribution is an error.
func DistributionChart(res *pressure.Result) ([]byte, error) {
	if len(res.Distribution) == 0 {
		return nil, fmt.Errorf("no distribution to chart")
	}

	p := plot.New()
	p.Title.Text = "Zone Pressure Distribution"
	p.Y.Label.Text = "Share of foot total (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Add(plotter.NewGrid())

	width := vg.Points(22)

	leftBars, err := plotter.NewBarChart(sideValues(res.Distribution, "L"), width)
	if err != nil {
		return nil, fmt.Errorf("left bars: %w", err)
	}
	leftBars.Color = leftBarColor
	leftBars.Offset = -width / 2

	rightBars, err := plotter.NewBarChart(sideValues(res.Distribution, "R"), width)
	if err != nil {
		return nil, fmt.Errorf("right bars: %w", err)
	}
	rightBars.Color = rightBarColor
	rightBars.Offset = width / 2

	p.Add(leftBars, rightBars)
	p.Legend.Add("Left", leftBars)
	p.Legend.Add("Right", rightBars)
	p.Legend.Top = true
	p.NominalX("Hindfoot", "Midfoot", "Forefoot")

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("chart writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("chart encoding: %w", err)
	}
	return buf.Bytes(), nil
}

// sideValues extracts the hind/mid/fore percentages for one side prefix,
// defaulting missing entries to zero.
func sideValues(dist map[string]float64, prefix string) plotter.Values {
	return plotter.Values{
		dist[prefix+"H"],
		dist[prefix+"M"],
		dist[prefix+"F"],
	}
}
