package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/bcdannyboy/bsmparity/models"
)

var (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
	putDashes   = []vg.Length{vg.Points(6), vg.Points(3)}
)

// segments splits a series at non-finite samples. Plotter lines reject NaN,
// so undefined outputs (zero spot, expiry) show up as gaps.
func segments(x, y []float64) []plotter.XYs {
	var out []plotter.XYs
	var current plotter.XYs
	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// Chart builds the line chart for a sweep: solid lines for calls, dashed
// lines for puts.
func Chart(result *SweepResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Options: %s x %s", result.XAxis, result.YAxis)
	p.X.Label.Text = string(result.XAxis)
	p.Y.Label.Text = string(result.YAxis)
	p.Add(plotter.NewGrid())

	for i, series := range result.Series {
		color := plotutil.Color(i)
		for j, seg := range segments(result.X, series.Y) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", series.Name, err)
			}
			line.LineStyle.Color = color
			line.LineStyle.Width = vg.Points(1.5)
			if series.Type == models.Put {
				line.LineStyle.Dashes = putDashes
			}
			p.Add(line)
			if j == 0 {
				p.Legend.Add(series.Name, line)
			}
		}
	}

	if result.Inverted {
		p.X.Scale = plot.InvertedScale{Normalizer: p.X.Scale}
	}
	p.Legend.Top = true

	return p, nil
}

// Render writes the chart to path; the image format follows the extension.
func Render(result *SweepResult, path string) error {
	p, err := Chart(result)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}
