package charts

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/bcdannyboy/bsmparity/models"
)

var ErrNoSamples = errors.New("sample count must be at least 1")

type SweepRequest struct {
	Options []*models.Option
	XAxis   string
	YAxis   string
	Start   float64
	End     float64
	Samples int
}

type Series struct {
	Name string
	Type models.OptionType
	Y    []float64
}

type SweepResult struct {
	XAxis models.Field
	YAxis models.Field
	X     []float64
	// Inverted is set when the request range ran from high to low; X is
	// always ascending and the chart flips the axis instead.
	Inverted bool
	Series   []Series
}

// linspace returns n evenly spaced values over [start, end], both ends included.
func linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// Sweep varies one input of every option over a range and records one output
// per sample. Each option is swept on a clone, so callers' options and their
// parity links are left untouched.
func Sweep(req SweepRequest) (*SweepResult, error) {
	xField, err := models.ParseInputField(req.XAxis)
	if err != nil {
		return nil, err
	}
	yField, err := models.ParseOutputField(req.YAxis)
	if err != nil {
		return nil, err
	}
	if req.Samples < 1 {
		return nil, ErrNoSamples
	}

	start, end := req.Start, req.End
	inverted := false
	if end < start {
		start, end = end, start
		inverted = true
	}

	result := &SweepResult{
		XAxis:    xField,
		YAxis:    yField,
		X:        linspace(start, end, req.Samples),
		Inverted: inverted,
	}

	for i, option := range req.Options {
		option = option.Clone()
		series := Series{
			Name: fmt.Sprintf("%d. %s", i+1, option.Type()),
			Type: option.Type(),
			Y:    make([]float64, 0, len(result.X)),
		}
		for _, x := range result.X {
			if err := option.Set(xField, x); err != nil {
				return nil, fmt.Errorf("series %s: %w", series.Name, err)
			}
			y, err := option.Get(yField)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", series.Name, err)
			}
			series.Y = append(series.Y, y)
		}
		result.Series = append(result.Series, series)
	}

	return result, nil
}

// Plot sweeps the request and renders the result to path.
func Plot(req SweepRequest, path string) (*SweepResult, error) {
	result, err := Sweep(req)
	if err != nil {
		return nil, err
	}
	if err := Render(result, path); err != nil {
		return nil, err
	}
	return result, nil
}
