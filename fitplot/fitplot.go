// Package fitplot draws a dataset together with a fitted model.
package fitplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sw965/descent/model"
	"github.com/sw965/descent/tensor"
)

var ErrNoData = errors.New("fitplot: no data to plot")

const (
	Width  = 4 * vg.Inch
	Height = 3 * vg.Inch

	lineSamples = 50
)

var (
	dataColor = color.RGBA{B: 255, A: 255}
	fitColor  = color.RGBA{R: 255, A: 255}
)

func toXYs(xs, ys tensor.D1) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}

func newPlot(title, xLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "y"
	return p
}

func addScatter(p *plot.Plot, xys plotter.XYs, c color.Color) error {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	p.Add(s)
	return nil
}

func addLine(p *plot.Plot, xys plotter.XYs, c color.Color) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	p.Add(l)
	return nil
}

func sample(f func(float64) float64, min, max float64, n int) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		x := min
		if n > 1 {
			x = min + (max-min)*float64(i)/float64(n-1)
		}
		xys[i].X = x
		xys[i].Y = f(x)
	}
	return xys
}

// Fit plots (xs, ys) in blue and the model f at theta in red: its values at
// the smallest, middle and largest x, and the curve between them. The image
// format follows the extension of path.
func Fit(path, title string, xs, ys, theta tensor.D1, f model.Scalar) error {
	if len(xs) == 0 {
		return ErrNoData
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d xs, %d ys", tensor.ErrDimensionMismatch, len(xs), len(ys))
	}

	p := newPlot(title, "x")
	if err := addScatter(p, toXYs(xs, ys), dataColor); err != nil {
		return err
	}

	xMin, xMax := floats.Min(xs), floats.Max(xs)
	at := func(x float64) float64 { return f(x, theta) }
	if err := addScatter(p, sample(at, xMin, xMax, 3), fitColor); err != nil {
		return err
	}
	if err := addLine(p, sample(at, xMin, xMax, lineSamples), fitColor); err != nil {
		return err
	}
	return p.Save(Width, Height, path)
}

// PlaneProjection plots x1 against y for a two-feature dataset and draws the
// fitted plane w1*x1 + w2*x2 + b sliced at x2 = 0.
func PlaneProjection(path, title string, xs tensor.D2, ys, theta tensor.D1) error {
	if len(xs) == 0 {
		return ErrNoData
	}
	if len(theta) != 3 {
		return fmt.Errorf("%w: plane needs 3 parameters, got %d", model.ErrParameterCount, len(theta))
	}

	x1s, err := xs.Col(0)
	if err != nil {
		return err
	}
	if len(x1s) != len(ys) {
		return fmt.Errorf("%w: %d xs, %d ys", tensor.ErrDimensionMismatch, len(x1s), len(ys))
	}

	p := newPlot(title, "x1 (x2=0)")
	if err := addScatter(p, toXYs(x1s, ys), dataColor); err != nil {
		return err
	}

	slice := func(x1 float64) float64 { return theta[0]*x1 + theta[2] }
	if err := addLine(p, sample(slice, floats.Min(x1s), floats.Max(x1s), 2), fitColor); err != nil {
		return err
	}
	return p.Save(Width, Height, path)
}
