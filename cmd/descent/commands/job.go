package commands

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/sw965/descent"
	"github.com/sw965/descent/dataset"
	"github.com/sw965/descent/fitplot"
	"github.com/sw965/descent/loss"
	"github.com/sw965/descent/model"
	"github.com/sw965/descent/tensor"
)

// job is one fitting problem: an objective, its starting point and how to
// draw a parameter vector against the data.
type job struct {
	name         string
	title        string
	defaultAlpha float64
	objective    descent.Objective
	theta0       tensor.D1
	plot         func(path, title string, theta tensor.D1) error
}

func scalarPlot(s dataset.Set, f model.Scalar) func(string, string, tensor.D1) error {
	return func(path, title string, theta tensor.D1) error {
		return fitplot.Fit(path, title, s.Xs, s.Ys, theta, f)
	}
}

func newLinearJob(s dataset.Set) job {
	return job{
		name:         "Linear",
		title:        "Line",
		defaultAlpha: 0.01,
		objective:    loss.NewL2[tensor.D1](model.Linear, s.Xs, s.Ys).Loss,
		theta0:       tensor.NewD1Zeros(2),
		plot:         scalarPlot(s, model.LinearAt),
	}
}

func newQuadraticJob(s dataset.Set) job {
	return job{
		name:         "Quadratic",
		title:        "QuadraticPlot",
		defaultAlpha: 0.001,
		objective:    loss.NewL2[tensor.D1](model.Quadratic, s.Xs, s.Ys).Loss,
		theta0:       tensor.NewD1Zeros(3),
		plot:         scalarPlot(s, model.QuadraticAt),
	}
}

func newPolynomialJob(s dataset.Set, degree int) (job, error) {
	if degree < 0 {
		return job{}, fmt.Errorf("%w: degree must not be negative, got %d", descent.ErrInvalidArgument, degree)
	}
	return job{
		name:         "Polynomial",
		title:        "PolynomialPlot",
		defaultAlpha: 0.001,
		objective:    loss.NewL2[tensor.D1](model.Polynomial, s.Xs, s.Ys).Loss,
		theta0:       tensor.NewD1Filled(degree+1, 0.01),
		plot:         scalarPlot(s, model.PolynomialAt),
	}, nil
}

func newPlaneJob(s dataset.PlaneSet) job {
	return job{
		name:         "Plane",
		title:        "PlaneModel2DProjection",
		defaultAlpha: 0.001,
		objective:    loss.NewL2[tensor.D2](model.Plane, s.Xs, s.Ys).Loss,
		theta0:       tensor.NewD1Zeros(3),
		plot: func(path, title string, theta tensor.D1) error {
			return fitplot.PlaneProjection(path, title, s.Xs, s.Ys, theta)
		},
	}
}

// options is the learning configuration shared by every fit command.
type options struct {
	alpha    float64
	alphaSet bool
	revs     int
	eps      float64
	parallel int
	spsa     int
	seed     uint64
	trace    int
	plotDir  string
	noPlot   bool
}

func (o options) gradientOf() descent.GradientFunc {
	if o.spsa > 0 {
		return descent.SPSAGradient(o.eps, o.spsa, rand.New(rand.NewPCG(o.seed, o.seed)))
	}
	if o.parallel > 1 {
		return descent.ParallelNumericalGradient(o.eps, o.parallel)
	}
	return descent.Gradient(o.eps)
}

func (o options) alphaFor(j job) float64 {
	if o.alphaSet {
		return o.alpha
	}
	return j.defaultAlpha
}

func (o options) savePlot(j job, prefix string, theta tensor.D1) error {
	if o.noPlot {
		return nil
	}
	if err := os.MkdirAll(o.plotDir, 0o755); err != nil {
		return err
	}
	title := prefix + j.title
	path := filepath.Join(o.plotDir, title+".png")
	if err := j.plot(path, title, theta); err != nil {
		return fmt.Errorf("plot %s: %w", title, err)
	}
	return nil
}

func runJob(j job, opts options, logger *log.Logger) (tensor.D1, error) {
	alpha := opts.alphaFor(j)
	logger.Printf("%s Model Test ! alpha=%v revs=%d eps=%v", j.name, alpha, opts.revs, opts.eps)

	initialLoss, err := j.objective(j.theta0)
	if err != nil {
		return nil, err
	}
	logger.Printf("%s initial loss: %v", j.name, initialLoss)

	if err := opts.savePlot(j, "Initial", j.theta0); err != nil {
		return nil, err
	}

	m := descent.NewManager(alpha, opts.revs)
	m.GradientOf = opts.gradientOf()
	if opts.trace > 0 {
		m.Observer = func(rev int, theta tensor.D1) {
			if rev%opts.trace != 0 {
				return
			}
			l, err := j.objective(theta)
			if err != nil {
				return
			}
			logger.Printf("%s rev %d: loss %v theta %v", j.name, rev, l, theta)
		}
	}

	result, err := m.Run(j.objective, j.theta0)
	if err != nil {
		return nil, fmt.Errorf("%s descent: %w", j.name, err)
	}

	finalLoss, err := j.objective(result)
	if err != nil {
		return nil, err
	}
	logger.Printf("%s Descent theta: %v", j.name, result)
	logger.Printf("%s final loss: %v", j.name, finalLoss)

	if err := opts.savePlot(j, "Resulting", result); err != nil {
		return nil, err
	}
	return result, nil
}
