// Package descent fits model parameters by gradient descent on numerically
// estimated gradients.
package descent

import (
	"errors"
	"fmt"

	"github.com/sw965/descent/optimizer"
	"github.com/sw965/descent/tensor"
)

var (
	ErrInvalidArgument   = errors.New("descent: invalid argument")
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)

// Objective maps a parameter vector to a scalar loss.
type Objective func(theta tensor.D1) (float64, error)

// GradientFunc returns the gradient of an objective at theta.
type GradientFunc func(f Objective, theta tensor.D1) (tensor.D1, error)

// Observer receives the parameters produced by every revision. rev starts at 1.
type Observer func(rev int, theta tensor.D1)

// Revise applies f to x n times. n <= 0 returns x as is.
func Revise[T any](f func(T) T, n int, x T) T {
	for n > 0 {
		x = f(x)
		n--
	}
	return x
}

// TryRevise is Revise for a fallible f. It stops at the first error.
func TryRevise[T any](f func(T) (T, error), n int, x T) (T, error) {
	for n > 0 {
		var err error
		x, err = f(x)
		if err != nil {
			return x, err
		}
		n--
	}
	return x, nil
}

func calculate(objective Objective, gradientOf GradientFunc, theta tensor.D1, alpha float64, revs int, observer Observer) (tensor.D1, error) {
	opt := optimizer.NewSGD(alpha)
	rev := 0
	revision := func(current tensor.D1) (tensor.D1, error) {
		grad, err := gradientOf(objective, current)
		if err != nil {
			return nil, err
		}
		if len(grad) != len(current) {
			return nil, fmt.Errorf("%w: gradient has %d elements, theta has %d", ErrDimensionMismatch, len(grad), len(current))
		}

		updated, err := opt.Step(current, grad)
		if err != nil {
			return nil, err
		}

		rev++
		if observer != nil {
			observer(rev, updated.Clone())
		}
		return updated, nil
	}

	y, err := TryRevise(revision, revs, theta.Clone())
	if err != nil {
		return nil, err
	}
	return y, nil
}

// CalculateGradientDescent runs exactly revs revisions of theta <- theta - alpha*grad
// starting from theta0 and returns the last theta. There is no convergence
// check. revs <= 0 returns a copy of theta0. theta0 is never modified.
func CalculateGradientDescent(objective Objective, gradientOf GradientFunc, theta0 tensor.D1, alpha float64, revs int) (tensor.D1, error) {
	return calculate(objective, gradientOf, theta0, alpha, revs, nil)
}

// Manager holds the learning configuration of a run.
type Manager struct {
	Alpha float64
	Revs  int

	// GradientOf defaults to Gradient(DefaultEps) when nil.
	GradientOf GradientFunc
	Observer   Observer
}

func NewManager(alpha float64, revs int) *Manager {
	return &Manager{Alpha: alpha, Revs: revs}
}

func (m *Manager) gradientOf() GradientFunc {
	if m.GradientOf == nil {
		return Gradient(DefaultEps)
	}
	return m.GradientOf
}

// CalculateGradientDescent is the package-level function with the manager's
// Observer attached.
func (m *Manager) CalculateGradientDescent(objective Objective, gradientOf GradientFunc, theta0 tensor.D1, alpha float64, revs int) (tensor.D1, error) {
	return calculate(objective, gradientOf, theta0, alpha, revs, m.Observer)
}

// Run descends from theta0 with the manager's Alpha, Revs and GradientOf.
func (m *Manager) Run(objective Objective, theta0 tensor.D1) (tensor.D1, error) {
	return calculate(objective, m.gradientOf(), theta0, m.Alpha, m.Revs, m.Observer)
}
