package descent

import (
	"fmt"

	"github.com/sw965/omw/mathx"
	"github.com/sw965/omw/parallel"

	cmathx "github.com/sw965/descent/mathx"
	"github.com/sw965/descent/tensor"
)

const DefaultEps = 1e-6

func validateEps(eps float64) error {
	if eps <= 0 || mathx.IsNaN(eps) || mathx.IsInf(eps, 0) {
		return fmt.Errorf("%w: eps must be a finite positive number, got %v", ErrInvalidArgument, eps)
	}
	return nil
}

func centralDifferenceAt(f Objective, theta tensor.D1, i int, eps float64) (float64, error) {
	plus := theta.Clone()
	plus[i] += eps
	plusY, err := f(plus)
	if err != nil {
		return 0.0, err
	}

	minus := theta.Clone()
	minus[i] -= eps
	minusY, err := f(minus)
	if err != nil {
		return 0.0, err
	}
	return cmathx.CentralDifference(plusY, minusY, eps), nil
}

// NumericalGradient estimates the gradient of f at theta with central
// differences, evaluating f exactly 2*len(theta) times. theta is not modified.
// eps is not guarded against cancellation; very small values lose precision.
func NumericalGradient(f Objective, theta tensor.D1, eps float64) (tensor.D1, error) {
	if err := validateEps(eps); err != nil {
		return nil, err
	}

	grad := tensor.NewD1ZerosLike(theta)
	for i := range theta {
		g, err := centralDifferenceAt(f, theta, i, eps)
		if err != nil {
			return nil, err
		}
		grad[i] = g
	}
	return grad, nil
}

// Gradient binds eps to NumericalGradient.
func Gradient(eps float64) GradientFunc {
	return func(f Objective, theta tensor.D1) (tensor.D1, error) {
		return NumericalGradient(f, theta, eps)
	}
}

// ParallelNumericalGradient spreads the coordinates of NumericalGradient over
// p goroutines. Every coordinate owns its slot of the result, so the output is
// identical to the sequential estimator. f must be safe for concurrent use.
func ParallelNumericalGradient(eps float64, p int) GradientFunc {
	return func(f Objective, theta tensor.D1) (tensor.D1, error) {
		if err := validateEps(eps); err != nil {
			return nil, err
		}
		if p < 1 {
			return nil, fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidArgument, p)
		}

		grad := tensor.NewD1ZerosLike(theta)
		if len(theta) == 0 {
			return grad, nil
		}
		err := parallel.For(len(theta), p, func(workerId, idx int) error {
			g, err := centralDifferenceAt(f, theta, idx, eps)
			if err != nil {
				return err
			}
			grad[idx] = g
			return nil
		})
		if err != nil {
			return nil, err
		}
		return grad, nil
	}
}
