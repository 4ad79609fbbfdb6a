package descent

import (
	"fmt"
	"math/rand/v2"

	cmathx "github.com/sw965/descent/mathx"
	"github.com/sw965/descent/mathx/randx"
	"github.com/sw965/descent/tensor"
)

// SPSAGradient estimates the gradient by simultaneous perturbation: every
// trial moves all coordinates at once by c*delta, delta a Rademacher vector,
// and costs two evaluations of f no matter how long theta is. The estimates of
// the trials are averaged. The result is random; pass a seeded rng to repeat
// a run.
func SPSAGradient(c float64, trials int, rng *rand.Rand) GradientFunc {
	return func(f Objective, theta tensor.D1) (tensor.D1, error) {
		if err := validateEps(c); err != nil {
			return nil, err
		}
		if trials < 1 {
			return nil, fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidArgument, trials)
		}

		grad := tensor.NewD1ZerosLike(theta)
		for t := 0; t < trials; t++ {
			delta := randx.NewD1Rademacher(len(theta), rng)

			plus := theta.Clone()
			minus := theta.Clone()
			for i, d := range delta {
				plus[i] += c * d
				minus[i] -= c * d
			}

			plusY, err := f(plus)
			if err != nil {
				return nil, err
			}
			minusY, err := f(minus)
			if err != nil {
				return nil, err
			}

			for i, d := range delta {
				grad[i] += cmathx.CentralDifference(plusY, minusY, c*d)
			}
		}
		grad.Scale(1.0 / float64(trials))
		return grad, nil
	}
}
