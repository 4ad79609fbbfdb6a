package randx

import (
	"math/rand/v2"

	"github.com/sw965/omw/mathx/randx"

	"github.com/sw965/descent/tensor"
)

// Rademacher returns +1 or -1 with equal probability.
func Rademacher(rng *rand.Rand) float64 {
	if randx.Bool(rng) {
		return 1.0
	}
	return -1.0
}

func NewD1Rademacher(n int, rng *rand.Rand) tensor.D1 {
	y := make(tensor.D1, n)
	for i := range y {
		y[i] = Rademacher(rng)
	}
	return y
}
