package randx_test

import (
	"math/rand/v2"
	"testing"

	"github.com/sw965/descent/mathx/randx"
)

func TestNewD1Rademacher(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	d := randx.NewD1Rademacher(1000, rng)

	plus := 0
	for _, e := range d {
		switch e {
		case 1.0:
			plus++
		case -1.0:
		default:
			t.Fatalf("unexpected value %v", e)
		}
	}
	if plus == 0 || plus == len(d) {
		t.Errorf("%d of %d values are +1", plus, len(d))
	}
}
