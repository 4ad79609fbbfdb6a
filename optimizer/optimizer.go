package optimizer

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"

	"github.com/sw965/descent/tensor"
)

func toBlas64(d1 tensor.D1) blas64.Vector {
	return blas64.Vector{N: len(d1), Inc: 1, Data: d1}
}

// SGD is the plain gradient step w' = w - LearningRate*grad.
// LearningRate is not validated; zero leaves w where it is and a negative
// value climbs instead of descends.
type SGD struct {
	LearningRate float64
}

func NewSGD(lr float64) *SGD {
	return &SGD{LearningRate: lr}
}

// Train updates w in place.
func (opt *SGD) Train(w, grad tensor.D1) error {
	if len(w) != len(grad) {
		return fmt.Errorf("%w: len(w) = %d, len(grad) = %d", tensor.ErrDimensionMismatch, len(w), len(grad))
	}
	blas64.Axpy(-opt.LearningRate, toBlas64(grad), toBlas64(w))
	return nil
}

// Step returns the updated parameters and leaves w untouched.
func (opt *SGD) Step(w, grad tensor.D1) (tensor.D1, error) {
	y := w.Clone()
	if err := opt.Train(y, grad); err != nil {
		return nil, err
	}
	return y, nil
}
