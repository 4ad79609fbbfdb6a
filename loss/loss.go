// Package loss turns a model and a fixed dataset into a scalar objective.
package loss

import (
	"errors"
	"fmt"

	"github.com/sw965/descent/model"
	"github.com/sw965/descent/tensor"
)

var ErrShapeMismatch = errors.New("loss: prediction and target lengths differ")

// L2 is the sum-of-squared-error objective of Model over the dataset (Xs, Ys).
// Loss recomputes the full prediction on every call.
type L2[X any] struct {
	Model model.Func[X]
	Xs    X
	Ys    tensor.D1
}

func NewL2[X any](m model.Func[X], xs X, ys tensor.D1) *L2[X] {
	return &L2[X]{Model: m, Xs: xs, Ys: ys}
}

func (l *L2[X]) Loss(theta tensor.D1) (float64, error) {
	predYs, err := l.Model(l.Xs, theta)
	if err != nil {
		return 0.0, err
	}
	return SumSquaredError(predYs, l.Ys)
}

// L2Loss is the curried form: L2Loss(m)(xs, ys)(theta).
func L2Loss[X any](m model.Func[X]) func(X, tensor.D1) func(tensor.D1) (float64, error) {
	return func(xs X, ys tensor.D1) func(tensor.D1) (float64, error) {
		return NewL2(m, xs, ys).Loss
	}
}

func SumSquaredError(predYs, ys tensor.D1) (float64, error) {
	if len(predYs) != len(ys) {
		return 0.0, fmt.Errorf("%w: predicted %d, target %d", ErrShapeMismatch, len(predYs), len(ys))
	}

	sum := 0.0
	for i := range ys {
		diff := ys[i] - predYs[i]
		sum += diff * diff
	}
	return sum, nil
}
