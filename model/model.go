// Package model holds the prediction functions that can be fitted by descent.
// Every model has the shape Func: it maps a batch of inputs and a parameter
// vector to one prediction per input.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sw965/descent/tensor"
)

var (
	ErrParameterCount = errors.New("model: wrong number of parameters")
	ErrShapeMismatch  = errors.New("model: input shape mismatch")
)

type Func[X any] func(xs X, theta tensor.D1) (tensor.D1, error)

// Scalar evaluates a single-feature model at one point. It is what the plots use.
type Scalar func(x float64, theta tensor.D1) float64

func checkParamCount(theta tensor.D1, n int) error {
	if len(theta) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrParameterCount, n, len(theta))
	}
	return nil
}

func mapScalar(xs tensor.D1, theta tensor.D1, f Scalar) tensor.D1 {
	y := make(tensor.D1, len(xs))
	for i, x := range xs {
		y[i] = f(x, theta)
	}
	return y
}

// theta = [w, b]
func LinearAt(x float64, theta tensor.D1) float64 {
	return theta[0]*x + theta[1]
}

// theta = [a, b, c]
func QuadraticAt(x float64, theta tensor.D1) float64 {
	return theta[0]*x*x + theta[1]*x + theta[2]
}

// theta[j] is the coefficient of x^j.
func PolynomialAt(x float64, theta tensor.D1) float64 {
	y := 0.0
	pow := 1.0
	for _, c := range theta {
		y += c * pow
		pow *= x
	}
	return y
}

// Linear predicts w*x + b with theta = [w, b].
func Linear(xs tensor.D1, theta tensor.D1) (tensor.D1, error) {
	if err := checkParamCount(theta, 2); err != nil {
		return nil, err
	}
	return mapScalar(xs, theta, LinearAt), nil
}

// Quadratic predicts a*x^2 + b*x + c with theta = [a, b, c].
func Quadratic(xs tensor.D1, theta tensor.D1) (tensor.D1, error) {
	if err := checkParamCount(theta, 3); err != nil {
		return nil, err
	}
	return mapScalar(xs, theta, QuadraticAt), nil
}

// Polynomial predicts sum_j theta[j]*x^j. The degree is len(theta)-1.
func Polynomial(xs tensor.D1, theta tensor.D1) (tensor.D1, error) {
	if len(theta) == 0 {
		return nil, fmt.Errorf("%w: polynomial needs at least one coefficient", ErrParameterCount)
	}
	return mapScalar(xs, theta, PolynomialAt), nil
}

// Plane predicts w1*x1 + w2*x2 + b for every row [x1, x2] of xs, with
// theta = [w1, w2, b].
func Plane(xs tensor.D2, theta tensor.D1) (tensor.D1, error) {
	if err := checkParamCount(theta, 3); err != nil {
		return nil, err
	}
	if shape := xs.Shape(); shape.Col != 2 {
		return nil, fmt.Errorf("%w: plane needs 2 features per row, got %d", ErrShapeMismatch, shape.Col)
	}

	x, err := xs.ToDense()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	w := mat.NewVecDense(2, []float64{theta[0], theta[1]})
	var wx mat.VecDense
	wx.MulVec(x, w)

	y := make(tensor.D1, len(xs))
	for i := range y {
		y[i] = wx.AtVec(i) + theta[2]
	}
	return y, nil
}

// PlaneFlat is Plane over inputs laid out as [x1_0, x2_0, x1_1, x2_1, ...].
func PlaneFlat(xs tensor.D1, theta tensor.D1) (tensor.D1, error) {
	if err := checkParamCount(theta, 3); err != nil {
		return nil, err
	}
	if len(xs)%2 != 0 {
		return nil, fmt.Errorf("%w: flat plane input has odd length %d", ErrShapeMismatch, len(xs))
	}

	n := len(xs) / 2
	y := make(tensor.D1, n)
	for i := 0; i < n; i++ {
		y[i] = theta[0]*xs[2*i] + theta[1]*xs[2*i+1] + theta[2]
	}
	return y, nil
}
