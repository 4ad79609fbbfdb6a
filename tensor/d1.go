package tensor

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")
	ErrIndexOutOfRange   = errors.New("tensor: index out of range")
)

// D1 is a fixed-length vector of float64. No function in this package changes
// the length of a D1 after it has been created.
type D1 []float64

func NewD1Zeros(n int) D1 {
	return make(D1, n)
}

func NewD1ZerosLike(d1 D1) D1 {
	return NewD1Zeros(len(d1))
}

func NewD1Filled(n int, v float64) D1 {
	y := make(D1, n)
	for i := range y {
		y[i] = v
	}
	return y
}

func checkSameLen(a, b D1) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	return nil
}

func (d1 D1) At(i int) (float64, error) {
	if i < 0 || i >= len(d1) {
		return 0.0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(d1))
	}
	return d1[i], nil
}

func (d1 D1) Set(i int, v float64) error {
	if i < 0 || i >= len(d1) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(d1))
	}
	d1[i] = v
	return nil
}

// Add adds other into d1 in place.
func (d1 D1) Add(other D1) error {
	if err := checkSameLen(d1, other); err != nil {
		return err
	}
	floats.Add(d1, other)
	return nil
}

// Sub subtracts other from d1 in place.
func (d1 D1) Sub(other D1) error {
	if err := checkSameLen(d1, other); err != nil {
		return err
	}
	floats.Sub(d1, other)
	return nil
}

// Scale multiplies every element of d1 by s in place.
func (d1 D1) Scale(s float64) {
	floats.Scale(s, d1)
}

func (d1 D1) Dot(other D1) (float64, error) {
	if err := checkSameLen(d1, other); err != nil {
		return 0.0, err
	}
	return floats.Dot(d1, other), nil
}

func (d1 D1) Sum() float64 {
	return floats.Sum(d1)
}

func (d1 D1) Clone() D1 {
	return slices.Clone(d1)
}

func (d1 D1) Equal(other D1) bool {
	return floats.Equal(d1, other)
}

func (d1 D1) String() string {
	elems := make([]string, len(d1))
	for i, e := range d1 {
		elems[i] = strconv.FormatFloat(e, 'g', -1, 64)
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

func D1Add(a, b D1) (D1, error) {
	y := a.Clone()
	err := y.Add(b)
	if err != nil {
		return nil, err
	}
	return y, nil
}

func D1Sub(a, b D1) (D1, error) {
	y := a.Clone()
	err := y.Sub(b)
	if err != nil {
		return nil, err
	}
	return y, nil
}

func D1Scale(a D1, s float64) D1 {
	y := a.Clone()
	y.Scale(s)
	return y
}

func Dot(a, b D1) (float64, error) {
	return a.Dot(b)
}
