// Package dataset provides the sample fitting problems used by the driver and
// loads user datasets from JSON.
package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/sw965/omw/encoding/jsonx"

	"github.com/sw965/descent/tensor"
)

var (
	ErrEmpty          = errors.New("dataset: no samples")
	ErrLengthMismatch = errors.New("dataset: xs and ys lengths differ")
)

// Set is a single-feature dataset.
type Set struct {
	Xs tensor.D1 `json:"xs"`
	Ys tensor.D1 `json:"ys"`
}

func (s Set) Validate() error {
	if len(s.Ys) == 0 {
		return ErrEmpty
	}
	if len(s.Xs) != len(s.Ys) {
		return fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, len(s.Xs), len(s.Ys))
	}
	return nil
}

// PlaneSet is a two-feature dataset, one row of Xs per sample.
type PlaneSet struct {
	Xs tensor.D2 `json:"xs"`
	Ys tensor.D1 `json:"ys"`
}

func (s PlaneSet) Validate() error {
	if len(s.Ys) == 0 {
		return ErrEmpty
	}
	if len(s.Xs) != len(s.Ys) {
		return fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, len(s.Xs), len(s.Ys))
	}
	_, err := tensor.NewD2(s.Xs)
	return err
}

func Linear() Set {
	return Set{
		Xs: tensor.D1{2.0, 1.0, 4.0, 3.0},
		Ys: tensor.D1{1.8, 1.2, 4.2, 3.3},
	}
}

func Quadratic() Set {
	return Set{
		Xs: tensor.D1{-1.0, 0.0, 1.0, 2.0, 3.0},
		Ys: tensor.D1{2.55, 2.1, 4.35, 10.2, 18.25},
	}
}

// Sine samples sin(x) at 21 points from -3 to 3.
func Sine() Set {
	n := 21
	s := Set{Xs: make(tensor.D1, n), Ys: make(tensor.D1, n)}
	for i := 0; i < n; i++ {
		x := -3.0 + float64(i)*0.3
		s.Xs[i] = x
		s.Ys[i] = math.Sin(x)
	}
	return s
}

func Plane() PlaneSet {
	return PlaneSet{
		Xs: tensor.D2{
			tensor.D1{1.0, 2.0},
			tensor.D1{2.0, 1.0},
			tensor.D1{3.0, 0.0},
		},
		Ys: tensor.D1{5.0, 6.0, 7.0},
	}
}

func LoadSetJSON(path string) (Set, error) {
	s, err := jsonx.Load[Set](path)
	if err != nil {
		return Set{}, err
	}
	if err := s.Validate(); err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func LoadPlaneSetJSON(path string) (PlaneSet, error) {
	s, err := jsonx.Load[PlaneSet](path)
	if err != nil {
		return PlaneSet{}, err
	}
	if err := s.Validate(); err != nil {
		return PlaneSet{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
