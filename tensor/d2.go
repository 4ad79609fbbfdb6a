package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// D2 is a batch of input vectors, one row per sample.
type D2 []D1

func NewD2(rows []D1) (D2, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: D2 needs at least one row", ErrDimensionMismatch)
	}

	c := len(rows[0])
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrDimensionMismatch, i)
		}
		if len(row) != c {
			return nil, fmt.Errorf("%w: row 0 has %d columns, row %d has %d", ErrDimensionMismatch, c, i, len(row))
		}
	}

	y := make(D2, len(rows))
	for i, row := range rows {
		y[i] = row.Clone()
	}
	return y, nil
}

func NewD2Zeros(r, c int) D2 {
	y := make(D2, r)
	for i := range y {
		y[i] = make(D1, c)
	}
	return y
}

type D2Shape struct {
	Row int
	Col int
}

func (d2 D2) Shape() D2Shape {
	if len(d2) == 0 {
		return D2Shape{}
	}
	return D2Shape{Row: len(d2), Col: len(d2[0])}
}

func (d2 D2) Col(j int) (D1, error) {
	y := make(D1, len(d2))
	for i, row := range d2 {
		v, err := row.At(j)
		if err != nil {
			return nil, err
		}
		y[i] = v
	}
	return y, nil
}

func (d2 D2) Clone() D2 {
	y := make(D2, len(d2))
	for i, row := range d2 {
		y[i] = row.Clone()
	}
	return y
}

// Flatten lays the rows out one after another.
func (d2 D2) Flatten() D1 {
	shape := d2.Shape()
	y := make(D1, 0, shape.Row*shape.Col)
	for _, row := range d2 {
		y = append(y, row...)
	}
	return y
}

// ToDense copies d2 into a gonum matrix. Ragged rows are rejected.
func (d2 D2) ToDense() (*mat.Dense, error) {
	shape := d2.Shape()
	if shape.Row == 0 || shape.Col == 0 {
		return nil, fmt.Errorf("%w: empty D2", ErrDimensionMismatch)
	}
	for i, row := range d2 {
		if len(row) != shape.Col {
			return nil, fmt.Errorf("%w: row 0 has %d columns, row %d has %d", ErrDimensionMismatch, shape.Col, i, len(row))
		}
	}
	return mat.NewDense(shape.Row, shape.Col, d2.Flatten()), nil
}
