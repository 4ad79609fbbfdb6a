package tensor_test

import (
	"errors"
	"testing"

	"github.com/sw965/descent/tensor"
)

func TestD1Add(t *testing.T) {
	a := tensor.D1{1.0, -2.0, 3.5}
	b := tensor.D1{0.5, 2.0, -1.5}

	result, err := tensor.D1Add(a, b)
	if err != nil {
		t.Fatalf("D1Add: %v", err)
	}
	for i := range a {
		if result[i] != a[i]+b[i] {
			t.Errorf("result[%d] = %v, want %v", i, result[i], a[i]+b[i])
		}
	}

	if !a.Equal(tensor.D1{1.0, -2.0, 3.5}) {
		t.Errorf("D1Add mutated its input: %v", a)
	}
}

func TestD1SubEqualsAddNegated(t *testing.T) {
	a := tensor.D1{4.0, 5.0, 6.0, -7.0}
	b := tensor.D1{1.5, -2.0, 0.0, 3.0}

	sub, err := tensor.D1Sub(a, b)
	if err != nil {
		t.Fatalf("D1Sub: %v", err)
	}

	add, err := tensor.D1Add(a, tensor.D1Scale(b, -1.0))
	if err != nil {
		t.Fatalf("D1Add: %v", err)
	}

	if !sub.Equal(add) {
		t.Errorf("sub = %v, add(a, -b) = %v", sub, add)
	}
}

func TestD1DimensionMismatch(t *testing.T) {
	a := tensor.D1{1.0, 2.0}
	b := tensor.D1{1.0, 2.0, 3.0}

	if _, err := tensor.D1Add(a, b); !errors.Is(err, tensor.ErrDimensionMismatch) {
		t.Errorf("D1Add err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := tensor.D1Sub(a, b); !errors.Is(err, tensor.ErrDimensionMismatch) {
		t.Errorf("D1Sub err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := tensor.Dot(a, b); !errors.Is(err, tensor.ErrDimensionMismatch) {
		t.Errorf("Dot err = %v, want ErrDimensionMismatch", err)
	}
	if err := a.Add(b); !errors.Is(err, tensor.ErrDimensionMismatch) {
		t.Errorf("Add err = %v, want ErrDimensionMismatch", err)
	}
	if !a.Equal(tensor.D1{1.0, 2.0}) {
		t.Errorf("failed Add changed the receiver: %v", a)
	}
}

func TestD1Scale(t *testing.T) {
	a := tensor.D1{1.25, -3.0, 8.0}

	if result := tensor.D1Scale(a, 1.0); !result.Equal(a) {
		t.Errorf("D1Scale(a, 1) = %v, want %v", result, a)
	}

	if result := tensor.D1Scale(a, 0.0); !result.Equal(tensor.NewD1Zeros(len(a))) {
		t.Errorf("D1Scale(a, 0) = %v, want zeros", result)
	}
}

func TestDotCommutes(t *testing.T) {
	a := tensor.D1{1.0, 2.0, 3.0}
	b := tensor.D1{-4.0, 0.5, 2.0}

	ab, err := tensor.Dot(a, b)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	ba, err := tensor.Dot(b, a)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}

	if ab != ba {
		t.Errorf("Dot(a, b) = %v, Dot(b, a) = %v", ab, ba)
	}
	if ab != 3.0 {
		t.Errorf("Dot(a, b) = %v, want 3", ab)
	}
}

func TestD1Clone(t *testing.T) {
	a := tensor.D1{-1.0, -2.0, -3.0}
	clone := a.Clone()
	if !clone.Equal(a) {
		t.Fatalf("clone = %v, want %v", clone, a)
	}

	clone[0] = 1000.0
	if a[0] != -1.0 {
		t.Errorf("mutating the clone changed the original: %v", a)
	}
}

func TestD1AtSet(t *testing.T) {
	a := tensor.NewD1Zeros(3)

	if err := a.Set(2, 7.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := a.At(2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 7.5 {
		t.Errorf("At(2) = %v, want 7.5", v)
	}

	for _, i := range []int{-1, 3, 100} {
		if _, err := a.At(i); !errors.Is(err, tensor.ErrIndexOutOfRange) {
			t.Errorf("At(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
		if err := a.Set(i, 1.0); !errors.Is(err, tensor.ErrIndexOutOfRange) {
			t.Errorf("Set(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestD1String(t *testing.T) {
	a := tensor.D1{0.9, 1, -2.5}
	if got := a.String(); got != "[0.9, 1, -2.5]" {
		t.Errorf("String() = %q", got)
	}
}
