package model_test

import (
	"errors"
	"testing"

	"github.com/sw965/descent/mathx"
	"github.com/sw965/descent/model"
	"github.com/sw965/descent/tensor"
)

func TestLinear(t *testing.T) {
	xs := tensor.D1{2.0, 1.0, 4.0, 3.0}
	ys, err := model.Linear(xs, tensor.D1{2.0, -1.0})
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	expected := tensor.D1{3.0, 1.0, 7.0, 5.0}
	if !ys.Equal(expected) {
		t.Errorf("Linear = %v, want %v", ys, expected)
	}

	zeros, err := model.Linear(xs, tensor.D1{0.0, 0.0})
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	if !zeros.Equal(tensor.NewD1Zeros(len(xs))) {
		t.Errorf("Linear at zero theta = %v", zeros)
	}
}

func TestQuadratic(t *testing.T) {
	xs := tensor.D1{-1.0, 0.0, 1.0, 2.0}
	ys, err := model.Quadratic(xs, tensor.D1{1.0, 2.0, 3.0})
	if err != nil {
		t.Fatalf("Quadratic: %v", err)
	}
	expected := tensor.D1{2.0, 3.0, 6.0, 11.0}
	if !ys.Equal(expected) {
		t.Errorf("Quadratic = %v, want %v", ys, expected)
	}
}

func TestPolynomialMatchesQuadratic(t *testing.T) {
	xs := tensor.D1{-3.0, -0.3, 0.0, 1.2, 2.7}
	quad, err := model.Quadratic(xs, tensor.D1{1.5, -2.0, 0.25})
	if err != nil {
		t.Fatalf("Quadratic: %v", err)
	}
	poly, err := model.Polynomial(xs, tensor.D1{0.25, -2.0, 1.5})
	if err != nil {
		t.Fatalf("Polynomial: %v", err)
	}

	for i := range xs {
		if !mathx.IsClose(quad[i], poly[i], 1e-12) {
			t.Errorf("x = %v: quadratic %v, polynomial %v", xs[i], quad[i], poly[i])
		}
	}
}

func TestPlaneMatchesPlaneFlat(t *testing.T) {
	xs := tensor.D2{{1.0, 2.0}, {2.0, 1.0}, {3.0, 0.0}}
	theta := tensor.D1{0.5, -1.0, 2.0}

	plane, err := model.Plane(xs, theta)
	if err != nil {
		t.Fatalf("Plane: %v", err)
	}
	flat, err := model.PlaneFlat(xs.Flatten(), theta)
	if err != nil {
		t.Fatalf("PlaneFlat: %v", err)
	}

	expected := tensor.D1{0.5, 2.0, 3.5}
	if !plane.Equal(expected) {
		t.Errorf("Plane = %v, want %v", plane, expected)
	}
	if !flat.Equal(expected) {
		t.Errorf("PlaneFlat = %v, want %v", flat, expected)
	}
}

func TestParameterCount(t *testing.T) {
	xs := tensor.D1{1.0, 2.0}
	if _, err := model.Linear(xs, tensor.D1{1.0}); !errors.Is(err, model.ErrParameterCount) {
		t.Errorf("Linear err = %v", err)
	}
	if _, err := model.Quadratic(xs, tensor.D1{1.0, 2.0}); !errors.Is(err, model.ErrParameterCount) {
		t.Errorf("Quadratic err = %v", err)
	}
	if _, err := model.Polynomial(xs, tensor.D1{}); !errors.Is(err, model.ErrParameterCount) {
		t.Errorf("Polynomial err = %v", err)
	}
	if _, err := model.Plane(tensor.D2{{1.0, 2.0}}, tensor.D1{1.0}); !errors.Is(err, model.ErrParameterCount) {
		t.Errorf("Plane err = %v", err)
	}
}

func TestPlaneShapeMismatch(t *testing.T) {
	theta := tensor.D1{1.0, 1.0, 1.0}
	if _, err := model.Plane(tensor.D2{{1.0, 2.0, 3.0}}, theta); !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("Plane err = %v", err)
	}
	if _, err := model.PlaneFlat(tensor.D1{1.0, 2.0, 3.0}, theta); !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("PlaneFlat err = %v", err)
	}
}
