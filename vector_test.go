package rcgal

import "testing"
import "math"

import "github.com/rcgal/rcgal/efloat"

func TestVectorHasXY(t *testing.T) {
	vector := mustVector(1.1, 2.2)
	if vector.X() != 1.1 || vector.Y() != 2.2 {
		t.Fatalf("expected (1.1, 2.2), got %v", vector)
	}
	vector = mustVector(3.3, 4.4)
	if vector.X() != 3.3 || vector.Y() != 4.4 {
		t.Fatalf("expected (3.3, 4.4), got %v", vector)
	}

	for i, bad := range []float64{ inf, -inf, nan } {
		if _, err := NewVector(bad, 1); err != NotFiniteInput {
			t.Fatalf("test #%d: NewVector(%g, 1) expected NotFiniteInput, got %v", i, bad, err)
		}
		if _, err := NewVector(1, bad); err != NotFiniteInput {
			t.Fatalf("test #%d: NewVector(1, %g) expected NotFiniteInput, got %v", i, bad, err)
		}
	}
}

func TestVectorLength(t *testing.T) {
	tests := []struct {
		x, y float64
		length float64
	}{
		{3, 4, 5}, {-3, 4, 5}, {0, 0, 0}, {0, -2, 2},
		{3e300, 4e300, 5e300}, {3e-300, 4e-300, 5e-300},
		{math.MaxFloat64, 0, math.MaxFloat64},
		{1e-320, 0, 1e-320},
	}

	for i, test := range tests {
		length, err := mustVector(test.x, test.y).Length()
		if err != nil {
			t.Fatalf("test #%d: (%g, %g) unexpected error %v", i, test.x, test.y, err)
		}
		if !relEq(length, test.length) {
			t.Fatalf("test #%d: (%g, %g) expected length %g, got %g", i, test.x, test.y, test.length, length)
		}
	}

	_, err := mustVector(math.MaxFloat64, -math.MaxFloat64).Length()
	if err != Overflow {
		t.Fatalf("expected Overflow, got %v", err)
	}
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		x, y float64
		outX, outY float64
	}{
		{1, 1, 1/math.Sqrt2, 1/math.Sqrt2},
		{3, 4, 0.6, 0.8},
		{-5, 0, -1, 0},
		{0, 1e-300, 0, 1},
		{math.MaxFloat64, math.MaxFloat64, 1/math.Sqrt2, 1/math.Sqrt2},
		{-math.MaxFloat64, math.MaxFloat64, -1/math.Sqrt2, 1/math.Sqrt2},
		{efloat.MinNormal, 0, 1, 0},
		{0, -efloat.MinNormal, 0, -1},
		{efloat.MinNormal, efloat.MinNormal, 1/math.Sqrt2, 1/math.Sqrt2},
		{1, 1e-320, 1, 1e-320},
	}

	for i, test := range tests {
		unit, err := mustVector(test.x, test.y).Normalize()
		if err != nil {
			t.Fatalf("test #%d: (%g, %g) unexpected error %v", i, test.x, test.y, err)
		}
		if !relEq(unit.X(), test.outX) || !relEq(unit.Y(), test.outY) {
			t.Fatalf("test #%d: (%g, %g) expected (%g, %g), got %v", i, test.x, test.y, test.outX, test.outY, unit)
		}
		if !unit.IsUnit() {
			t.Fatalf("test #%d: (%g, %g) normalized to non-unit vector %v", i, test.x, test.y, unit)
		}
	}
}

func TestVectorNormalizeInvalid(t *testing.T) {
	belowNormal := math.Nextafter(efloat.MinNormal, 0)
	tests := []struct{ x, y float64 }{
		{0, 0},
		{math.Copysign(0, -1), 0},
		{belowNormal, 0},
		{0, -belowNormal},
		{belowNormal, belowNormal},
		{math.SmallestNonzeroFloat64, 0},
	}

	for i, test := range tests {
		_, err := mustVector(test.x, test.y).Normalize()
		if err != InvalidInput {
			t.Fatalf("test #%d: (%g, %g) expected InvalidInput, got %v", i, test.x, test.y, err)
		}
	}

	// non-finite vectors from raw arithmetic can't be normalized either
	huge := mustVector(math.MaxFloat64, 0)
	if _, err := huge.Add(huge).Normalize(); err != InvalidInput {
		t.Fatalf("expected InvalidInput for overflowed vector, got %v", err)
	}
}

func TestVectorIsUnit(t *testing.T) {
	tests := []struct {
		x, y float64
		unit bool
	}{
		{1, 0, true}, {0, -1, true}, {0.6, 0.8, true},
		{0, 0, false}, {1, 1, false}, {0.5, 0, false},
		{1 + 1e-10, 0, false},
	}
	for i, test := range tests {
		if mustVector(test.x, test.y).IsUnit() != test.unit {
			t.Fatalf("test #%d: (%g, %g) expected IsUnit() = %t", i, test.x, test.y, test.unit)
		}
	}
}
