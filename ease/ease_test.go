package ease

import (
	"math"
	"testing"
)

func TestInOutCubicAnchors(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{0.25, 4 * 0.25 * 0.25 * 0.25},
		{0.75, 1 - math.Pow(-2*0.75+2, 3)/2},
	}

	for _, tt := range tests {
		got := InOutCubic(tt.in)
		if math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("InOutCubic(%g): expected %g, got %g", tt.in, tt.expected, got)
		}
	}
}

func TestInOutCubicMonotonic(t *testing.T) {
	prev := InOutCubic(0)
	for i := 1; i <= 1000; i++ {
		cur := InOutCubic(float64(i) / 1000)
		if cur < prev {
			t.Fatalf("InOutCubic not monotonic at t=%g: %g < %g", float64(i)/1000, cur, prev)
		}
		if cur < 0 || cur > 1 {
			t.Fatalf("InOutCubic(%g) = %g outside [0, 1]", float64(i)/1000, cur)
		}
		prev = cur
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{2, 1, 0.5, 1.5},
		{-4, 4, 0.25, -2},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Lerp(%g, %g, %g): expected %g, got %g", tt.a, tt.b, tt.t, tt.expected, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5): expected 0, got %g", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5): expected 1, got %g", got)
	}
	if got := Clamp01(0.3); got != 0.3 {
		t.Errorf("Clamp01(0.3): expected 0.3, got %g", got)
	}
}
