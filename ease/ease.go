// Package ease provides the easing curves used by the zoom parameter
// resolver. All functions map a normalized progress value in [0, 1]
// to a normalized progress value in [0, 1]; inputs outside that range
// must be clamped by the caller (see [Clamp01]).
package ease

// InOutCubic applies a piecewise cubic acceleration/deceleration curve:
// slow start, fast middle, slow end. InOutCubic(0) = 0, InOutCubic(0.5) = 0.5,
// InOutCubic(1) = 1, monotonically increasing in between.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps t to the [0, 1] range.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
