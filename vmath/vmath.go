package vmath

import (
	"math"
)

// Tolerance is the comparison slack used for float equality checks
const Tolerance = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NearlyEqual compares two floats within an absolute tolerance
func NearlyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// V3FNearlyEqual compares two vectors component-wise within tol
func V3FNearlyEqual(a, b Vec3F, tol float64) bool {
	return NearlyEqual(a.X, b.X, tol) && NearlyEqual(a.Y, b.Y, tol) && NearlyEqual(a.Z, b.Z, tol)
}
