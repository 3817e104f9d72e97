package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used by the ray marching pipeline
// Values are immutable; every operation returns a new vector
type Vec3F struct {
	X, Y, Z float64
}

// V3F builds a vector from its components
func V3F(x, y, z float64) Vec3F {
	return Vec3F{X: x, Y: y, Z: z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return V3FDot(v, v)
}

// V3FMag returns the Euclidean length, 0 for the zero vector
func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FMod applies a floating-point remainder to each component
// Result keeps the sign of the dividend (truncated, not Euclidean), so
// negative coordinates wrap into (-m, 0]
func V3FMod(v Vec3F, m float64) Vec3F {
	return Vec3F{
		X: math.Mod(v.X, m),
		Y: math.Mod(v.Y, m),
		Z: math.Mod(v.Z, m),
	}
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FFinite reports whether every component is neither NaN nor infinite
func V3FFinite(v Vec3F) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}
