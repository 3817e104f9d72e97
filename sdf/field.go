// Package sdf defines signed distance fields and the combinators that
// merge them into a scene
package sdf

import (
	"github.com/lixenwraith/bagel/vmath"
)

// Field samples the signed distance from a point to the nearest surface
// Negative inside, zero on the surface, positive outside
type Field interface {
	Distance(p vmath.Vec3F) float64
}

// FieldFunc adapts a function into a Field
type FieldFunc func(p vmath.Vec3F) float64

func (f FieldFunc) Distance(p vmath.Vec3F) float64 {
	return f(p)
}

// Sphere is an analytic sphere field
type Sphere struct {
	Center vmath.Vec3F
	Radius float64
}

func (s Sphere) Distance(p vmath.Vec3F) float64 {
	return vmath.V3FMag(vmath.V3FSub(p, s.Center)) - s.Radius
}

// Repeat tiles the wrapped field with the given period on every axis
// Wrapping uses the truncated remainder, so tiling is only periodic within one sign of each coordinate
type Repeat struct {
	Period float64
	Field  Field
}

func (r Repeat) Distance(p vmath.Vec3F) float64 {
	return r.Field.Distance(vmath.V3FMod(p, r.Period))
}
