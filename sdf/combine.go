package sdf

import (
	"math"
)

// Combinator merges two distance samples into one
type Combinator func(d1, d2 float64) float64

// Union is the hard minimum of two fields
func Union(d1, d2 float64) float64 {
	return math.Min(d1, d2)
}

// SmoothUnion returns a cubic smooth minimum with blend radius k
// Surfaces closer than k melt into each other; k <= 0 falls back to Union
func SmoothUnion(k float64) Combinator {
	if k <= 0 {
		return Union
	}
	return func(d1, d2 float64) float64 {
		return Smooth(d1, d2, k)
	}
}

// Smooth is the cubic polynomial smooth minimum
// h = max(k-|d1-d2|, 0)/k, result = min(d1, d2) - h³·k/6
func Smooth(d1, d2, k float64) float64 {
	h := math.Max(k-math.Abs(d1-d2), 0) / k
	return math.Min(d1, d2) - h*h*h*k/6
}
