// Package animation drives the light position as a pure function of frame index
package animation

import (
	"math"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/vmath"
)

// LightDriver returns the light position for a frame
type LightDriver interface {
	LightAt(frame int) vmath.Vec3F
}

// Orbit circles the light around a centre at a fixed depth
// Frame n uses angle (n+1)·Step, so frame 0 is already one step in
type Orbit struct {
	CenterX, CenterY float64
	Radius           float64
	Depth            float64
	Step             float64
}

func NewOrbit() *Orbit {
	return &Orbit{
		CenterX: parameter.LightOrbitCenterX,
		CenterY: parameter.LightOrbitCenterY,
		Radius:  parameter.LightOrbitRadius,
		Depth:   parameter.LightOrbitDepth,
		Step:    parameter.LightOrbitStep,
	}
}

func (o *Orbit) LightAt(frame int) vmath.Vec3F {
	tick := float64(frame+1) * o.Step
	return vmath.V3F(
		o.CenterX+o.Radius*math.Cos(tick),
		o.CenterY+o.Radius*math.Sin(tick),
		o.Depth,
	)
}

// Fixed keeps the light in one place
type Fixed struct {
	Pos vmath.Vec3F
}

func (f Fixed) LightAt(int) vmath.Vec3F {
	return f.Pos
}
