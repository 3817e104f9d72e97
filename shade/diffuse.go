// Package shade computes point-light intensity at ray hit points
package shade

import (
	"math"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/vmath"
)

// Diffuse is a single point light with inverse distance falloff
type Diffuse struct {
	Power        float64
	MaxIntensity float64 // saturation bound, applied symmetrically
	MinDistance  float64 // vector lengths below this are degenerate
}

func NewDiffuse() *Diffuse {
	return &Diffuse{
		Power:        parameter.LightPower,
		MaxIntensity: parameter.LightMaxIntensity,
		MinDistance:  parameter.LightMinDistance,
	}
}

// Intensity returns Power·cos(θ)/|L| where θ is the angle between the hit→sensor
// and hit→light vectors and |L| the hit→light distance
// Negative values (light behind the view direction) pass through unclamped
// except for the ±MaxIntensity bound. A light sitting on the hit point saturates
// to +MaxIntensity; a sensor sitting on the hit point has no view direction and yields 0
func (d *Diffuse) Intensity(sensor, hit, light vmath.Vec3F) float64 {
	view := vmath.V3FSub(sensor, hit)
	toLight := vmath.V3FSub(light, hit)

	lightLen := vmath.V3FMag(toLight)
	viewLen := vmath.V3FMag(view)

	if lightLen < d.MinDistance {
		return d.MaxIntensity
	}
	if viewLen < d.MinDistance {
		return 0
	}

	dot := vmath.V3FDot(view, toLight)
	surface := d.Power / lightLen
	v := surface * dot / (lightLen * viewLen)

	if math.IsNaN(v) {
		// Overflowed lengths leave no usable direction
		return 0
	}
	return vmath.Clamp(v, -d.MaxIntensity, d.MaxIntensity)
}
