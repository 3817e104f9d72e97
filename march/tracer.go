// Package march walks rays through a signed distance field by sphere tracing
package march

import (
	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/sdf"
	"github.com/lixenwraith/bagel/vmath"
)

// Forward is the camera's march axis
var Forward = vmath.V3F(0, 0, 1)

// Ray is a start point and a march direction
type Ray struct {
	Origin vmath.Vec3F
	Dir    vmath.Vec3F
}

// At returns the point t units along the ray
func (r Ray) At(t float64) vmath.Vec3F {
	return vmath.V3FAdd(r.Origin, vmath.V3FScale(r.Dir, t))
}

// Params bounds a single march
type Params struct {
	Epsilon        float64 // sample below this is a hit
	MaxDistance    float64 // sample above this is an escape
	IterationLimit int     // SDF evaluations per ray
}

func DefaultParams() Params {
	return Params{
		Epsilon:        parameter.MarchEpsilon,
		MaxDistance:    parameter.MarchMaxDistance,
		IterationLimit: parameter.MarchIterationLimit,
	}
}

// Result is the state of a ray when marching stopped
type Result struct {
	Pos      vmath.Vec3F // last position, after the final step
	Distance float64     // last SDF sample
	Steps    int         // SDF evaluations performed
	Travel   float64     // sum of all steps taken

	// Exhausted is set when the iteration budget cut the march short
	// Diagnostic only: Hit still decides on Distance alone
	Exhausted bool

	epsilon float64
}

// Hit reports surface contact by comparing the final sample against epsilon
// A budget-truncated march whose last sample is below epsilon counts as a hit
func (r Result) Hit() bool {
	return r.Distance < r.epsilon
}

// Tracer marches rays through a field
type Tracer struct {
	Field  sdf.Field
	Params Params
}

func NewTracer(field sdf.Field, params Params) *Tracer {
	return &Tracer{Field: field, Params: params}
}

// March steps along the ray by the sampled distance until the sample drops below
// Epsilon, rises above MaxDistance, or IterationLimit evaluations are spent
func (t *Tracer) March(ray Ray) Result {
	p := t.Params
	res := Result{
		Pos:      ray.Origin,
		Distance: p.MaxDistance - p.Epsilon,
		epsilon:  p.Epsilon,
	}

	count := 0
	for res.Distance > p.Epsilon && res.Distance < p.MaxDistance {
		count++
		if count > p.IterationLimit {
			res.Exhausted = true
			break
		}

		res.Distance = t.Field.Distance(res.Pos)
		res.Pos = vmath.V3FAdd(res.Pos, vmath.V3FScale(ray.Dir, res.Distance))
		res.Travel += res.Distance
		res.Steps++
	}

	return res
}
