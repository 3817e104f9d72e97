package sdf

import (
	"math"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/vmath"
)

// Scene folds an ordered list of fields with a combinator
// Adding primitives is a configuration change: append to Fields
type Scene struct {
	Fields  []Field
	Combine Combinator
}

// Distance folds the fields left to right, +Inf for an empty scene
func (s *Scene) Distance(p vmath.Vec3F) float64 {
	if len(s.Fields) == 0 {
		return math.Inf(1)
	}

	combine := s.Combine
	if combine == nil {
		combine = Union
	}

	d := s.Fields[0].Distance(p)
	for _, f := range s.Fields[1:] {
		d = combine(d, f.Distance(p))
	}
	return d
}

// Add appends a primitive and returns the scene for chaining
func (s *Scene) Add(f Field) *Scene {
	s.Fields = append(s.Fields, f)
	return s
}

// TiledSphere is the default primitive: one sphere repeated every TilePeriod
func TiledSphere() Field {
	return Repeat{
		Period: parameter.TilePeriod,
		Field: Sphere{
			Center: vmath.V3F(parameter.SphereCenterX, parameter.SphereCenterY, parameter.SphereCenterZ),
			Radius: parameter.SphereRadius,
		},
	}
}

// DefaultScene is the active scene: a single tiled sphere
func DefaultScene() *Scene {
	return &Scene{
		Fields:  []Field{TiledSphere()},
		Combine: Union,
	}
}

// BlendScene merges the tiled sphere with a large untiled sphere by smooth union
func BlendScene() *Scene {
	return &Scene{
		Fields: []Field{
			TiledSphere(),
			Sphere{
				Center: vmath.V3F(parameter.BlendSphereX, parameter.BlendSphereY, parameter.BlendSphereZ),
				Radius: parameter.BlendSphereRadius,
			},
		},
		Combine: SmoothUnion(parameter.BlendSmoothK),
	}
}

// ByName resolves a scene preset, false when the name is unknown
func ByName(name string) (*Scene, bool) {
	switch name {
	case "", "tiled":
		return DefaultScene(), true
	case "blend":
		return BlendScene(), true
	}
	return nil, false
}

var defaultScene = DefaultScene()

// DistanceToScene samples the default scene
func DistanceToScene(p vmath.Vec3F) float64 {
	return defaultScene.Distance(p)
}
