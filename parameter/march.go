package parameter

// Sphere tracing limits
const (
	// MarchEpsilon is the hit threshold; a sample below it counts as surface contact
	MarchEpsilon = 0.01

	// MarchMaxDistance bounds the SDF sample; a sample above it counts as escaped
	MarchMaxDistance = 200.0

	// MarchIterationLimit is the step budget per ray
	MarchIterationLimit = 100
)

// Scene layout
const (
	// SphereCenterX, SphereCenterY, SphereCenterZ place the sphere inside its tile
	SphereCenterX = 5.0
	SphereCenterY = 5.0
	SphereCenterZ = 5.0

	SphereRadius = 5.0

	// TilePeriod is the side length of the repeating cell
	TilePeriod = 15.0
)

// Blend scene (second primitive merged by smooth union)
const (
	BlendSphereX      = 35.0
	BlendSphereY      = 25.0
	BlendSphereZ      = 50.0
	BlendSphereRadius = 10.0
	BlendSmoothK      = 10.0
)
