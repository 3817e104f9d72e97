package parameter

// Point light
const (
	// LightPower is the fixed emitted power used by inverse distance falloff
	LightPower = 30.0

	// LightMaxIntensity saturates degenerate or extreme shading results
	LightMaxIntensity = 1000.0

	// LightMinDistance is the length below which light or view vectors are treated as degenerate
	LightMinDistance = 1e-9
)

// Light orbit driven per frame
const (
	LightOrbitCenterX = 25.0
	LightOrbitCenterY = 25.0
	LightOrbitRadius  = 15.0
	LightOrbitDepth   = -15.0

	// LightOrbitStep is the angular advance per frame in radians
	LightOrbitStep = 0.1
)
