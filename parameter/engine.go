package parameter

import "time"

// Screen & Loop Timing
const (
	// ScreenWidth is the intensity buffer width in cells
	ScreenWidth = 75

	// ScreenHeight is the intensity buffer height in cells
	ScreenHeight = 75

	// FrameUpdateInterval paces the animation loop (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// CharAspect is the horizontal sampling step per printed column
	// Terminal glyphs are about twice as tall as wide, so each buffer column is printed 1/CharAspect times
	CharAspect = 0.5
)
