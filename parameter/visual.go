package parameter

// GlyphRamp orders glyphs from darkest to brightest
const GlyphRamp = " .,-~:;=!*#$@"

// GlyphIndexBias shifts the scaled intensity down so exact boundaries fall to the dimmer glyph
const GlyphIndexBias = 0.01

// Colour ramp endpoints for the screen sink
const (
	GlyphColorDim    = "#1b2a49"
	GlyphColorBright = "#ffe9a8"
)
