package render

import (
	"math"

	"github.com/lixenwraith/bagel/parameter"
)

// Ramp maps intensity to glyphs, darkest first
type Ramp []rune

func DefaultRamp() Ramp {
	return Ramp(parameter.GlyphRamp)
}

// Index returns floor(len·i − bias) clamped to the ramp
// NaN and negative intensities map to the first glyph, anything past the end to the last
func (r Ramp) Index(intensity float64) int {
	if len(r) == 0 {
		return -1
	}
	scaled := math.Floor(float64(len(r))*intensity - parameter.GlyphIndexBias)
	if math.IsNaN(scaled) || scaled < 0 {
		return 0
	}
	last := len(r) - 1
	if scaled >= float64(last) {
		return last
	}
	return int(scaled)
}

// Glyph returns the glyph for intensity, a space for an empty ramp
func (r Ramp) Glyph(intensity float64) rune {
	i := r.Index(intensity)
	if i < 0 {
		return ' '
	}
	return r[i]
}
