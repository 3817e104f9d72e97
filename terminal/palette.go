package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/vmath"
)

// paletteSteps is the number of precomputed colours between Dim and Bright
const paletteSteps = 64

// Palette blends glyph colour from Dim to Bright in Lab space
type Palette struct {
	Dim, Bright colorful.Color
	lut         [paletteSteps]tcell.Color
}

// NewPalette parses two hex colours and precomputes the ramp
func NewPalette(dimHex, brightHex string) (*Palette, error) {
	dim, err := colorful.Hex(dimHex)
	if err != nil {
		return nil, fmt.Errorf("dim colour: %w", err)
	}
	bright, err := colorful.Hex(brightHex)
	if err != nil {
		return nil, fmt.Errorf("bright colour: %w", err)
	}

	p := &Palette{Dim: dim, Bright: bright}
	for i := range p.lut {
		t := float64(i) / float64(paletteSteps-1)
		r, g, b := dim.BlendLab(bright, t).Clamped().RGB255()
		p.lut[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return p, nil
}

// DefaultPalette uses the parameter colours, which are known to parse
func DefaultPalette() *Palette {
	p, err := NewPalette(parameter.GlyphColorDim, parameter.GlyphColorBright)
	if err != nil {
		panic(err)
	}
	return p
}

// Color maps intensity to a ramp colour, clamped to [0, 1]
func (p *Palette) Color(intensity float64) tcell.Color {
	if !vmath.IsFinite(intensity) {
		if intensity > 0 {
			return p.lut[paletteSteps-1]
		}
		return p.lut[0]
	}
	t := vmath.Clamp(intensity, 0, 1)
	return p.lut[int(t*float64(paletteSteps-1)+0.5)]
}
