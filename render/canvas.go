package render

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/vmath"
)

// Canvas lays an intensity buffer out as terminal text
// Rows start at 1 (row 0 is never traced); columns are resampled by Aspect
// so square buffer cells look square in tall terminal glyphs
type Canvas struct {
	Ramp   Ramp
	Aspect float64
}

func NewCanvas() *Canvas {
	return &Canvas{Ramp: DefaultRamp(), Aspect: parameter.CharAspect}
}

// Columns returns the printed width for a buffer of the given width
func (c *Canvas) Columns(width int) int {
	n := 0
	for pos := 0.0; int(pos) < width; pos += c.step() {
		n++
	}
	return n
}

// SourceColumn maps a printed column back to its buffer column
func (c *Canvas) SourceColumn(screenCol int) int {
	return int(float64(screenCol) * c.step())
}

// step is the buffer advance per printed column, 1 for a non-positive Aspect
func (c *Canvas) step() float64 {
	if c.Aspect <= 0 {
		return 1
	}
	return c.Aspect
}

// Rows returns the printed height for a buffer of the given height
func (c *Canvas) Rows(height int) int {
	if height <= 1 {
		return 0
	}
	return height - 1
}

// Line renders a single buffer row as glyph text without a newline
func (c *Canvas) Line(buf *IntensityBuffer, row int) string {
	var sb strings.Builder
	cols := c.Columns(buf.Width())
	sb.Grow(cols)
	for x := 0; x < cols; x++ {
		sb.WriteRune(c.Ramp.Glyph(buf.At(c.SourceColumn(x), row)))
	}
	return sb.String()
}

// Compose renders rows 1..H-1 followed by the light status line
func (c *Canvas) Compose(buf *IntensityBuffer, light vmath.Vec3F) string {
	var sb strings.Builder
	for row := 1; row < buf.Height(); row++ {
		sb.WriteString(c.Line(buf, row))
		sb.WriteByte('\n')
	}
	sb.WriteString(LightStatus(light))
	sb.WriteByte('\n')
	return sb.String()
}

// LightStatus formats the light position line
func LightStatus(light vmath.Vec3F) string {
	return "Light pos: " + formatFloat(light.X) + ", " + formatFloat(light.Y) + ", " + formatFloat(light.Z)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
