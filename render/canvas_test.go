package render

import (
	"testing"

	"github.com/lixenwraith/bagel/vmath"
)

// TestCanvasCompose verifies column doubling and the trailing status line
func TestCanvasCompose(t *testing.T) {
	buf := NewIntensityBuffer(3, 3)
	buf.Set(1, 1, 1.0)
	buf.Set(2, 2, 0.5)
	buf.Set(0, 0, 1.0) // row 0 is never printed

	c := NewCanvas()
	got := c.Compose(buf, vmath.V3F(1, 2, -3))
	want := "  @@  \n" +
		"    ;;\n" +
		"Light pos: 1, 2, -3\n"

	if got != want {
		t.Errorf("Expected:\n%q\ngot:\n%q", want, got)
	}
}

// TestCanvasColumns verifies output width for the character aspect
func TestCanvasColumns(t *testing.T) {
	c := NewCanvas()
	if got := c.Columns(75); got != 150 {
		t.Errorf("Expected 150 printed columns, got %d", got)
	}
	if got := c.Rows(75); got != 74 {
		t.Errorf("Expected 74 printed rows, got %d", got)
	}
	for x, want := range []int{0, 0, 1, 1, 2} {
		if got := c.SourceColumn(x); got != want {
			t.Errorf("Screen column %d: expected buffer column %d, got %d", x, want, got)
		}
	}
}

// TestLightStatus verifies light position formatting
func TestLightStatus(t *testing.T) {
	got := LightStatus(vmath.V3F(39.925062479170386, 26.5, -15))
	want := "Light pos: 39.925062479170386, 26.5, -15"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestCanvasNonPositiveAspect verifies a bad aspect falls back instead of looping
func TestCanvasNonPositiveAspect(t *testing.T) {
	c := &Canvas{Ramp: DefaultRamp()}
	if got := c.Columns(10); got != 10 {
		t.Errorf("Expected 1:1 columns for zero aspect, got %d", got)
	}
}
