// Package render runs the per-frame ray marching pass over an intensity buffer
// and turns the buffer into glyph text
package render

import (
	"math"

	"github.com/lixenwraith/bagel/camera"
	"github.com/lixenwraith/bagel/march"
	"github.com/lixenwraith/bagel/sdf"
	"github.com/lixenwraith/bagel/shade"
	"github.com/lixenwraith/bagel/vmath"
)

// FrameStats summarises one rendered frame
type FrameStats struct {
	Cells     int     // cells traced
	Hits      int     // cells whose ray reached a surface
	Exhausted int     // cells whose march ran out of iterations
	Steps     int     // total SDF evaluations
	Mean      float64 // mean intensity over traced cells
	Max       float64 // brightest traced cell
}

// Frame is a rendered frame handed to presentation
type Frame struct {
	Index  int
	Light  vmath.Vec3F
	Buffer *IntensityBuffer
	Stats  FrameStats
}

// Renderer owns the intensity buffer and fills it once per frame
type Renderer struct {
	Tracer *march.Tracer
	Shader *shade.Diffuse
	Camera camera.Generator
	Buffer *IntensityBuffer
}

// NewRenderer wires the default tracer, shader and orthographic camera to field
func NewRenderer(field sdf.Field, width, height int) *Renderer {
	return &Renderer{
		Tracer: march.NewTracer(field, march.DefaultParams()),
		Shader: shade.NewDiffuse(),
		Camera: camera.NewOrthographic(),
		Buffer: NewIntensityBuffer(width, height),
	}
}

// RenderFrame traces every cell except row 0 and column 0 and stores the shaded
// intensity on a hit, 0 otherwise. Row 0 and column 0 are never written
func (r *Renderer) RenderFrame(light vmath.Vec3F) FrameStats {
	var stats FrameStats
	var sum float64
	stats.Max = math.Inf(-1)

	buf := r.Buffer
	for row := 1; row < buf.height; row++ {
		for col := 1; col < buf.width; col++ {
			v := r.Trace(col, row, light, &stats)
			buf.cells[row*buf.width+col] = v

			stats.Cells++
			sum += v
			if v > stats.Max {
				stats.Max = v
			}
		}
	}

	if stats.Cells > 0 {
		stats.Mean = sum / float64(stats.Cells)
	} else {
		stats.Max = 0
	}
	return stats
}

// Trace marches and shades a single cell; stats may be nil
func (r *Renderer) Trace(col, row int, light vmath.Vec3F, stats *FrameStats) float64 {
	res := r.Tracer.March(r.Camera.Ray(col, row))

	if stats != nil {
		stats.Steps += res.Steps
		if res.Exhausted {
			stats.Exhausted++
		}
	}

	if !res.Hit() {
		return 0
	}
	if stats != nil {
		stats.Hits++
	}
	return r.Shader.Intensity(r.Camera.Sensor(col, row), res.Pos, light)
}
