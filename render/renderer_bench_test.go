package render

import (
	"testing"

	"github.com/lixenwraith/bagel/animation"
	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/sdf"
)

func benchmarkScene(b *testing.B, scene *sdf.Scene) {
	r := NewRenderer(scene, parameter.ScreenWidth, parameter.ScreenHeight)
	orbit := animation.NewOrbit()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderFrame(orbit.LightAt(i))
	}
}

// BenchmarkRenderFrameTiled measures one frame of the tiled scene
func BenchmarkRenderFrameTiled(b *testing.B) {
	benchmarkScene(b, sdf.DefaultScene())
}

// BenchmarkRenderFrameBlend measures one frame of the blend scene
func BenchmarkRenderFrameBlend(b *testing.B) {
	benchmarkScene(b, sdf.BlendScene())
}

// BenchmarkCompose measures text composition of a frame
func BenchmarkCompose(b *testing.B) {
	r := NewRenderer(sdf.DefaultScene(), parameter.ScreenWidth, parameter.ScreenHeight)
	light := animation.NewOrbit().LightAt(0)
	r.RenderFrame(light)
	c := NewCanvas()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Compose(r.Buffer, light)
	}
}
