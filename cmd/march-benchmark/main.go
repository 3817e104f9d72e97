package main

import (
	"flag"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/bagel/animation"
	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/render"
	"github.com/lixenwraith/bagel/sdf"
)

// sceneCase names a scene preset under measurement
type sceneCase struct {
	name  string
	scene *sdf.Scene
}

// frameReport aggregates stats over the measured frames
type frameReport struct {
	frames    int
	elapsed   time.Duration
	hits      int
	exhausted int
	steps     int
	cells     int
}

func measure(sc sceneCase, width, height, frames int) frameReport {
	r := render.NewRenderer(sc.scene, width, height)
	orbit := animation.NewOrbit()

	var rep frameReport
	start := time.Now()
	for i := 0; i < frames; i++ {
		stats := r.RenderFrame(orbit.LightAt(i))
		rep.hits += stats.Hits
		rep.exhausted += stats.Exhausted
		rep.steps += stats.Steps
		rep.cells += stats.Cells
	}
	rep.elapsed = time.Since(start)
	rep.frames = frames
	return rep
}

var errBadFlags = errors.New("width and height must be at least 2, frames at least 1")

func checkFlags(width, height, frames int) error {
	if width < 2 || height < 2 || frames < 1 {
		return errBadFlags
	}
	return nil
}

func main() {
	var width, height, frames int
	flag.IntVar(&width, "w", parameter.ScreenWidth, "Buffer width")
	flag.IntVar(&height, "h", parameter.ScreenHeight, "Buffer height")
	flag.IntVar(&frames, "n", 200, "Frames per scene")
	flag.Parse()

	if err := checkFlags(width, height, frames); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("bagel Sphere Tracing Benchmark")
	fmt.Println("==============================")
	fmt.Printf("%dx%d buffer, %d frames per scene\n\n", width, height, frames)

	cases := []sceneCase{
		{"tiled", sdf.DefaultScene()},
		{"blend", sdf.BlendScene()},
	}

	fmt.Printf("%-8s %12s %10s %10s %12s %12s\n", "Scene", "Frame", "FPS", "Hit %", "Steps/ray", "Exhausted %")
	fmt.Println(strings.Repeat("-", 69))

	for _, sc := range cases {
		rep := measure(sc, width, height, frames)
		perFrame := rep.elapsed / time.Duration(rep.frames)
		fps := float64(rep.frames) / rep.elapsed.Seconds()
		cells := float64(rep.cells)

		fmt.Printf("%-8s %12v %10.1f %9.1f%% %12.2f %11.1f%%\n",
			sc.name, perFrame, fps,
			100*float64(rep.hits)/cells,
			float64(rep.steps)/cells,
			100*float64(rep.exhausted)/cells)
	}

	fmt.Println()
	fmt.Println("Run with: go test -bench=. -benchmem ./render/")
}
