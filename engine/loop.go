// Package engine drives the render loop: light update, frame render, present
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/bagel/animation"
	"github.com/lixenwraith/bagel/audio"
	"github.com/lixenwraith/bagel/render"
	"github.com/lixenwraith/bagel/sdf"
	"github.com/lixenwraith/bagel/terminal"
)

// statsEvery is the frame interval between stats log lines
const statsEvery = 100

// Loop renders frames one at a time on the calling goroutine
type Loop struct {
	Renderer *render.Renderer
	Driver   animation.LightDriver
	Sink     terminal.Sink
	Player   *audio.Player // optional
	Logger   *log.Logger

	// Frames stops the loop after this many frames, 0 runs until stopped
	Frames int

	// Interval paces frames, 0 renders back to back
	Interval time.Duration
}

// NewLoop builds the default pipeline for cfg around sink
func NewLoop(cfg *Config, sink terminal.Sink, logger *log.Logger) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scene, _ := sdf.ByName(cfg.Scene)

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Loop{
		Renderer: render.NewRenderer(scene, cfg.Width, cfg.Height),
		Driver:   animation.NewOrbit(),
		Sink:     sink,
		Frames:   cfg.Frames,
		Interval: cfg.Interval,
		Logger:   logger,
	}, nil
}

// Step renders and presents a single frame
func (l *Loop) Step(index int) (render.Frame, error) {
	light := l.Driver.LightAt(index)
	stats := l.Renderer.RenderFrame(light)

	frame := render.Frame{
		Index:  index,
		Light:  light,
		Buffer: l.Renderer.Buffer,
		Stats:  stats,
	}

	if err := l.Sink.Present(frame); err != nil {
		return frame, err
	}
	if l.Player != nil {
		l.Player.Sonify(frame)
	}
	return frame, nil
}

// Run renders until ctx is cancelled, the sink reports ErrQuit, or Frames is reached
// Returns the number of frames presented; a quit or cancellation is not an error
func (l *Loop) Run(ctx context.Context) (int, error) {
	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	count := 0
	for l.Frames <= 0 || count < l.Frames {
		if ctx.Err() != nil {
			break
		}

		frame, err := l.Step(count)
		if errors.Is(err, terminal.ErrQuit) {
			l.logf("quit after %d frames", count)
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("present frame %d: %w", count, err)
		}
		count++

		if frame.Index%statsEvery == 0 {
			l.logf("frame %d: %d/%d rays hit, %d exhausted budget, %d steps",
				frame.Index, frame.Stats.Hits, frame.Stats.Cells, frame.Stats.Exhausted, frame.Stats.Steps)
		}

		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
	}

	if elapsed := time.Since(start); count > 0 {
		l.logf("rendered %d frames in %v (%.1f fps)", count, elapsed, float64(count)/elapsed.Seconds())
	}
	return count, nil
}

func (l *Loop) logf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
	}
}
