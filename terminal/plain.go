package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/bagel/render"
)

// clearSequence is the ANSI full reset, clears screen and scrollback position
const clearSequence = "\x1bc"

// PlainSink writes composed text frames to a writer
type PlainSink struct {
	w      *bufio.Writer
	canvas *render.Canvas
	// Clear emits the reset sequence before each frame
	Clear bool
}

func NewPlainSink(w io.Writer, canvas *render.Canvas) *PlainSink {
	return &PlainSink{
		w:      bufio.NewWriterSize(w, 32768),
		canvas: canvas,
		Clear:  true,
	}
}

func (p *PlainSink) Present(frame render.Frame) error {
	if p.Clear {
		if _, err := p.w.WriteString(clearSequence); err != nil {
			return err
		}
	}
	if _, err := p.w.WriteString(p.canvas.Compose(frame.Buffer, frame.Light)); err != nil {
		return err
	}
	return p.w.Flush()
}

func (p *PlainSink) Close() error {
	return p.w.Flush()
}
