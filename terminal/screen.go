package terminal

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bagel/render"
)

// eventBuffer is the capacity of the input event channel
const eventBuffer = 64

// ScreenSink draws frames into a tcell screen
// A background goroutine polls input; it only forwards events and never touches frame data
type ScreenSink struct {
	screen  tcell.Screen
	canvas  *render.Canvas
	palette *Palette
	logger  *log.Logger

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once

	statusStyle tcell.Style
}

// NewScreenSink opens the process terminal through tcell
func NewScreenSink(canvas *render.Canvas, palette *Palette, logger *log.Logger) (*ScreenSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return NewScreenSinkWith(screen, canvas, palette, logger)
}

// NewScreenSinkWith initialises the given screen, used with simulation screens in tests
func NewScreenSinkWith(screen tcell.Screen, canvas *render.Canvas, palette *Palette, logger *log.Logger) (*ScreenSink, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	screen.HideCursor()
	screen.Clear()

	s := &ScreenSink{
		screen:      screen,
		canvas:      canvas,
		palette:     palette,
		logger:      logger,
		events:      make(chan tcell.Event, eventBuffer),
		done:        make(chan struct{}),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
	go s.pollEvents()
	return s, nil
}

func (s *ScreenSink) pollEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Present drains pending input, then draws the frame
// Returns ErrQuit after Esc, Ctrl-C or q
func (s *ScreenSink) Present(frame render.Frame) error {
	if s.drainEvents() {
		return ErrQuit
	}

	s.screen.Clear()

	buf := frame.Buffer
	termW, termH := s.screen.Size()
	cols := min(s.canvas.Columns(buf.Width()), termW)
	rows := min(s.canvas.Rows(buf.Height()), termH-1)

	for y := 0; y < rows; y++ {
		row := y + 1
		for x := 0; x < cols; x++ {
			v := buf.At(s.canvas.SourceColumn(x), row)
			style := tcell.StyleDefault.Foreground(s.palette.Color(v))
			s.screen.SetContent(x, y, s.canvas.Ramp.Glyph(v), nil, style)
		}
	}

	status := fmt.Sprintf("%s  frame %d  hits %d/%d",
		render.LightStatus(frame.Light), frame.Index, frame.Stats.Hits, frame.Stats.Cells)
	s.drawText(0, rows, status, s.statusStyle)

	s.screen.Show()
	return nil
}

// drainEvents handles queued input without blocking, true when quit was requested
func (s *ScreenSink) drainEvents() bool {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return true
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				s.logger.Printf("resize %dx%d", w, h)
				s.screen.Sync()
			}
		default:
			return false
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (s *ScreenSink) drawText(x, y int, text string, style tcell.Style) {
	w, h := s.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= w {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Close restores the terminal; safe to call more than once
func (s *ScreenSink) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
	return nil
}
