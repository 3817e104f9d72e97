package terminal

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/bagel/render"
)

// ErrQuit is returned by Present when the user asked to stop
var ErrQuit = errors.New("quit requested")

// Sink consumes rendered frames
type Sink interface {
	Present(frame render.Frame) error
	Close() error
}

// Mode selects a sink implementation
type Mode uint8

const (
	ModeAuto Mode = iota
	ModeScreen
	ModePlain
)

func (m Mode) String() string {
	switch m {
	case ModeScreen:
		return "screen"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// ParseMode maps a flag value to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "screen", "tcell":
		return ModeScreen, nil
	case "plain", "text":
		return ModePlain, nil
	}
	return ModeAuto, fmt.Errorf("unknown output mode %q", s)
}
