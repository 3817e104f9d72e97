package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Resolve turns ModeAuto into a concrete mode for the given output
func Resolve(m Mode, out *os.File) Mode {
	if m != ModeAuto {
		return m
	}
	if IsTerminal(out) {
		return ModeScreen
	}
	return ModePlain
}

// Size returns the terminal dimensions of f, ok is false when unavailable
func Size(f *os.File) (width, height int, ok bool) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
