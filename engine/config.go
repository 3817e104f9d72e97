package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/bagel/audio"
	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/sdf"
	"github.com/lixenwraith/bagel/terminal"
)

var (
	ErrInvalidSize     = errors.New("screen size must be at least 2x2")
	ErrInvalidInterval = errors.New("frame interval must not be negative")
	ErrNegativeFrames  = errors.New("frame count must not be negative")
	ErrUnknownScene    = errors.New("unknown scene")
)

// Config holds run settings; zero Frames runs until stopped
type Config struct {
	Width    int
	Height   int
	Frames   int
	Interval time.Duration
	Output   terminal.Mode
	Scene    string
	LogFile  string
	Audio    *audio.Config
}

func DefaultConfig() *Config {
	return &Config{
		Width:    parameter.ScreenWidth,
		Height:   parameter.ScreenHeight,
		Interval: parameter.FrameUpdateInterval,
		Output:   terminal.ModeAuto,
		Scene:    "tiled",
		Audio:    audio.DefaultConfig(),
	}
}

// LoadConfigFromEnv overlays BAGEL_* environment variables on the defaults
// Malformed values are ignored; Validate catches out-of-range ones
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.Audio = audio.LoadConfigFromEnv()

	if v := os.Getenv("BAGEL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Width = n
		}
	}
	if v := os.Getenv("BAGEL_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Height = n
		}
	}
	if v := os.Getenv("BAGEL_FRAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Frames = n
		}
	}
	if v := os.Getenv("BAGEL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Interval = d
		}
	}
	if v := os.Getenv("BAGEL_OUTPUT"); v != "" {
		if m, err := terminal.ParseMode(v); err == nil {
			cfg.Output = m
		}
	}
	if v := os.Getenv("BAGEL_SCENE"); v != "" {
		cfg.Scene = v
	}
	if v := os.Getenv("BAGEL_LOG"); v != "" {
		cfg.LogFile = v
	}

	return cfg
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidInterval, c.Interval)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeFrames, c.Frames)
	}
	if _, ok := sdf.ByName(c.Scene); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, c.Scene)
	}
	return nil
}
