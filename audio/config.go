package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/bagel/parameter"
)

// Config controls frame sonification
type Config struct {
	Enabled     bool
	Volume      float64 // beep effects.Volume level, base 2
	EveryFrames int     // play one tone per N frames
	SampleRate  int
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:     false,
		Volume:      parameter.ToneVolume,
		EveryFrames: parameter.ToneEveryFrames,
		SampleRate:  parameter.AudioSampleRate,
	}
}

// LoadConfigFromEnv overlays BAGEL_SOUND* environment variables on the defaults
// Malformed values are ignored
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("BAGEL_SOUND"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("BAGEL_SOUND_VOLUME"); volume != "" {
		if val, err := strconv.ParseFloat(volume, 64); err == nil {
			cfg.Volume = val
		}
	}

	if every := os.Getenv("BAGEL_SOUND_EVERY"); every != "" {
		if val, err := strconv.Atoi(every); err == nil && val > 0 {
			cfg.EveryFrames = val
		}
	}

	if rate := os.Getenv("BAGEL_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
