// Package audio turns frame brightness into short tones
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/render"
	"github.com/lixenwraith/bagel/vmath"
)

// ToneFor maps mean frame intensity to a frequency between ToneMinFreq and ToneMaxFreq
func ToneFor(mean float64) float64 {
	t := 0.0
	if vmath.IsFinite(mean) {
		t = vmath.Clamp(mean, 0, 1)
	} else if mean > 0 {
		t = 1
	}
	return parameter.ToneMinFreq + (parameter.ToneMaxFreq-parameter.ToneMinFreq)*t
}

// Player plays a tone every few frames through the speaker
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	lastFreq    float64 // 0 until the first tone
}

func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a no-op when disabled or already open
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Tone builds the streamer for one frame tone, gliding from the previous
// tone's pitch and scaled by the frame's surface coverage
func (p *Player) Tone(stats render.FrameStats) beep.Streamer {
	freq := ToneFor(stats.Mean)
	from := p.lastFreq
	if from == 0 {
		from = freq
	}
	p.lastFreq = freq

	return &effects.Volume{
		Streamer: NewGlide(from, freq, Coverage(stats.Hits, stats.Cells), parameter.ToneDuration, p.rate),
		Base:     2,
		Volume:   p.cfg.Volume,
	}
}

// Due reports whether the frame index should sound
func (p *Player) Due(index int) bool {
	every := p.cfg.EveryFrames
	if every <= 0 {
		every = 1
	}
	return index%every == 0
}

// Sonify queues a tone for the frame when due
func (p *Player) Sonify(frame render.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.Due(frame.Index) {
		return
	}

	tone := p.Tone(frame.Stats)
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops queued tones and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
