package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/bagel/parameter"
	"github.com/lixenwraith/bagel/render"
)

// TestGlideConstantPitch verifies a flat glide is a plain sine at the given amplitude
func TestGlideConstantPitch(t *testing.T) {
	// Quarter cycle per sample at 250 Hz / 1000 Hz
	g := NewGlide(250, 250, 0.5, 20*time.Millisecond, beep.SampleRate(1000))

	samples := make([][2]float64, 4)
	n, ok := g.Stream(samples)
	if !ok || n != 4 {
		t.Fatalf("Expected 4 samples, got n=%d ok=%v", n, ok)
	}

	want := []float64{0, 0.5, 0, -0.5}
	for i, w := range want {
		if math.Abs(samples[i][0]-w) > 1e-9 {
			t.Errorf("Sample %d: expected %v, got %v", i, w, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got: %v", g.Err())
	}
}

// TestGlideSweep verifies the pitch moves linearly from start to target
func TestGlideSweep(t *testing.T) {
	g := NewGlide(100, 300, 1, 10*time.Millisecond, beep.SampleRate(1000))

	tests := []struct {
		n    int
		want float64
	}{
		{0, 100},
		{4, 100 + 200*4.0/9.0},
		{9, 300},
		{50, 300},
	}
	for _, tt := range tests {
		if got := g.FreqAt(tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FreqAt(%d): expected %v, got %v", tt.n, tt.want, got)
		}
	}
}

// TestGlideEnds verifies the stream drains after its duration
func TestGlideEnds(t *testing.T) {
	g := NewGlide(440, 880, 0.8, 10*time.Millisecond, beep.SampleRate(1000))

	samples := make([][2]float64, 64)
	n, ok := g.Stream(samples)
	if n != 10 || !ok {
		t.Errorf("Expected 10 samples then drain, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 0.8+1e-12 {
			t.Errorf("Sample %d exceeds amplitude: %v", i, samples[i][0])
		}
	}
	if g.Remaining() != 0 {
		t.Errorf("Expected nothing remaining, got %d", g.Remaining())
	}

	n, ok = g.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected exhausted stream, got n=%d ok=%v", n, ok)
	}
}

// TestCoverage verifies hit share maps to amplitude in [0.25, 1]
func TestCoverage(t *testing.T) {
	tests := []struct {
		name        string
		hits, cells int
		expected    float64
	}{
		{"No cells", 0, 0, 0.25},
		{"Empty frame", 0, 100, 0.25},
		{"Half covered", 50, 100, 0.625},
		{"Full", 100, 100, 1},
		{"Overcount clamps", 200, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coverage(tt.hits, tt.cells); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestToneFor verifies brightness maps into the tone range
func TestToneFor(t *testing.T) {
	tests := []struct {
		name     string
		mean     float64
		expected float64
	}{
		{"Dark", 0, parameter.ToneMinFreq},
		{"Negative clamps", -1, parameter.ToneMinFreq},
		{"Saturated", 1, parameter.ToneMaxFreq},
		{"Overbright clamps", 5, parameter.ToneMaxFreq},
		{"Half", 0.5, (parameter.ToneMinFreq + parameter.ToneMaxFreq) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneFor(tt.mean); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestPlayerDisabledIsInert verifies a disabled player never opens the speaker
func TestPlayerDisabledIsInert(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	if err := p.Initialize(); err != nil {
		t.Fatalf("Expected disabled init to succeed, got %v", err)
	}
	// Must not touch the speaker
	p.Sonify(render.Frame{Index: 0})
	p.Close()
}

// TestPlayerDue verifies tone throttling by frame index
func TestPlayerDue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EveryFrames = 4
	p := NewPlayer(cfg)

	for i, want := range []bool{true, false, false, false, true} {
		if got := p.Due(i); got != want {
			t.Errorf("Frame %d: expected due=%v, got %v", i, want, got)
		}
	}
}

// TestPlayerToneLength verifies a frame tone lasts ToneDuration
func TestPlayerToneLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	p := NewPlayer(cfg)

	tone := p.Tone(render.FrameStats{Cells: 10, Hits: 5, Mean: 0.5})
	want := beep.SampleRate(8000).N(parameter.ToneDuration)

	total := 0
	samples := make([][2]float64, 128)
	for {
		n, ok := tone.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestPlayerToneGlidesFromPrevious verifies consecutive tones carry the last pitch forward
func TestPlayerToneGlidesFromPrevious(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	p.Tone(render.FrameStats{Cells: 4, Mean: 0})
	if p.lastFreq != parameter.ToneMinFreq {
		t.Fatalf("Expected first tone at %v, got %v", parameter.ToneMinFreq, p.lastFreq)
	}

	tone := p.Tone(render.FrameStats{Cells: 4, Hits: 4, Mean: 1})
	if p.lastFreq != parameter.ToneMaxFreq {
		t.Errorf("Expected second tone at %v, got %v", parameter.ToneMaxFreq, p.lastFreq)
	}

	vol, ok := tone.(*effects.Volume)
	if !ok {
		t.Fatalf("Expected *effects.Volume, got %T", tone)
	}
	g, ok := vol.Streamer.(*Glide)
	if !ok {
		t.Fatalf("Expected *Glide, got %T", vol.Streamer)
	}
	if g.FreqAt(0) != parameter.ToneMinFreq || g.FreqAt(g.total) != parameter.ToneMaxFreq {
		t.Errorf("Expected glide %v→%v, got %v→%v",
			parameter.ToneMinFreq, parameter.ToneMaxFreq, g.FreqAt(0), g.FreqAt(g.total))
	}
	if g.amplitude != 1 {
		t.Errorf("Expected full coverage amplitude, got %v", g.amplitude)
	}
}

// TestLoadConfigFromEnv verifies environment overrides and ignored bad values
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BAGEL_SOUND", "true")
	t.Setenv("BAGEL_SOUND_VOLUME", "-1.5")
	t.Setenv("BAGEL_SOUND_EVERY", "0")
	t.Setenv("BAGEL_SAMPLE_RATE", "22050")

	cfg := LoadConfigFromEnv()
	if !cfg.Enabled {
		t.Error("Expected sound enabled")
	}
	if cfg.Volume != -1.5 {
		t.Errorf("Expected volume -1.5, got %v", cfg.Volume)
	}
	if cfg.EveryFrames != parameter.ToneEveryFrames {
		t.Errorf("Expected invalid interval to be ignored, got %d", cfg.EveryFrames)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}
