package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Glide is a sine tone sweeping linearly from one frequency to another
// Amplitude is fixed for the whole tone and ends the stream after the duration
type Glide struct {
	from, to  float64
	amplitude float64
	rate      beep.SampleRate
	total     int
	played    int
	cycle     float64 // phase in cycles, kept in [0,1)
}

// NewGlide builds a tone that starts at from Hz and arrives at to Hz after d
func NewGlide(from, to, amplitude float64, d time.Duration, rate beep.SampleRate) *Glide {
	return &Glide{
		from:      from,
		to:        to,
		amplitude: amplitude,
		rate:      rate,
		total:     rate.N(d),
	}
}

// FreqAt returns the instantaneous frequency at sample index n
func (g *Glide) FreqAt(n int) float64 {
	if g.total <= 1 {
		return g.to
	}
	t := float64(n) / float64(g.total-1)
	if t > 1 {
		t = 1
	}
	return g.from + (g.to-g.from)*t
}

// Remaining reports the samples left before the tone ends
func (g *Glide) Remaining() int {
	return g.total - g.played
}

func (g *Glide) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && g.played < g.total {
		v := g.amplitude * math.Sin(2*math.Pi*g.cycle)
		samples[n] = [2]float64{v, v}

		g.cycle += g.FreqAt(g.played) / float64(g.rate)
		_, g.cycle = math.Modf(g.cycle)
		g.played++
		n++
	}
	return n, n > 0
}

func (g *Glide) Err() error { return nil }

// Coverage maps the share of cells that hit a surface to a tone amplitude
// An empty frame still sounds at a quarter of full scale
func Coverage(hits, cells int) float64 {
	if cells <= 0 {
		return 0.25
	}
	share := float64(hits) / float64(cells)
	if share > 1 {
		share = 1
	}
	return 0.25 + 0.75*share
}
