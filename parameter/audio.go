package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sonification
const (
	// ToneMinFreq is played for a dark frame
	ToneMinFreq = 110.0

	// ToneMaxFreq is played for a saturated frame
	ToneMaxFreq = 880.0

	// ToneDuration is the length of each frame tone
	ToneDuration = 60 * time.Millisecond

	// ToneEveryFrames throttles tones to one per N frames
	ToneEveryFrames = 10

	// ToneVolume is the beep effects.Volume level (base 2)
	ToneVolume = -2.0
)
