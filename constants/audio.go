package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Chime
const (
	EatSoundFrequency = 880.0
	EatSoundDuration  = 60 * time.Millisecond
)

// Game Over Buzz
const (
	GameOverSoundFrequency = 120.0
	GameOverSoundDuration  = 250 * time.Millisecond
	GameOverSoundAttack    = 20 * time.Millisecond
)

// Master Volume, base-2 exponent
const (
	MinVolume = -5.0
	MaxVolume = 2.0
)
