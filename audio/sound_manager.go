package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays the game's sound effects through a single speaker mixer
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(volume float64, muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
			Silent:   muted,
		},
		muted: muted,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEat plays the short chime for an eaten food
func (sm *SoundManager) PlayEat() {
	sm.play(func() (beep.Streamer, error) {
		tone, err := generators.SineTone(sampleRate, constants.EatSoundFrequency)
		if err != nil {
			return nil, err
		}
		return NewEnvelope(beep.Take(sampleRate.N(constants.EatSoundDuration), tone),
			sampleRate.N(constants.EatSoundDuration), sampleRate.N(constants.EatSoundDuration/6)), nil
	})
}

// PlayGameOver plays the low buzz for a finished life
func (sm *SoundManager) PlayGameOver() {
	sm.play(func() (beep.Streamer, error) {
		buzz := NewBuzzGenerator(sampleRate, constants.GameOverSoundFrequency, constants.GameOverSoundAttack)
		return beep.Take(sampleRate.N(constants.GameOverSoundDuration), buzz), nil
	})
}

func (sm *SoundManager) play(build func() (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s, err := build()
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(muted)
}

// ToggleMute flips the mute state, returns true if sound is now enabled
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(!sm.muted)
	return !sm.muted
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsEnabled returns true if initialized and unmuted
func (sm *SoundManager) IsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

func (sm *SoundManager) setMutedLocked(muted bool) {
	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = muted
		speaker.Unlock()
		return
	}
	sm.master.Silent = muted
}
