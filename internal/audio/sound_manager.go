// Package audio plays the short synthesized effects of a run through the
// system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skydodo/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies an effect.
type Sound int

const (
	SoundJump Sound = iota + 1
	SoundLand
	SoundLevelUp
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundLevelUp:
		return "levelup"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ForEvent maps a game event to its sound.
func ForEvent(e core.Event) (Sound, bool) {
	switch e {
	case core.EventJump:
		return SoundJump, true
	case core.EventLand:
		return SoundLand, true
	case core.EventLevelUp:
		return SoundLevelUp, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// SoundManager mixes effects into a single speaker stream.
// A manager that was never initialized, or was disabled, ignores Play calls.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
}

// NewSoundManager creates a manager at the given volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (sm *SoundManager) Enabled() bool {
	if sm == nil {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Volume returns the current volume.
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetVolume changes the volume of sounds played from now on.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(v)
}

// Play queues a sound.
func (sm *SoundManager) Play(s Sound) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	if _, ok := sounds[s]; !ok {
		return
	}
	st := Streamer(s, sampleRate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
	sm.played++
}

// PlayEvents plays the sound of every event that has one.
func (sm *SoundManager) PlayEvents(events []core.Event) {
	for _, e := range events {
		if s, ok := ForEvent(e); ok {
			sm.Play(s)
		}
	}
}

// Played returns how many sounds were sent to the mixer.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Cleanup silences pending sounds.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	// speaker has no Close; the device stays open with an empty mixer.
	sm.initialized = false
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
