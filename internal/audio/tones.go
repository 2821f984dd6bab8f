package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// note is one step of a sound effect.
type note struct {
	freq float64 // Hz; 0 is a rest
	dur  time.Duration
	amp  float64
}

// sounds maps each effect to its note sequence.
var sounds = map[Sound][]note{
	SoundJump: {
		{freq: 520, dur: 40 * time.Millisecond, amp: 0.35},
		{freq: 780, dur: 60 * time.Millisecond, amp: 0.30},
	},
	SoundLand: {
		{freq: 180, dur: 50 * time.Millisecond, amp: 0.40},
	},
	SoundLevelUp: {
		{freq: 660, dur: 80 * time.Millisecond, amp: 0.30},
		{freq: 880, dur: 80 * time.Millisecond, amp: 0.30},
		{freq: 1320, dur: 140 * time.Millisecond, amp: 0.25},
	},
	SoundGameOver: {
		{freq: 392, dur: 160 * time.Millisecond, amp: 0.35},
		{freq: 0, dur: 40 * time.Millisecond},
		{freq: 262, dur: 160 * time.Millisecond, amp: 0.35},
		{freq: 196, dur: 300 * time.Millisecond, amp: 0.35},
	},
}

// tone is a sine oscillator with a short linear fade at both ends.
type tone struct {
	rate  beep.SampleRate
	freq  float64
	amp   float64
	total int
	fade  int
	pos   int
	phase float64
}

func newTone(rate beep.SampleRate, n note) *tone {
	total := rate.N(n.dur)
	fade := rate.N(5 * time.Millisecond)
	if fade*2 > total {
		fade = total / 2
	}
	return &tone{rate: rate, freq: n.freq, amp: n.amp, total: total, fade: fade}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		env := 1.0
		switch {
		case t.fade > 0 && t.pos < t.fade:
			env = float64(t.pos) / float64(t.fade)
		case t.fade > 0 && t.total-t.pos <= t.fade:
			env = float64(t.total-t.pos) / float64(t.fade)
		}

		var v float64
		if t.freq > 0 {
			v = t.amp * env * math.Sin(2*math.Pi*t.phase)
			t.phase += t.freq / float64(t.rate)
			t.phase -= math.Floor(t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Streamer builds the effect for s at the given rate and volume.
// Unknown sounds produce an empty stream.
func Streamer(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := sounds[s]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(rate, n))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume scales a stream linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Duration returns the total length of a sound.
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, n := range sounds[s] {
		d += n.dur
	}
	return d
}
