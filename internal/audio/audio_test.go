package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skydodo/internal/core"
)

// drain streams s to the end and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestStreamerLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range []Sound{SoundJump, SoundLand, SoundLevelUp, SoundGameOver} {
		t.Run(s.String(), func(t *testing.T) {
			want := 0
			for _, n := range sounds[s] {
				want += rate.N(n.dur)
			}
			samples := drain(Streamer(s, rate, 1))
			if len(samples) != want {
				t.Errorf("streamed %d samples, expected %d", len(samples), want)
			}

			peak := 0.0
			for _, smp := range samples {
				peak = math.Max(peak, math.Abs(smp[0]))
				if smp[0] != smp[1] {
					t.Fatal("channels differ")
				}
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %v outside (0, 1]", peak)
			}
		})
	}
}

func TestStreamerSilentAtZeroVolume(t *testing.T) {
	for _, smp := range drain(Streamer(SoundJump, beep.SampleRate(8000), 0)) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatal("volume 0 should be silent")
		}
	}
}

func TestStreamerUnknownSound(t *testing.T) {
	if got := drain(Streamer(Sound(99), beep.SampleRate(8000), 1)); len(got) != 0 {
		t.Errorf("unknown sound streamed %d samples", len(got))
	}
}

func TestForEvent(t *testing.T) {
	tests := []struct {
		event core.Event
		want  Sound
		ok    bool
	}{
		{core.EventJump, SoundJump, true},
		{core.EventLand, SoundLand, true},
		{core.EventLevelUp, SoundLevelUp, true},
		{core.EventGameOver, SoundGameOver, true},
		{core.Event(0), 0, false},
	}
	for _, tc := range tests {
		got, ok := ForEvent(tc.event)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ForEvent(%d) = %v, %v; expected %v, %v", tc.event, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.Enabled() {
		t.Fatal("a new manager is not enabled until Initialize")
	}
	sm.PlayEvents([]core.Event{core.EventJump, core.EventGameOver})
	if sm.Played() != 0 {
		t.Errorf("Played() = %d without a speaker", sm.Played())
	}
	sm.Cleanup()

	var nilManager *SoundManager
	nilManager.Play(SoundJump)
	if nilManager.Enabled() {
		t.Error("nil manager must report disabled")
	}
}

func TestSoundManagerVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{-1, 0},
		{2, 1},
		{math.NaN(), 0},
	}
	sm := NewSoundManager(1)
	for _, tc := range tests {
		sm.SetVolume(tc.in)
		if got := sm.Volume(); got != tc.want {
			t.Errorf("SetVolume(%v) -> %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	if d := Duration(SoundGameOver); d.Milliseconds() != 660 {
		t.Errorf("Duration(gameover) = %v", d)
	}
}
