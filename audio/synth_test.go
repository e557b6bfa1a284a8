package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the total sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, math.Abs(buf[i][0]), math.Abs(buf[i][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("wave %d: n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Errorf("wave %d sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("wave %d sample %d channels differ", wave, i)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d err: %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("square sample %d = %f", i, v)
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	total, _ := drain(NewOscillator(440, 100*time.Millisecond, WaveSine, rate))
	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("samples = %d, want %d", total, want)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // phase 0: constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("n = %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack start = %f, want 0", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("release not decreasing: %f -> %f", samples[90][0], samples[99][0])
	}
}

func TestNewVolumeSilent(t *testing.T) {
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100)), 0)
	_, peak := drain(s)
	if peak != 0 {
		t.Errorf("silent peak = %f", peak)
	}
}

func TestBuildCue(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, c := range []Cue{CuePause, CueResume, CueInventory, CueError} {
		s := BuildCue(c, rate, 0.5)
		if s == nil {
			t.Fatalf("cue %s: nil streamer", c)
		}
		total, peak := drain(s)
		if want := rate.N(CueDuration(c)); total != want {
			t.Errorf("cue %s: samples = %d, want %d", c, total, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("cue %s: peak = %f", c, peak)
		}
	}
	if BuildCue(CueNone, rate, 1) != nil {
		t.Error("CueNone produced a streamer")
	}
}
