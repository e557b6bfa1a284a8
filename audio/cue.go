package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a short feedback sound
type Cue int

const (
	CueNone Cue = iota
	CuePause
	CueResume
	CueInventory
	CueError
)

func (c Cue) String() string {
	switch c {
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	case CueInventory:
		return "inventory"
	case CueError:
		return "error"
	default:
		return "none"
	}
}

const (
	noteDuration  = 90 * time.Millisecond
	noteAttack    = 5 * time.Millisecond
	noteRelease   = 40 * time.Millisecond
	errorDuration = 150 * time.Millisecond
	errorRelease  = 60 * time.Millisecond
	bellDuration  = 250 * time.Millisecond
	bellRelease   = 200 * time.Millisecond
)

// CueDuration returns the playback length of c
func CueDuration(c Cue) time.Duration {
	switch c {
	case CuePause, CueResume:
		return 2 * noteDuration
	case CueInventory:
		return bellDuration
	case CueError:
		return errorDuration
	default:
		return 0
	}
}

// BuildCue synthesizes c at the given rate and volume
// Returns nil for CueNone
func BuildCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CuePause:
		// Descending fifth E5 -> A4
		s = beep.Seq(
			tone(659.25, noteDuration, noteAttack, noteRelease, WaveSquare, rate),
			tone(440.0, noteDuration, noteAttack, noteRelease, WaveSquare, rate),
		)
	case CueResume:
		// Ascending fifth A4 -> E5
		s = beep.Seq(
			tone(440.0, noteDuration, noteAttack, noteRelease, WaveSquare, rate),
			tone(659.25, noteDuration, noteAttack, noteRelease, WaveSquare, rate),
		)
	case CueInventory:
		// Bell: A5 fundamental with octave overtone
		// Take bounds the mix, which may pad with silence past its inputs
		s = beep.Take(rate.N(bellDuration), beep.Mix(
			newVolume(tone(880.0, bellDuration, noteAttack, bellRelease, WaveSine, rate), 0.7),
			newVolume(tone(1760.0, bellDuration, noteAttack, bellRelease/2, WaveSine, rate), 0.3),
		))
	case CueError:
		s = tone(100.0, errorDuration, noteAttack, errorRelease, WaveSaw, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
