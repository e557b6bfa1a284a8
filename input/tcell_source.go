package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

const DefaultReleaseWindow = 600 * time.Millisecond

// TcellSource adapts terminal key events to the Source contract
// Terminals report no key up: a held key is released once it has not been
// seen for the release window, and re-seen held keys are flagged as repeats
type TcellSource struct {
	handlerSet
	releaseWindow time.Duration
	held          map[string]heldKey // Code -> last sighting
}

type heldKey struct {
	ev       KeyEvent
	lastSeen time.Time
}

// NewTcellSource creates a source; window <= 0 uses DefaultReleaseWindow
func NewTcellSource(window time.Duration) *TcellSource {
	if window <= 0 {
		window = DefaultReleaseWindow
	}
	return &TcellSource{
		releaseWindow: window,
		held:          make(map[string]heldKey),
	}
}

// HandleEvent consumes a tcell event, returns true if it produced a key down
func (s *TcellSource) HandleEvent(ev tcell.Event) bool {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	out, ok := translateKey(keyEv)
	if !ok {
		return false
	}

	when := keyEv.When()
	if _, isHeld := s.held[out.Code]; isHeld {
		out.Repeat = true
	}
	s.held[out.Code] = heldKey{ev: out, lastSeen: when}
	s.down(out)
	return true
}

// Tick releases keys not seen within the release window as of now
func (s *TcellSource) Tick(now time.Time) {
	for code, hk := range s.held {
		if now.Sub(hk.lastSeen) < s.releaseWindow {
			continue
		}
		delete(s.held, code)
		up := hk.ev
		up.Repeat = false
		s.up(up)
	}
}

// ReleaseAll releases every held key, e.g. on focus loss
func (s *TcellSource) ReleaseAll() {
	for code, hk := range s.held {
		delete(s.held, code)
		up := hk.ev
		up.Repeat = false
		s.up(up)
	}
}

// Held returns the number of keys considered down
func (s *TcellSource) Held() int {
	return len(s.held)
}
