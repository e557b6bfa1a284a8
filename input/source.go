// Package input turns keyboard input into bus events
//
// Input arrives through a Source; the InputSystem tracks held keys and emits
// event.KeyPressed plus mode transition requests for Escape and I
package input

import "slices"

// KeyEvent is a single key down or key up
// Key is the produced character or key name ("a", "A", "Escape"), Code the physical key ("KeyA", "Escape")
type KeyEvent struct {
	Key    string
	Code   string
	Repeat bool
	Ctrl   bool
	Shift  bool
	Alt    bool
}

// KeyHandler receives key transitions from a Source
type KeyHandler interface {
	KeyDown(ev KeyEvent)
	KeyUp(ev KeyEvent)
}

// Source delivers key transitions to attached handlers
type Source interface {
	Attach(h KeyHandler)
	Detach(h KeyHandler)
}

// handlerSet is the attach/detach bookkeeping shared by sources
type handlerSet struct {
	handlers []KeyHandler
}

func (hs *handlerSet) Attach(h KeyHandler) {
	if slices.Contains(hs.handlers, h) {
		return
	}
	hs.handlers = append(hs.handlers, h)
}

func (hs *handlerSet) Detach(h KeyHandler) {
	if idx := slices.Index(hs.handlers, h); idx >= 0 {
		hs.handlers = slices.Delete(hs.handlers, idx, idx+1)
	}
}

// Attached returns the number of attached handlers
func (hs *handlerSet) Attached() int {
	return len(hs.handlers)
}

func (hs *handlerSet) down(ev KeyEvent) {
	for _, h := range slices.Clone(hs.handlers) {
		h.KeyDown(ev)
	}
}

func (hs *handlerSet) up(ev KeyEvent) {
	for _, h := range slices.Clone(hs.handlers) {
		h.KeyUp(ev)
	}
}

// ManualSource is an in-memory Source for tests and replays
type ManualSource struct {
	handlerSet
}

func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Send delivers a key down
func (s *ManualSource) Send(ev KeyEvent) {
	s.down(ev)
}

// Release delivers a key up
func (s *ManualSource) Release(ev KeyEvent) {
	s.up(ev)
}

// Press sends a non-repeat key down
func (s *ManualSource) Press(key, code string) {
	s.down(KeyEvent{Key: key, Code: code})
}

// Tap sends key down then key up
func (s *ManualSource) Tap(key, code string) {
	ev := KeyEvent{Key: key, Code: code}
	s.down(ev)
	s.up(ev)
}
