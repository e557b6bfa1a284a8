package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type recordingHandler struct {
	downs []KeyEvent
	ups   []KeyEvent
}

func (h *recordingHandler) KeyDown(ev KeyEvent) { h.downs = append(h.downs, ev) }
func (h *recordingHandler) KeyUp(ev KeyEvent)   { h.ups = append(h.ups, ev) }

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyEvent
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEvent{Key: "Escape", Code: "Escape"}},
		{"lower rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyEvent{Key: "w", Code: "KeyW"}},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'I', tcell.ModNone), KeyEvent{Key: "I", Code: "KeyI", Shift: true}},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), KeyEvent{Key: "7", Code: "Digit7"}},
		{"shifted digit", tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone), KeyEvent{Key: "!", Code: "Digit1", Shift: true}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyEvent{Key: " ", Code: "Space"}},
		{"slash", tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone), KeyEvent{Key: "/", Code: "Slash"}},
		{"question", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), KeyEvent{Key: "?", Code: "Slash", Shift: true}},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), KeyEvent{Key: "s", Code: "KeyS", Ctrl: true}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), KeyEvent{Key: "a", Code: "KeyA", Alt: true}},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyEvent{Key: "ArrowUp", Code: "ArrowUp"}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEvent{Key: "Enter", Code: "Enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.ev)
			if !ok {
				t.Fatal("no mapping")
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTranslateKey_Unmapped(t *testing.T) {
	if _, ok := translateKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("F5 should have no mapping")
	}
}

func TestTcellSource_RepeatAndRelease(t *testing.T) {
	src := NewTcellSource(100 * time.Millisecond)
	h := &recordingHandler{}
	src.Attach(h)

	first := tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	if !src.HandleEvent(first) {
		t.Fatal("key event not handled")
	}
	src.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))

	if len(h.downs) != 2 {
		t.Fatalf("downs = %d, want 2", len(h.downs))
	}
	if h.downs[0].Repeat || !h.downs[1].Repeat {
		t.Errorf("repeat flags = %v, %v", h.downs[0].Repeat, h.downs[1].Repeat)
	}

	// Inside the window the key stays held
	src.Tick(first.When().Add(10 * time.Millisecond))
	if len(h.ups) != 0 || src.Held() != 1 {
		t.Fatalf("released early: ups=%d held=%d", len(h.ups), src.Held())
	}

	src.Tick(time.Now().Add(time.Second))
	if len(h.ups) != 1 || h.ups[0].Code != "KeyW" || h.ups[0].Repeat {
		t.Fatalf("ups = %+v", h.ups)
	}
	if src.Held() != 0 {
		t.Errorf("held = %d after release", src.Held())
	}

	// Next press after release is fresh
	src.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if h.downs[2].Repeat {
		t.Error("press after release flagged as repeat")
	}
}

func TestTcellSource_IgnoresNonKeyEvents(t *testing.T) {
	src := NewTcellSource(0)
	h := &recordingHandler{}
	src.Attach(h)

	if src.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize event handled as key")
	}
	if src.HandleEvent(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)) {
		t.Error("unmapped key handled")
	}
	if len(h.downs) != 0 {
		t.Errorf("downs = %d", len(h.downs))
	}
}

func TestTcellSource_ReleaseAllAndDetach(t *testing.T) {
	src := NewTcellSource(time.Hour)
	h := &recordingHandler{}
	src.Attach(h)
	src.Attach(h)
	if src.Attached() != 1 {
		t.Fatalf("duplicate attach: %d", src.Attached())
	}

	src.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	src.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	src.ReleaseAll()
	if len(h.ups) != 2 || src.Held() != 0 {
		t.Errorf("ups=%d held=%d", len(h.ups), src.Held())
	}

	src.Detach(h)
	src.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	if len(h.downs) != 2 {
		t.Errorf("detached handler received input")
	}
}

func TestTcellSource_DrivesInputSystem(t *testing.T) {
	sys, _, _ := newTestSystem(t)
	src := NewTcellSource(50 * time.Millisecond)
	sys.source = src
	sys.Initialize(nil)

	src.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if !sys.IsKeyPressed("KeyD") {
		t.Fatal("KeyD not pressed")
	}
	src.Tick(time.Now().Add(time.Second))
	if sys.IsKeyPressed("KeyD") {
		t.Error("KeyD still pressed after synthesized release")
	}
}
