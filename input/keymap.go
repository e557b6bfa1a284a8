package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// namedKeys maps tcell special keys to key/code names
// Checked before the Ctrl+letter range, KeyTab/KeyEnter/KeyBackspace share values with it
var namedKeys = map[tcell.Key]string{
	tcell.KeyEscape:     "Escape",
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
}

// punctuationCodes maps punctuation runes to physical key codes (US layout)
var punctuationCodes = map[rune]string{
	'-': "Minus", '_': "Minus",
	'=': "Equal", '+': "Equal",
	'[': "BracketLeft", '{': "BracketLeft",
	']': "BracketRight", '}': "BracketRight",
	'\\': "Backslash", '|': "Backslash",
	';': "Semicolon", ':': "Semicolon",
	'\'': "Quote", '"': "Quote",
	',': "Comma", '<': "Comma",
	'.': "Period", '>': "Period",
	'/': "Slash", '?': "Slash",
	'`': "Backquote", '~': "Backquote",
}

// shiftedDigits maps shifted number row runes to their digit
var shiftedDigits = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// shiftedPunctuation lists runes that need Shift on a US layout
const shiftedPunctuation = "_+{}|:\"<>?~"

// translateKey converts a tcell key event to a KeyEvent
// Returns false for keys with no mapping
func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	mods := ev.Modifiers()
	out := KeyEvent{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
		Alt:   mods&tcell.ModAlt != 0,
	}

	k := ev.Key()
	if name, ok := namedKeys[k]; ok {
		out.Key, out.Code = name, name
		return out, true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		out.Key = string(r)
		out.Code = "Key" + strings.ToUpper(string(r))
		out.Ctrl = true
		return out, true
	}

	if k != tcell.KeyRune {
		return KeyEvent{}, false
	}

	r := ev.Rune()
	out.Key = string(r)
	switch {
	case r == ' ':
		out.Code = "Space"
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		out.Code = "Key" + strings.ToUpper(string(r))
		if unicode.IsUpper(r) {
			out.Shift = true
		}
	case r >= '0' && r <= '9':
		out.Code = "Digit" + string(r)
	default:
		if d, ok := shiftedDigits[r]; ok {
			out.Code = "Digit" + string(d)
			out.Shift = true
		} else if code, ok := punctuationCodes[r]; ok {
			out.Code = code
			if strings.ContainsRune(shiftedPunctuation, r) {
				out.Shift = true
			}
		} else {
			// Non-ASCII input has no physical code, key doubles as code
			out.Code = out.Key
		}
	}
	return out, true
}
