package picker

import (
	"strings"
)

// KeyCode names the key of a key event. KeyRune events carry a character.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
)

// Modifier is a bit set of modifiers held during a key event.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifier
}

// Has reports whether every modifier in m is held.
func (k Key) Has(m Modifier) bool {
	return k.Mods&m == m
}

// Ctrl builds a Ctrl+<r> key.
func Ctrl(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Mods: ModCtrl}
}

// Char builds an unmodified character key.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func (k Key) String() string {
	var b strings.Builder
	if k.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Has(ModShift) {
		b.WriteString("shift+")
	}
	switch k.Code {
	case KeyRune:
		b.WriteRune(k.Rune)
	case KeyEscape:
		b.WriteString("esc")
	case KeyEnter:
		b.WriteString("enter")
	case KeyBackspace:
		b.WriteString("backspace")
	case KeyTab:
		b.WriteString("tab")
	case KeyUp:
		b.WriteString("up")
	case KeyDown:
		b.WriteString("down")
	default:
		b.WriteString("other")
	}
	return b.String()
}

// ActionKind is what a key press asks the engine to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionCancel
	ActionSelectDown
	ActionSelectUp
	ActionConfirm
	ActionDeleteRune
	ActionQuickJump
	ActionAppendRune
)

var actionNames = map[ActionKind]string{
	ActionNone:       "none",
	ActionCancel:     "cancel",
	ActionSelectDown: "select-down",
	ActionSelectUp:   "select-up",
	ActionConfirm:    "confirm",
	ActionDeleteRune: "delete-rune",
	ActionQuickJump:  "quick-jump",
	ActionAppendRune: "append-rune",
}

func (a ActionKind) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Action is an interpreted key press. Rune is set for ActionAppendRune and
// Position for ActionQuickJump.
type Action struct {
	Kind     ActionKind
	Rune     rune
	Position int
}

// Interpret maps a key press to an action. With quickJump enabled, digits
// always jump and can never be typed into the filter.
func Interpret(k Key, quickJump bool) Action {
	switch k.Code {
	case KeyEscape:
		return Action{Kind: ActionCancel}
	case KeyDown:
		return Action{Kind: ActionSelectDown}
	case KeyUp:
		return Action{Kind: ActionSelectUp}
	case KeyTab:
		switch k.Mods {
		case 0:
			return Action{Kind: ActionSelectDown}
		case ModShift:
			return Action{Kind: ActionSelectUp}
		}
		return Action{Kind: ActionNone}
	case KeyEnter:
		return Action{Kind: ActionConfirm}
	case KeyBackspace:
		return Action{Kind: ActionDeleteRune}
	case KeyRune:
		return interpretRune(k, quickJump)
	}
	return Action{Kind: ActionNone}
}

func interpretRune(k Key, quickJump bool) Action {
	if k.Has(ModCtrl) {
		switch k.Rune {
		case 'c':
			return Action{Kind: ActionCancel}
		case 'n':
			return Action{Kind: ActionSelectDown}
		case 'k', 'p':
			return Action{Kind: ActionSelectUp}
		}
		return Action{Kind: ActionNone}
	}
	if k.Has(ModAlt) {
		return Action{Kind: ActionNone}
	}
	r := k.Rune
	if isASCIIDigit(r) && quickJump {
		return Action{Kind: ActionQuickJump, Position: int(r - '0')}
	}
	if isASCIIDigit(r) || isASCIILetter(r) {
		return Action{Kind: ActionAppendRune, Rune: r}
	}
	return Action{Kind: ActionNone}
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
