package window

import "fmt"

// Key represents a keyboard key.
//
// Printable keys use their upper-case Latin-1 code point, so Key('A') and
// KeyA are the same value. Keys without a printable form start at
// KeySpecial.
type Key int

// KeyUnknown is reported by backends for keys they cannot map.
const KeyUnknown Key = -1

// Printable keys.
const (
	KeySpace        Key = ' '
	KeyApostrophe   Key = '\''
	KeyComma        Key = ','
	KeyMinus        Key = '-'
	KeyPeriod       Key = '.'
	KeySlash        Key = '/'
	KeySemicolon    Key = ';'
	KeyEqual        Key = '='
	KeyLeftBracket  Key = '['
	KeyBackslash    Key = '\\'
	KeyRightBracket Key = ']'
	KeyGraveAccent  Key = '`'

	Key0 Key = '0'
	Key1 Key = '1'
	Key2 Key = '2'
	Key3 Key = '3'
	Key4 Key = '4'
	Key5 Key = '5'
	Key6 Key = '6'
	Key7 Key = '7'
	Key8 Key = '8'
	Key9 Key = '9'

	KeyA Key = 'A'
	KeyB Key = 'B'
	KeyC Key = 'C'
	KeyD Key = 'D'
	KeyE Key = 'E'
	KeyF Key = 'F'
	KeyG Key = 'G'
	KeyH Key = 'H'
	KeyI Key = 'I'
	KeyJ Key = 'J'
	KeyK Key = 'K'
	KeyL Key = 'L'
	KeyM Key = 'M'
	KeyN Key = 'N'
	KeyO Key = 'O'
	KeyP Key = 'P'
	KeyQ Key = 'Q'
	KeyR Key = 'R'
	KeyS Key = 'S'
	KeyT Key = 'T'
	KeyU Key = 'U'
	KeyV Key = 'V'
	KeyW Key = 'W'
	KeyX Key = 'X'
	KeyY Key = 'Y'
	KeyZ Key = 'Z'
)

// Special keys.
const (
	KeySpecial Key = 256 + iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyTab
	KeyEnter
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDivide
	KeyKPMultiply
	KeyKPSubtract
	KeyKPAdd
	KeyKPDecimal
	KeyKPEqual
	KeyKPEnter
	KeyKPNumLock
	KeyCapsLock
	KeyScrollLock
	KeyPause
	KeyLeftSuper  // Windows key on Windows, Command key on macOS
	KeyRightSuper // Windows key on Windows, Command key on macOS
	KeyMenu

	KeyLast = KeyMenu
)

var specialKeyNames = [...]string{
	"Special", "Escape",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12", "F13",
	"F14", "F15", "F16", "F17", "F18", "F19", "F20", "F21", "F22", "F23", "F24", "F25",
	"Up", "Down", "Left", "Right",
	"LeftShift", "RightShift", "LeftControl", "RightControl", "LeftAlt", "RightAlt",
	"Tab", "Enter", "Backspace", "Insert", "Delete", "PageUp", "PageDown", "Home", "End",
	"KP0", "KP1", "KP2", "KP3", "KP4", "KP5", "KP6", "KP7", "KP8", "KP9",
	"KPDivide", "KPMultiply", "KPSubtract", "KPAdd", "KPDecimal", "KPEqual", "KPEnter", "KPNumLock",
	"CapsLock", "ScrollLock", "Pause", "LeftSuper", "RightSuper", "Menu",
}

func (k Key) String() string {
	switch {
	case k == KeyUnknown:
		return "Unknown"
	case k == KeySpace:
		return "Space"
	case k > KeySpace && k < KeySpecial:
		return string(rune(k))
	case k >= KeySpecial && k <= KeyLast:
		return specialKeyNames[k-KeySpecial]
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// KeyByName resolves a key from its String form or a single printable
// character. The lookup is case-insensitive for letters.
func KeyByName(name string) (Key, bool) {
	if name == "Space" || name == "space" {
		return KeySpace, true
	}
	if r := []rune(name); len(r) == 1 {
		c := r[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c > ' ' && c < rune(KeySpecial) {
			return Key(c), true
		}
		return KeyUnknown, false
	}
	for i, n := range specialKeyNames {
		if n == name {
			return KeySpecial + Key(i), true
		}
	}
	return KeyUnknown, false
}

// MouseButton represents a mouse button. Values are table indices.
type MouseButton int

const (
	MouseButton1 MouseButton = iota
	MouseButton2
	MouseButton3
	MouseButton4 // Additional mouse button (often back button)
	MouseButton5 // Additional mouse button (often forward button)
	MouseButton6
	MouseButton7
	MouseButton8

	MouseButtonLast   = MouseButton8
	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	}
	if b >= MouseButton4 && b <= MouseButtonLast {
		return fmt.Sprintf("Button%d", int(b)+1)
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// MouseButtonByName resolves "Left", "Right", "Middle" or "Button1".."Button8".
func MouseButtonByName(name string) (MouseButton, bool) {
	for b := MouseButton1; b <= MouseButtonLast; b++ {
		if b.String() == name || fmt.Sprintf("Button%d", int(b)+1) == name {
			return b, true
		}
	}
	return 0, false
}

// Action is the stored and reported state of a key or mouse button.
type Action int

const (
	Release Action = iota
	Press

	// sticky means pressed, with exactly one more Press read owed before the
	// entry reverts to Release. It is never returned to callers.
	sticky
)

func (a Action) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case sticky:
		return "Sticky"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// IsDown returns true if the action reports a held key or button.
func (a Action) IsDown() bool {
	return a == Press
}
