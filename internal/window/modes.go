package window

import "fmt"

// InputMode selects a per-window input behaviour.
type InputMode int

const (
	// StickyKeys keeps a released key reading Press until it is read once.
	StickyKeys InputMode = iota + 1
	// StickyMouseButtons does the same for mouse buttons.
	StickyMouseButtons
	// KeyRepeat delivers repeated presses of a held key to the key callback.
	KeyRepeat
	// CursorLocked captures the cursor: motion becomes relative and
	// SetCursorPos no longer moves the physical cursor.
	CursorLocked
)

func (m InputMode) String() string {
	switch m {
	case StickyKeys:
		return "StickyKeys"
	case StickyMouseButtons:
		return "StickyMouseButtons"
	case KeyRepeat:
		return "KeyRepeat"
	case CursorLocked:
		return "CursorLocked"
	default:
		return fmt.Sprintf("InputMode(%d)", int(m))
	}
}

// SetInputMode enables or disables an input mode.
//
// Disabling StickyKeys or StickyMouseButtons drops every pending sticky
// entry. Enabling CursorLocked takes the lock from whichever window held it.
func (w *Window) SetInputMode(mode InputMode, enabled bool) {
	if !w.lib.ready("SetInputMode") {
		return
	}

	switch mode {
	case StickyKeys:
		if w.stickyKeys == enabled {
			return
		}
		if !enabled {
			releaseSticky(w.keys[:])
		}
		w.stickyKeys = enabled
	case StickyMouseButtons:
		if w.stickyButtons == enabled {
			return
		}
		if !enabled {
			releaseSticky(w.buttons[:])
		}
		w.stickyButtons = enabled
	case KeyRepeat:
		w.keyRepeat = enabled
	case CursorLocked:
		if enabled {
			w.lib.cursorLock = w
		} else if w.lib.cursorLock == w {
			w.lib.cursorLock = nil
		}
	default:
		w.lib.setError(ErrInvalidEnum, "SetInputMode", "mode", int(mode))
	}
}

// InputMode reports whether an input mode is enabled.
func (w *Window) InputMode(mode InputMode) bool {
	if !w.lib.ready("InputMode") {
		return false
	}

	switch mode {
	case StickyKeys:
		return w.stickyKeys
	case StickyMouseButtons:
		return w.stickyButtons
	case KeyRepeat:
		return w.keyRepeat
	case CursorLocked:
		return w.lib.cursorLock == w
	default:
		w.lib.setError(ErrInvalidEnum, "InputMode", "mode", int(mode))
		return false
	}
}

func releaseSticky(states []Action) {
	for i, s := range states {
		if s == sticky {
			states[i] = Release
		}
	}
}
