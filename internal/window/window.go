package window

// KeyFunc receives key presses, releases and (with KeyRepeat enabled)
// repeats.
type KeyFunc func(w *Window, key Key, action Action)

// CharFunc receives printable Unicode characters.
type CharFunc func(w *Window, char rune)

// MouseButtonFunc receives mouse button presses and releases.
type MouseButtonFunc func(w *Window, button MouseButton, action Action)

// CursorPosFunc receives the cursor position in window coordinates.
type CursorPosFunc func(w *Window, x, y int)

// WheelFunc receives the accumulated wheel position.
type WheelFunc func(w *Window, pos int)

// Window holds the input state of one native window.
//
// A Window is not safe for concurrent use. All calls are expected on the
// goroutine that pumps the window's events.
type Window struct {
	lib    *Library
	handle uintptr

	keys    [KeyLast + 1]Action
	buttons [MouseButtonLast + 1]Action

	cursorX, cursorY int
	wheel            int

	stickyKeys    bool
	stickyButtons bool
	keyRepeat     bool

	keyCallback       KeyFunc
	charCallback      CharFunc
	buttonCallback    MouseButtonFunc
	cursorPosCallback CursorPosFunc
	wheelCallback     WheelFunc
}

// Library returns the library the window belongs to.
func (w *Window) Library() *Library {
	return w.lib
}

// Handle returns the native handle passed to Library.NewWindow.
func (w *Window) Handle() uintptr {
	return w.handle
}

// Key returns Press if the key is held, or if it was released while sticky
// keys were enabled and has not been read since. In the latter case the key
// reverts to Release.
//
// Keys outside [0, KeyLast] record ErrInvalidValue and report Release.
func (w *Window) Key(key Key) Action {
	if !w.lib.ready("Key") {
		return Release
	}

	// TODO: decide whether a key code is a value or an enum; the range
	// check reports ErrInvalidValue until then.
	if key < 0 || key > KeyLast {
		w.lib.setError(ErrInvalidValue, "Key", "key", int(key))
		return Release
	}

	if w.keys[key] == sticky {
		w.keys[key] = Release
		return Press
	}
	return w.keys[key]
}

// MouseButton returns the state of a mouse button with the same sticky
// semantics as Key.
//
// Buttons outside [0, MouseButtonLast] record ErrInvalidEnum and report
// Release.
func (w *Window) MouseButton(button MouseButton) Action {
	if !w.lib.ready("MouseButton") {
		return Release
	}

	if button < 0 || button > MouseButtonLast {
		w.lib.setError(ErrInvalidEnum, "MouseButton", "button", int(button))
		return Release
	}

	if w.buttons[button] == sticky {
		w.buttons[button] = Release
		return Press
	}
	return w.buttons[button]
}

// CursorPos returns the last known cursor position relative to the client
// area.
func (w *Window) CursorPos() (x, y int) {
	if !w.lib.ready("CursorPos") {
		return 0, 0
	}
	return w.cursorX, w.cursorY
}

// SetCursorPos moves the cursor. Nothing happens if the position is
// unchanged. While the window holds the cursor lock only the logical position
// is updated; the physical cursor stays where it is.
func (w *Window) SetCursorPos(x, y int) {
	if !w.lib.ready("SetCursorPos") {
		return
	}

	if x == w.cursorX && y == w.cursorY {
		return
	}

	w.cursorX = x
	w.cursorY = y

	if w.lib.cursorLock == w {
		return
	}

	w.lib.platform.SetCursorPos(w.handle, x, y)
}

// Wheel returns the accumulated scroll wheel position.
func (w *Window) Wheel() int {
	if !w.lib.ready("Wheel") {
		return 0
	}
	return w.wheel
}

// SetWheel overwrites the scroll wheel position.
func (w *Window) SetWheel(pos int) {
	if !w.lib.ready("SetWheel") {
		return
	}
	w.wheel = pos
}

// SetKeyCallback sets the key callback and returns the previous one. A nil
// callback disables delivery.
func (w *Window) SetKeyCallback(cb KeyFunc) KeyFunc {
	if !w.lib.ready("SetKeyCallback") {
		return nil
	}
	prev := w.keyCallback
	w.keyCallback = cb
	return prev
}

// SetCharCallback sets the character callback and returns the previous one.
func (w *Window) SetCharCallback(cb CharFunc) CharFunc {
	if !w.lib.ready("SetCharCallback") {
		return nil
	}
	prev := w.charCallback
	w.charCallback = cb
	return prev
}

// SetMouseButtonCallback sets the mouse button callback and returns the
// previous one.
func (w *Window) SetMouseButtonCallback(cb MouseButtonFunc) MouseButtonFunc {
	if !w.lib.ready("SetMouseButtonCallback") {
		return nil
	}
	prev := w.buttonCallback
	w.buttonCallback = cb
	return prev
}

// SetCursorPosCallback sets the cursor position callback and returns the
// previous one. A non-nil callback is called once, before SetCursorPosCallback
// returns, with the current cursor position.
func (w *Window) SetCursorPosCallback(cb CursorPosFunc) CursorPosFunc {
	if !w.lib.ready("SetCursorPosCallback") {
		return nil
	}
	prev := w.cursorPosCallback
	w.cursorPosCallback = cb

	if cb != nil {
		cb(w, w.cursorX, w.cursorY)
	}
	return prev
}

// SetWheelCallback sets the wheel callback and returns the previous one. A
// non-nil callback is called once, before SetWheelCallback returns, with the
// current wheel position.
func (w *Window) SetWheelCallback(cb WheelFunc) WheelFunc {
	if !w.lib.ready("SetWheelCallback") {
		return nil
	}
	prev := w.wheelCallback
	w.wheelCallback = cb

	if cb != nil {
		cb(w, w.wheel)
	}
	return prev
}
