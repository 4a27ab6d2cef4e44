package window

// The Input* methods are called by event sources (platform backends, the
// replay player, the terminal source) to report raw input. They update the
// window's state and deliver callbacks synchronously. They do not check
// library initialization and never record errors; bad input is dropped.

// InputKey reports a key press or release.
func (w *Window) InputKey(key Key, action Action) {
	if key < 0 || key > KeyLast {
		return
	}
	if action != Press && action != Release {
		return
	}

	// Releasing a key that is not held is a no-op.
	if action == Release && w.keys[key] != Press {
		return
	}

	repeat := false
	if action == Release && w.stickyKeys {
		w.keys[key] = sticky
	} else {
		repeat = w.keys[key] == Press && action == Press
		w.keys[key] = action
	}

	if w.keyCallback != nil && (w.keyRepeat || !repeat) {
		w.keyCallback(w, key, action)
	}
}

// InputChar reports a typed character. Only printable code points are
// delivered.
func (w *Window) InputChar(char rune) {
	if !((char >= 32 && char <= 126) || char >= 160) {
		return
	}
	if w.charCallback != nil {
		w.charCallback(w, char)
	}
}

// InputMouseClick reports a mouse button press or release.
func (w *Window) InputMouseClick(button MouseButton, action Action) {
	if button < 0 || button > MouseButtonLast {
		return
	}
	if action != Press && action != Release {
		return
	}

	if action == Release && w.stickyButtons {
		w.buttons[button] = sticky
	} else {
		w.buttons[button] = action
	}

	if w.buttonCallback != nil {
		w.buttonCallback(w, button, action)
	}
}

// InputCursorMotion reports cursor movement. While the window holds the
// cursor lock x and y are relative motion; otherwise they are the new
// absolute position.
func (w *Window) InputCursorMotion(x, y int) {
	if w.lib.cursorLock == w {
		if x == 0 && y == 0 {
			return
		}
		w.cursorX += x
		w.cursorY += y
	} else {
		if w.cursorX == x && w.cursorY == y {
			return
		}
		w.cursorX = x
		w.cursorY = y
	}

	if w.cursorPosCallback != nil {
		w.cursorPosCallback(w, w.cursorX, w.cursorY)
	}
}

// InputScroll adds delta to the wheel position.
func (w *Window) InputScroll(delta int) {
	w.wheel += delta

	if w.wheelCallback != nil {
		w.wheelCallback(w, w.wheel)
	}
}

// ClearInput releases every key and button and resets the wheel, as when the
// window loses focus. No callbacks are delivered.
func (w *Window) ClearInput() {
	for i := range w.keys {
		w.keys[i] = Release
	}
	for i := range w.buttons {
		w.buttons[i] = Release
	}
	w.wheel = 0
}
