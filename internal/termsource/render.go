package termsource

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/alexrfelicio/glfw/internal/window"
)

// Canvas is the part of tcell.Screen used for drawing.
type Canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// StatusLines describes the window's current input state. Reading key and
// button state consumes pending sticky latches, just as an application
// polling the window would.
func StatusLines(w *window.Window) []string {
	x, y := w.CursorPos()

	var keys []string
	for k := window.Key(0); k <= window.KeyLast; k++ {
		if w.Key(k) == window.Press {
			keys = append(keys, k.String())
		}
	}
	var buttons []string
	for b := window.MouseButton1; b <= window.MouseButtonLast; b++ {
		if w.MouseButton(b) == window.Press {
			buttons = append(buttons, b.String())
		}
	}

	return []string{
		fmt.Sprintf("cursor: %d,%d  wheel: %d  locked: %t", x, y, w.Wheel(), w.InputMode(window.CursorLocked)),
		"keys: " + strings.Join(keys, " "),
		"buttons: " + strings.Join(buttons, " "),
	}
}

// Render draws lines top-down starting at the first row.
func Render(c Canvas, lines []string) {
	c.Clear()
	for row, line := range lines {
		col := 0
		for _, r := range line {
			c.SetContent(col, row, r, nil, tcell.StyleDefault)
			col++
		}
	}
	c.Show()
}
