// Package termsource drives a window from terminal input. Key and mouse
// events read through tcell are reported to the window as if they came from
// a native backend.
//
// Terminals only report key presses, so every key is reported as a press
// immediately followed by a release. With sticky keys enabled the window
// still answers Press to the next Key read.
package termsource

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/alexrfelicio/glfw/internal/window"
)

// EventScreen is the part of tcell.Screen the source reads from.
type EventScreen interface {
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
}

// Source translates terminal events into input reports for one window.
type Source struct {
	screen EventScreen
	win    *window.Window
	logger *slog.Logger

	// OnEvent is called after each translated event, typically to redraw.
	OnEvent func()

	buttons      tcell.ButtonMask
	lastX, lastY int
	seenMouse    bool
}

func New(screen EventScreen, win *window.Window, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{screen: screen, win: win, logger: logger}
}

// Run reads events until the user quits (Escape or Ctrl-C), the screen is
// finalized or ctx is cancelled.
func (s *Source) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ctx.Err()
		}
		if s.Translate(ev) {
			return nil
		}
		if s.OnEvent != nil {
			s.OnEvent()
		}
	}
}

// Translate reports a single terminal event to the window. It returns true
// when the event asks to quit.
func (s *Source) Translate(ev tcell.Event) (quit bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			return true
		}
		s.translateKey(e)
	case *tcell.EventMouse:
		s.translateMouse(e)
	case *tcell.EventFocus:
		if !e.Focused {
			s.logger.Debug("focus lost, clearing input")
			s.win.ClearInput()
		}
	}
	return false
}

func (s *Source) translateKey(e *tcell.EventKey) {
	key := convertKey(e.Key(), e.Rune())
	mods := modifierKeys(e.Modifiers())

	for _, m := range mods {
		s.win.InputKey(m, window.Press)
	}
	if key != window.KeyUnknown {
		s.win.InputKey(key, window.Press)
	}
	if e.Key() == tcell.KeyRune {
		s.win.InputChar(e.Rune())
	}
	if key != window.KeyUnknown {
		s.win.InputKey(key, window.Release)
	}
	for i := len(mods) - 1; i >= 0; i-- {
		s.win.InputKey(mods[i], window.Release)
	}

	s.logger.Debug("terminal key", "key", key.String(), "rune", string(e.Rune()))
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button window.MouseButton
}{
	{tcell.Button1, window.MouseButtonLeft},
	{tcell.Button2, window.MouseButtonRight},
	{tcell.Button3, window.MouseButtonMiddle},
	{tcell.Button4, window.MouseButton4},
	{tcell.Button5, window.MouseButton5},
}

func (s *Source) translateMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	if s.win.InputMode(window.CursorLocked) {
		if s.seenMouse {
			s.win.InputCursorMotion(x-s.lastX, y-s.lastY)
		}
	} else {
		s.win.InputCursorMotion(x, y)
	}
	s.lastX, s.lastY, s.seenMouse = x, y, true

	mask := e.Buttons()
	for _, b := range buttonMap {
		was, is := s.buttons&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was:
			s.win.InputMouseClick(b.button, window.Press)
		case was && !is:
			s.win.InputMouseClick(b.button, window.Release)
		}
	}
	s.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 | tcell.Button5)

	if mask&tcell.WheelUp != 0 {
		s.win.InputScroll(1)
	}
	if mask&tcell.WheelDown != 0 {
		s.win.InputScroll(-1)
	}
}

func modifierKeys(m tcell.ModMask) []window.Key {
	var keys []window.Key
	if m&tcell.ModShift != 0 {
		keys = append(keys, window.KeyLeftShift)
	}
	if m&tcell.ModCtrl != 0 {
		keys = append(keys, window.KeyLeftControl)
	}
	if m&tcell.ModAlt != 0 {
		keys = append(keys, window.KeyLeftAlt)
	}
	if m&tcell.ModMeta != 0 {
		keys = append(keys, window.KeyLeftSuper)
	}
	return keys
}

// convertKey maps a tcell key to a window key.
func convertKey(k tcell.Key, r rune) window.Key {
	switch k {
	case tcell.KeyRune:
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= ' ' && r < rune(window.KeySpecial) {
			return window.Key(r)
		}
		return window.KeyUnknown
	case tcell.KeyEscape:
		return window.KeyEscape
	case tcell.KeyEnter:
		return window.KeyEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		return window.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return window.KeyBackspace
	case tcell.KeyDelete:
		return window.KeyDelete
	case tcell.KeyInsert:
		return window.KeyInsert
	case tcell.KeyHome:
		return window.KeyHome
	case tcell.KeyEnd:
		return window.KeyEnd
	case tcell.KeyPgUp:
		return window.KeyPageUp
	case tcell.KeyPgDn:
		return window.KeyPageDown
	case tcell.KeyUp:
		return window.KeyUp
	case tcell.KeyDown:
		return window.KeyDown
	case tcell.KeyLeft:
		return window.KeyLeft
	case tcell.KeyRight:
		return window.KeyRight
	case tcell.KeyPause:
		return window.KeyPause
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF25 {
		return window.KeyF1 + window.Key(k-tcell.KeyF1)
	}
	return window.KeyUnknown
}
