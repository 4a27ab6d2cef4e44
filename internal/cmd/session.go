// Package cmd implements the glfwinput commands.
package cmd

import (
	"log/slog"

	"github.com/alexrfelicio/glfw/internal/config"
	"github.com/alexrfelicio/glfw/internal/platform"
	"github.com/alexrfelicio/glfw/internal/window"
)

// session is an initialized library with one configured window.
type session struct {
	lib  *window.Library
	win  *window.Window
	hook platform.Hook
}

func newSession(logger *slog.Logger, in *config.Input, pf *config.Platform) (*session, error) {
	hook, err := pf.NewHook(logger)
	if err != nil {
		return nil, err
	}

	lib := window.NewLibrary(window.WithPlatform(hook), window.WithLogger(logger))
	lib.Init()

	win := lib.NewWindow(uintptr(pf.Handle))
	in.Apply(win)
	logCallbacks(win, logger)

	return &session{lib: lib, win: win, hook: hook}, nil
}

func (s *session) Close() error {
	s.lib.Terminate()
	return s.hook.Close()
}

// logCallbacks registers callbacks that log every delivered event. The
// cursor and wheel callbacks log the current state once on registration.
func logCallbacks(w *window.Window, logger *slog.Logger) {
	w.SetKeyCallback(func(_ *window.Window, key window.Key, action window.Action) {
		logger.Debug("key", "key", key.String(), "action", action.String())
	})
	w.SetCharCallback(func(_ *window.Window, char rune) {
		logger.Debug("char", "char", string(char))
	})
	w.SetMouseButtonCallback(func(_ *window.Window, button window.MouseButton, action window.Action) {
		logger.Debug("mouse button", "button", button.String(), "action", action.String())
	})
	w.SetCursorPosCallback(func(_ *window.Window, x, y int) {
		logger.Debug("cursor", "x", x, "y", y)
	})
	w.SetWheelCallback(func(_ *window.Window, pos int) {
		logger.Debug("wheel", "pos", pos)
	})
}
