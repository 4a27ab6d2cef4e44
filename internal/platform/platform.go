// Package platform provides the hooks that move the physical cursor of a
// native window. Each OS gets a CGO-free implementation loaded on first use.
package platform

import (
	"errors"
	"log/slog"

	"github.com/alexrfelicio/glfw/internal/window"
)

// ErrUnsupported is returned by Native on systems without a backend.
var ErrUnsupported = errors.New("platform: no native cursor backend for this system")

// Hook is a window.Platform that may hold native resources.
type Hook interface {
	window.Platform
	Close() error
}

// Native loads the cursor backend for the running OS.
func Native() (Hook, error) {
	return newNative()
}

// Logging is a hook for headless use. It records cursor moves in the log
// instead of moving anything.
type Logging struct {
	Logger *slog.Logger
}

func (l Logging) SetCursorPos(handle uintptr, x, y int) {
	l.Logger.Info("set cursor position", "handle", handle, "x", x, "y", y)
}

func (Logging) Close() error { return nil }

// None ignores every cursor move.
type None struct{}

func (None) SetCursorPos(uintptr, int, int) {}

func (None) Close() error { return nil }
