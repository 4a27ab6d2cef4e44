//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetCursorPos   = user32.NewProc("SetCursorPos")
	procClientToScreen = user32.NewProc("ClientToScreen")
)

type point struct {
	x, y int32
}

// Win32 warps the cursor with SetCursorPos. The window handle is an HWND.
type Win32 struct{}

func newNative() (Hook, error) {
	for _, p := range []*windows.LazyProc{procSetCursorPos, procClientToScreen} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("missing procedure %q: %w", p.Name, err)
		}
	}
	return Win32{}, nil
}

// SetCursorPos converts client coordinates to screen coordinates and moves
// the cursor there.
func (Win32) SetCursorPos(handle uintptr, x, y int) {
	p := point{x: int32(x), y: int32(y)}
	if handle != 0 {
		procClientToScreen.Call(handle, uintptr(unsafe.Pointer(&p)))
	}
	procSetCursorPos.Call(uintptr(p.x), uintptr(p.y))
}

func (Win32) Close() error { return nil }
