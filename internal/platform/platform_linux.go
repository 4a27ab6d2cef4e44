//go:build linux

package platform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	x11Once sync.Once
	x11Err  error
	x11lib  uintptr

	xOpenDisplay  func(*byte) uintptr
	xCloseDisplay func(uintptr) int32
	xWarpPointer  func(uintptr, uintptr, uintptr, int32, int32, uint32, uint32, int32, int32) int32
	xFlush        func(uintptr) int32
)

// X11 warps the pointer with XWarpPointer. The window handle is an X11
// Window id on the display opened by Native.
type X11 struct {
	display uintptr
}

func newNative() (Hook, error) {
	if err := ensureX11(); err != nil {
		return nil, err
	}
	dpy := xOpenDisplay(nil)
	if dpy == 0 {
		return nil, errors.New("XOpenDisplay failed")
	}
	return &X11{display: dpy}, nil
}

// SetCursorPos moves the pointer relative to the window's origin.
func (p *X11) SetCursorPos(handle uintptr, x, y int) {
	if p.display == 0 || handle == 0 {
		return
	}
	xWarpPointer(p.display, 0, handle, 0, 0, 0, 0, int32(x), int32(y))
	xFlush(p.display)
}

func (p *X11) Close() error {
	if p.display != 0 {
		xCloseDisplay(p.display)
		p.display = 0
	}
	return nil
}

func ensureX11() error {
	x11Once.Do(func() {
		x11lib, x11Err = purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if x11Err != nil {
			x11Err = fmt.Errorf("load libX11: %w", x11Err)
			return
		}
		purego.RegisterLibFunc(&xOpenDisplay, x11lib, "XOpenDisplay")
		purego.RegisterLibFunc(&xCloseDisplay, x11lib, "XCloseDisplay")
		purego.RegisterLibFunc(&xWarpPointer, x11lib, "XWarpPointer")
		purego.RegisterLibFunc(&xFlush, x11lib, "XFlush")
	})
	return x11Err
}
