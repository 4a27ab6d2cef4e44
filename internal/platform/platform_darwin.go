//go:build darwin

package platform

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

type cgPoint struct {
	X float64
	Y float64
}

type cgSize struct {
	W float64
	H float64
}

type cgRect struct {
	Origin cgPoint
	Size   cgSize
}

var (
	cocoaOnce sync.Once
	cocoaErr  error

	cgMainDisplayID           func() uint32
	cgDisplayBounds           func(uint32) cgRect
	cgWarpMouseCursorPosition func(cgPoint) int32
	cgAssociateMouseAndCursor func(int32) int32

	selFrame                   objc.SEL
	selContentRectForFrameRect objc.SEL
)

// Cocoa warps the cursor with CGWarpMouseCursorPosition. The window handle
// is an NSWindow id.
type Cocoa struct{}

func newNative() (Hook, error) {
	if err := ensureCocoa(); err != nil {
		return nil, err
	}
	return Cocoa{}, nil
}

// SetCursorPos moves the cursor relative to the top-left corner of the
// window's content area.
func (Cocoa) SetCursorPos(handle uintptr, x, y int) {
	if handle == 0 {
		return
	}
	win := objc.ID(handle)
	frame := objc.Send[cgRect](win, selFrame)
	content := objc.Send[cgRect](win, selContentRectForFrameRect, frame)

	// Cocoa counts y from the bottom of the main display, CoreGraphics from
	// the top.
	screen := cgDisplayBounds(cgMainDisplayID())
	pt := cgPoint{
		X: content.Origin.X + float64(x),
		Y: screen.Size.H - (content.Origin.Y + content.Size.H) + float64(y),
	}
	cgWarpMouseCursorPosition(pt)
	// Warping suppresses mouse events for a short interval unless the mouse
	// is reassociated.
	cgAssociateMouseAndCursor(1)
}

func (Cocoa) Close() error { return nil }

func ensureCocoa() error {
	cocoaOnce.Do(func() {
		if _, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_GLOBAL); err != nil {
			cocoaErr = fmt.Errorf("load libobjc: %w", err)
			return
		}
		if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL); err != nil {
			cocoaErr = fmt.Errorf("load AppKit: %w", err)
			return
		}
		cg, err := purego.Dlopen("/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics", purego.RTLD_GLOBAL)
		if err != nil {
			cocoaErr = fmt.Errorf("load CoreGraphics: %w", err)
			return
		}
		purego.RegisterLibFunc(&cgMainDisplayID, cg, "CGMainDisplayID")
		purego.RegisterLibFunc(&cgDisplayBounds, cg, "CGDisplayBounds")
		purego.RegisterLibFunc(&cgWarpMouseCursorPosition, cg, "CGWarpMouseCursorPosition")
		purego.RegisterLibFunc(&cgAssociateMouseAndCursor, cg, "CGAssociateMouseAndMouseCursorPosition")

		selFrame = objc.RegisterName("frame")
		selContentRectForFrameRect = objc.RegisterName("contentRectForFrameRect:")
	})
	return cocoaErr
}
