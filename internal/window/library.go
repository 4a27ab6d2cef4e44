package window

import "log/slog"

// Platform is the backend hook that moves the physical cursor. The handle is
// whatever native window handle the window was created with.
type Platform interface {
	SetCursorPos(handle uintptr, x, y int)
}

// Library is the process-wide input context. Every Window belongs to exactly
// one Library, and every operation on a Window checks that its Library is
// initialized.
type Library struct {
	platform Platform
	logger   *slog.Logger

	initialized bool
	lastError   ErrorCode

	// cursorLock is the window that currently has the cursor captured, if
	// any. The library does not own it.
	cursorLock *Window
}

type Option func(*Library)

// WithPlatform sets the hook used to move the physical cursor.
func WithPlatform(p Platform) Option {
	return func(l *Library) { l.platform = p }
}

// WithLogger sets the logger used to report rejected calls.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) { l.logger = logger }
}

// NewLibrary returns an uninitialized library. Call Init before using any
// window created from it.
func NewLibrary(opts ...Option) *Library {
	l := &Library{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	if l.platform == nil {
		l.platform = nopPlatform{}
	}
	return l
}

// Init marks the library as initialized.
func (l *Library) Init() {
	l.initialized = true
	l.logger.Debug("input library initialized")
}

// Terminate marks the library as uninitialized and drops the cursor lock.
// Windows keep their state but reject every operation until Init is called
// again.
func (l *Library) Terminate() {
	l.initialized = false
	l.cursorLock = nil
	l.logger.Debug("input library terminated")
}

func (l *Library) Initialized() bool {
	return l.initialized
}

// LastError returns the most recently recorded error code.
func (l *Library) LastError() ErrorCode {
	return l.lastError
}

// Err returns the recorded error code as an error, or nil if none was
// recorded.
func (l *Library) Err() error {
	if l.lastError == NoError {
		return nil
	}
	return l.lastError
}

// ClearError resets the error slot to NoError.
func (l *Library) ClearError() {
	l.lastError = NoError
}

// CursorLockWindow returns the window holding the cursor lock, or nil.
func (l *Library) CursorLockWindow() *Window {
	return l.cursorLock
}

// NewWindow allocates the input record for a native window. All keys and
// buttons start released, the cursor at the origin and the wheel at zero.
func (l *Library) NewWindow(handle uintptr) *Window {
	return &Window{
		lib:    l,
		handle: handle,
	}
}

// ready reports whether the library is initialized, recording
// ErrNotInitialized when it is not.
func (l *Library) ready(op string) bool {
	if l.initialized {
		return true
	}
	l.setError(ErrNotInitialized, op)
	return false
}

func (l *Library) setError(code ErrorCode, op string, args ...any) {
	l.lastError = code
	l.logger.Debug("input call rejected", append([]any{"op", op, "error", code.String()}, args...)...)
}

type nopPlatform struct{}

func (nopPlatform) SetCursorPos(uintptr, int, int) {}
