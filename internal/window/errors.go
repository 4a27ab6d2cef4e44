package window

import "fmt"

// ErrorCode is a value recorded in a Library's error slot.
//
// Operations on a Window never return errors. When one rejects its input it
// records a code here and returns a neutral value, so callers that care
// query Library.LastError afterwards.
type ErrorCode int

const (
	NoError ErrorCode = iota
	// ErrNotInitialized is recorded by every operation made while the
	// library is not initialized.
	ErrNotInitialized
	// ErrInvalidEnum is recorded for an out-of-range mouse button or input
	// mode.
	ErrInvalidEnum
	// ErrInvalidValue is recorded for an out-of-range key.
	ErrInvalidValue
)

// Error implements the error interface.
func (c ErrorCode) Error() string {
	switch c {
	case NoError:
		return "no error"
	case ErrNotInitialized:
		return "library is not initialized"
	case ErrInvalidEnum:
		return "invalid enum"
	case ErrInvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("error code %d", int(c))
	}
}

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "NoError"
	case ErrNotInitialized:
		return "NotInitialized"
	case ErrInvalidEnum:
		return "InvalidEnum"
	case ErrInvalidValue:
		return "InvalidValue"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}
