//go:build !linux && !darwin && !windows

package platform

func newNative() (Hook, error) {
	return nil, ErrUnsupported
}
