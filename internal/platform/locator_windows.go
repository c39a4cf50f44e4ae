//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32        = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = moduser32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

type windowsLocator struct{}

func (windowsLocator) Location() (Point, error) {
	var pt point
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		if err == windows.ERROR_ACCESS_DENIED {
			return Point{}, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// NewLocator returns a locator backed by GetCursorPos.
func NewLocator() (Locator, error) {
	if err := procGetCursorPos.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return windowsLocator{}, nil
}

// PermissionHelp explains how to let the process read the cursor.
func PermissionHelp() string {
	return "The cursor cannot be read while the secure desktop (lock screen or UAC prompt) is active. " +
		"Unlock the session; tracking resumes automatically."
}
