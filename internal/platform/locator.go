// Package platform reads the global cursor position on each supported OS.
package platform

import "errors"

var (
	// ErrPermissionDenied means the OS refused to report the cursor position.
	// Granting the permission while the process runs fixes it.
	ErrPermissionDenied = errors.New("platform: permission to read the cursor denied")

	// ErrUnavailable means the pointer could not be read right now, for example
	// because the display is locked or disconnected.
	ErrUnavailable = errors.New("platform: cursor position unavailable")

	// ErrUnsupported means this platform or session cannot report a global
	// cursor position at all.
	ErrUnsupported = errors.New("platform: cursor tracking unsupported")
)

// Point is an absolute screen coordinate in pixels.
type Point struct {
	X int
	Y int
}

// Locator reports the current absolute cursor position.
type Locator interface {
	Location() (Point, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func() (Point, error)

// Location implements Locator.
func (f LocatorFunc) Location() (Point, error) {
	return f()
}
