//go:build !darwin && !linux && !windows

package platform

import (
	"fmt"
	"runtime"
)

// NewLocator reports that cursor tracking is not available on this OS.
func NewLocator() (Locator, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
}

// PermissionHelp explains how to let the process read the cursor.
func PermissionHelp() string {
	return "Cursor tracking is not supported on " + runtime.GOOS + "; try the -demo flag."
}
