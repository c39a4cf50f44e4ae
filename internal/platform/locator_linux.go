//go:build linux

package platform

import (
	"fmt"
	"strings"

	"github.com/stigoleg/step-pet/internal/platform/linux"
)

type xdotoolLocator struct{}

func (xdotoolLocator) Location() (Point, error) {
	x, y, err := linux.CursorPosition()
	if err != nil {
		if strings.Contains(err.Error(), "open display") || strings.Contains(err.Error(), "Authorization") {
			return Point{}, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Point{X: x, Y: y}, nil
}

// NewLocator returns an X11 locator backed by xdotool.
func NewLocator() (Locator, error) {
	switch linux.DetectDisplayServer() {
	case linux.DisplayServerWayland:
		return nil, fmt.Errorf("%w: Wayland does not expose the global cursor position", ErrUnsupported)
	case linux.DisplayServerUnknown:
		return nil, fmt.Errorf("%w: no X11 display found (DISPLAY is not set)", ErrUnsupported)
	}
	if !linux.HasCursorTool() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, linux.CursorToolHint())
	}
	return xdotoolLocator{}, nil
}

// PermissionHelp explains how to let the process read the cursor.
func PermissionHelp() string {
	return "Make sure the X server accepts connections from this user " +
		"(check DISPLAY and XAUTHORITY, or run `xhost +si:localuser:$USER`)."
}
