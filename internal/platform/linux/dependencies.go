//go:build linux

package linux

import "fmt"

// cursorTool is the X11 helper used to read the pointer position.
const cursorTool = "xdotool"

// HasCursorTool reports whether xdotool is on PATH.
func HasCursorTool() bool {
	return hasCommand(cursorTool)
}

// InstallCommand returns a distro-specific command that installs tool.
func InstallCommand(tool string, distro DistroInfo) string {
	switch distro.PkgManager {
	case "apt":
		return fmt.Sprintf("sudo apt update && sudo apt install %s", tool)
	case "dnf", "yum":
		return fmt.Sprintf("sudo %s install %s", distro.PkgManager, tool)
	case "pacman":
		return fmt.Sprintf("sudo pacman -S %s", tool)
	case "zypper":
		return fmt.Sprintf("sudo zypper install %s", tool)
	case "apk":
		return fmt.Sprintf("sudo apk add %s", tool)
	default:
		return fmt.Sprintf("install %s using your distribution's package manager", tool)
	}
}

// CursorToolHint explains that xdotool is missing and how to install it.
func CursorToolHint() string {
	return fmt.Sprintf("%s not found; install it with: %s",
		cursorTool, InstallCommand(cursorTool, DetectDistribution()))
}
