//go:build linux

package linux

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// CursorPosition asks xdotool for the absolute pointer position.
func CursorPosition() (x, y int, err error) {
	out, err := runVerbose(cursorTool, "getmouselocation", "--shell")
	if err != nil {
		return 0, 0, fmt.Errorf("%s getmouselocation: %v (output: %q)", cursorTool, err, out)
	}
	return parseMouseLocation(out)
}

// parseMouseLocation reads the X= and Y= lines of `xdotool getmouselocation --shell`.
func parseMouseLocation(out string) (x, y int, err error) {
	var haveX, haveY bool
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		switch key {
		case "X":
			if x, err = strconv.Atoi(value); err != nil {
				return 0, 0, fmt.Errorf("bad X value %q: %v", value, err)
			}
			haveX = true
		case "Y":
			if y, err = strconv.Atoi(value); err != nil {
				return 0, 0, fmt.Errorf("bad Y value %q: %v", value, err)
			}
			haveY = true
		}
	}
	if !haveX || !haveY {
		return 0, 0, fmt.Errorf("unexpected %s output: %q", cursorTool, out)
	}
	return x, y, nil
}
