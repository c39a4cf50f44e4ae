package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseInterval parses a polling interval. Bare integers are milliseconds,
// anything else must be a Go duration string such as "50ms" or "5s".
func ParseInterval(input string) (time.Duration, error) {
	if ms, err := strconv.Atoi(input); err == nil {
		if ms <= 0 {
			return 0, fmt.Errorf("invalid interval: %s\n\nInterval must be positive", input)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid interval: %s\n\nValid formats:\n"+
			"• milliseconds: 50, 1000\n"+
			"• duration: 50ms, 5s, 1m", input)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid interval: %s\n\nInterval must be positive", input)
	}
	return d, nil
}
