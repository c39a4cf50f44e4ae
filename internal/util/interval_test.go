package util

import (
	"strings"
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		wantError bool
	}{
		{name: "bare milliseconds", input: "50", expected: 50 * time.Millisecond},
		{name: "bare milliseconds - one second", input: "1000", expected: time.Second},
		{name: "duration - milliseconds", input: "50ms", expected: 50 * time.Millisecond},
		{name: "duration - seconds", input: "5s", expected: 5 * time.Second},
		{name: "duration - mixed", input: "1m30s", expected: 90 * time.Second},

		{name: "zero", input: "0", wantError: true},
		{name: "negative", input: "-5", wantError: true},
		{name: "negative duration", input: "-1s", wantError: true},
		{name: "letters", input: "abc", wantError: true},
		{name: "empty string", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseInterval(%q) expected error but got none", tt.input)
				}
				if err != nil && !strings.Contains(err.Error(), "invalid interval") {
					t.Errorf("ParseInterval(%q) error should name the problem, got: %v", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseInterval(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseInterval(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
