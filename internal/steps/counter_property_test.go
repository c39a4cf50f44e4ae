package steps

import (
	"fmt"
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestCounterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New()
		if err := c.Reset(); err != nil {
			t.Fatalf("Reset: %v", err)
		}

		var (
			prevTotal float64
			prevSteps uint32
			moves     = rapid.IntRange(1, 200).Draw(t, "moves")
		)
		for i := 0; i < moves; i++ {
			x := rapid.IntRange(-5000, 5000).Draw(t, fmt.Sprintf("x%d", i))
			y := rapid.IntRange(-5000, 5000).Draw(t, fmt.Sprintf("y%d", i))
			if err := c.Update(x, y); err != nil {
				t.Fatalf("Update: %v", err)
			}

			s, err := c.Snapshot()
			if err != nil {
				t.Fatalf("Snapshot: %v", err)
			}
			if i == 0 && (s.TotalDistance != 0 || s.Steps != 0) {
				t.Fatalf("seed sample changed state: %+v", s)
			}
			if want := uint32(math.Floor(s.TotalDistance / StepLength)); s.Steps != want {
				t.Fatalf("steps = %d, want floor(%f/100) = %d", s.Steps, s.TotalDistance, want)
			}
			if s.TotalDistance < prevTotal {
				t.Fatalf("distance decreased from %f to %f", prevTotal, s.TotalDistance)
			}
			if s.Steps < prevSteps {
				t.Fatalf("steps decreased from %d to %d", prevSteps, s.Steps)
			}
			prevTotal, prevSteps = s.TotalDistance, s.Steps
		}
	})
}

func TestRepeatedSampleIsNoopProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New()
		x0 := rapid.IntRange(-5000, 5000).Draw(t, "x0")
		y0 := rapid.IntRange(-5000, 5000).Draw(t, "y0")
		x := rapid.IntRange(-5000, 5000).Draw(t, "x")
		y := rapid.IntRange(-5000, 5000).Draw(t, "y")

		_ = c.Update(x0, y0)
		_ = c.Update(x, y)
		before, _ := c.Snapshot()
		_ = c.Update(x, y)
		after, _ := c.Snapshot()

		if before != after {
			t.Fatalf("repeating (%d, %d) changed state: %+v -> %+v", x, y, before, after)
		}
	})
}
