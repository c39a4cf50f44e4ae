// Package steps holds the shared step accumulator that turns cursor travel into
// a step count.
package steps

import (
	"errors"
	"log"
	"math"
	"sync"
)

const (
	// StepLength is the cursor travel, in pixels, that makes up one step.
	StepLength = 100.0

	// MilestoneEvery is how often (in steps) a milestone is logged.
	MilestoneEvery = 10
)

// ErrPoisoned is returned by every operation after a panic unwound through a
// critical section of the counter. The state is no longer trusted.
var ErrPoisoned = errors.New("steps: counter lock poisoned")

// Snapshot is a consistent copy of the counter state.
type Snapshot struct {
	TotalDistance   float64
	Steps           uint32
	LastX           int
	LastY           int
	Initialized     bool
	PermissionError bool
}

// Counter accumulates cursor displacement and derives the step count from it.
// A Counter must not be copied after first use.
type Counter struct {
	mu       sync.Mutex
	poisoned bool

	totalDistance   float64
	steps           uint32
	lastX, lastY    int
	initialized     bool
	permissionError bool

	onMilestone func(Snapshot)
}

// Option configures a Counter.
type Option func(*Counter)

// WithMilestoneObserver registers fn to be called each time the step count
// lands on a multiple of MilestoneEvery. fn runs while the counter is locked
// and must not call back into the counter.
func WithMilestoneObserver(fn func(Snapshot)) Option {
	return func(c *Counter) {
		c.onMilestone = fn
	}
}

// New returns a zeroed counter.
func New(opts ...Option) *Counter {
	c := &Counter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// locked runs fn with the mutex held. A panic inside fn poisons the counter
// before the mutex is released and keeps unwinding.
func (c *Counter) locked(fn func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poisoned {
		return ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			c.poisoned = true
		}
	}()

	fn()
	completed = true
	return nil
}

// Update records a cursor sample. The first sample after New or Reset only
// seeds the last position.
func (c *Counter) Update(x, y int) error {
	return c.locked(func() {
		if !c.initialized {
			c.lastX, c.lastY = x, y
			c.initialized = true
			log.Printf("steps: tracking seeded at (%d, %d)", x, y)
			return
		}

		dx := float64(x - c.lastX)
		dy := float64(y - c.lastY)
		distance := math.Sqrt(dx*dx + dy*dy)
		if distance == 0 {
			return
		}

		c.totalDistance += distance
		c.lastX, c.lastY = x, y

		next := quantize(c.totalDistance)
		if next == c.steps {
			return
		}
		c.steps = next
		if next%MilestoneEvery == 0 {
			log.Printf("steps: reached %d (distance %.1fpx)", c.steps, c.totalDistance)
			if c.onMilestone != nil {
				c.onMilestone(c.snapshotLocked())
			}
		}
	})
}

// quantize truncates the distance to whole steps. Counts past the uint32
// range saturate so the step count never wraps back down.
func quantize(total float64) uint32 {
	s := math.Floor(total / StepLength)
	if s >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s)
}

// Reset zeroes the distance and steps and forces the next Update to re-seed.
// The permission error flag is left alone.
func (c *Counter) Reset() error {
	return c.locked(func() {
		c.totalDistance = 0
		c.steps = 0
		c.initialized = false
		log.Printf("steps: counter reset")
	})
}

// CurrentSteps returns the current step count.
func (c *Counter) CurrentSteps() (uint32, error) {
	var n uint32
	err := c.locked(func() {
		n = c.steps
	})
	return n, err
}

// Snapshot returns a copy of the full state.
func (c *Counter) Snapshot() (Snapshot, error) {
	var s Snapshot
	err := c.locked(func() {
		s = c.snapshotLocked()
	})
	return s, err
}

// SetPermissionError updates the permission flag and reports whether it
// changed.
func (c *Counter) SetPermissionError(v bool) (bool, error) {
	var changed bool
	err := c.locked(func() {
		changed = c.permissionError != v
		c.permissionError = v
	})
	return changed, err
}

func (c *Counter) snapshotLocked() Snapshot {
	return Snapshot{
		TotalDistance:   c.totalDistance,
		Steps:           c.steps,
		LastX:           c.lastX,
		LastY:           c.lastY,
		Initialized:     c.initialized,
		PermissionError: c.permissionError,
	}
}
