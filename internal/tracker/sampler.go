package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/stigoleg/step-pet/internal/platform"
	"github.com/stigoleg/step-pet/internal/steps"
)

// State is the sampler's position in its Sampling/Backoff cycle.
type State int

const (
	StateIdle State = iota
	StateSampling
	StateBackoff
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSampling:
		return "Sampling"
	case StateBackoff:
		return "Backoff"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// ErrSamplerPanicked is returned by Sampler.Run when a panic was recovered.
var ErrSamplerPanicked = errors.New("sampler panicked")

// Sleeper blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Sampler polls a Locator and feeds positions into a steps.Counter.
type Sampler struct {
	counter         *steps.Counter
	locator         platform.Locator
	sampleInterval  time.Duration
	backoffInterval time.Duration
	sleep           Sleeper
	help            func() string
	onState         func(State)

	mu    sync.Mutex
	state State

	// consecutive failed reads; only touched by Run's goroutine
	failures int
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithSampleInterval sets the delay between successful samples.
func WithSampleInterval(d time.Duration) SamplerOption {
	return func(s *Sampler) { s.sampleInterval = d }
}

// WithBackoffInterval sets the delay after a failed sample.
func WithBackoffInterval(d time.Duration) SamplerOption {
	return func(s *Sampler) { s.backoffInterval = d }
}

// WithSleeper replaces the timer-based sleep, mainly for tests.
func WithSleeper(fn Sleeper) SamplerOption {
	return func(s *Sampler) { s.sleep = fn }
}

// WithPermissionHelp replaces the remediation text logged on the first failure.
func WithPermissionHelp(fn func() string) SamplerOption {
	return func(s *Sampler) { s.help = fn }
}

// WithStateObserver registers fn to be called on every state transition.
func WithStateObserver(fn func(State)) SamplerOption {
	return func(s *Sampler) { s.onState = fn }
}

// NewSampler builds a sampler with the default cadence.
func NewSampler(counter *steps.Counter, locator platform.Locator, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		counter:         counter,
		locator:         locator,
		sampleInterval:  DefaultSampleInterval,
		backoffInterval: DefaultBackoffInterval,
		sleep:           sleepContext,
		help:            platform.PermissionHelp,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Sampler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Sampler) setState(next State) {
	s.mu.Lock()
	changed := s.state != next
	s.state = next
	s.mu.Unlock()

	if changed && s.onState != nil {
		s.onState(next)
	}
}

// Run samples until ctx is done. It returns nil on cancellation and an error
// when the counter can no longer be used. Panics are recovered and reported
// as ErrSamplerPanicked so only this task stops.
func (s *Sampler) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sampler: recovered from panic: %v", r)
			err = fmt.Errorf("%w: %v", ErrSamplerPanicked, r)
		}
		s.setState(StateStopped)
	}()

	log.Printf("sampler: started (every %s, backoff %s)", s.sampleInterval, s.backoffInterval)
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.setState(StateSampling)
		next, wait, err := s.step()
		if err != nil {
			log.Printf("sampler: stopping: %v", err)
			return err
		}
		s.setState(next)

		if err := s.sleep(ctx, wait); err != nil {
			return nil
		}
	}
}

// step takes one sample and returns the state to wait in and for how long.
func (s *Sampler) step() (State, time.Duration, error) {
	pt, err := s.locator.Location()
	if err != nil {
		s.failures++
		if s.failures == 1 {
			if _, cerr := s.counter.SetPermissionError(true); cerr != nil {
				return StateStopped, 0, cerr
			}
			log.Printf("sampler: cannot read cursor position: %v", err)
			log.Printf("sampler: %s", s.help())
		}
		return StateBackoff, s.backoffInterval, nil
	}

	if s.failures > 0 {
		s.failures = 0
		changed, cerr := s.counter.SetPermissionError(false)
		if cerr != nil {
			return StateStopped, 0, cerr
		}
		if changed {
			log.Printf("sampler: cursor access restored")
		}
	}

	if err := s.counter.Update(pt.X, pt.Y); err != nil {
		return StateStopped, 0, err
	}
	return StateSampling, s.sampleInterval, nil
}
