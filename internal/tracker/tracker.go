// Package tracker runs the cursor sampler and the step publisher against a
// shared steps.Counter.
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

// Default cadence of the background loops.
const (
	DefaultSampleInterval  = 50 * time.Millisecond
	DefaultBackoffInterval = 5 * time.Second
	DefaultPublishInterval = time.Second

	stopTimeout = 2 * time.Second
)

// Config holds the loop intervals. Zero values fall back to the defaults.
type Config struct {
	SampleInterval  time.Duration
	BackoffInterval time.Duration
	PublishInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.SampleInterval <= 0 {
		c.SampleInterval = DefaultSampleInterval
	}
	if c.BackoffInterval <= 0 {
		c.BackoffInterval = DefaultBackoffInterval
	}
	if c.PublishInterval <= 0 {
		c.PublishInterval = DefaultPublishInterval
	}
	return c
}

// LocatorFactory opens the cursor source when the tracker starts.
type LocatorFactory func() (platform.Locator, error)

// Tracker owns the background loops that keep a steps.Counter up to date.
type Tracker struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	counter    *steps.Counter
	newLocator LocatorFactory
	cfg        Config
	emit       func(uint32)
	samplerOpt []SamplerOption

	sampler    *Sampler
	samplerErr error
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithConfig sets the loop intervals.
func WithConfig(cfg Config) Option {
	return func(t *Tracker) { t.cfg = cfg }
}

// WithEmitter sets where the publisher sends step counts.
func WithEmitter(fn func(uint32)) Option {
	return func(t *Tracker) { t.emit = fn }
}

// WithSamplerOptions passes extra options to the sampler.
func WithSamplerOptions(opts ...SamplerOption) Option {
	return func(t *Tracker) { t.samplerOpt = append(t.samplerOpt, opts...) }
}

// New creates a tracker for counter. newLocator is called once per Start.
func New(counter *steps.Counter, newLocator LocatorFactory, opts ...Option) *Tracker {
	t := &Tracker{
		counter:    counter,
		newLocator: newLocator,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.cfg = t.cfg.withDefaults()
	return t
}

// Start launches the sampler and publisher. If the cursor source cannot be
// opened the sampler is skipped and only the publisher runs; the reason is
// available from SamplerErr.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return errors.New("tracker already running")
	}

	ctx, t.cancel = context.WithCancel(ctx)
	t.samplerErr = nil
	t.sampler = nil

	locator, err := t.newLocator()
	if err != nil {
		log.Printf("tracker: cursor tracking disabled: %v", err)
		t.samplerErr = err
	} else {
		opts := append([]SamplerOption{
			WithSampleInterval(t.cfg.SampleInterval),
			WithBackoffInterval(t.cfg.BackoffInterval),
		}, t.samplerOpt...)
		t.sampler = NewSampler(t.counter, locator, opts...)

		t.wg.Add(1)
		go func(s *Sampler) {
			defer t.wg.Done()
			if err := s.Run(ctx); err != nil {
				t.mu.Lock()
				t.samplerErr = err
				t.mu.Unlock()
			}
		}(t.sampler)
	}

	publisher := NewPublisher(t.counter, t.cfg.PublishInterval, t.emit)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		publisher.Run(ctx)
	}()

	t.running = true
	log.Printf("tracker: started")
	return nil
}

// Stop cancels the background loops and waits briefly for them to exit.
func (t *Tracker) Stop() error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return nil
	}
	t.cancel()
	t.cancel = nil
	t.running = false
	t.mu.Unlock()

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Printf("tracker: stopped")
		return nil
	case <-time.After(stopTimeout):
		log.Printf("tracker: stop timeout exceeded after %v", stopTimeout)
		return errors.New("tracker: background loops did not stop in time")
	}
}

// IsRunning reports whether Start has been called without a matching Stop.
func (t *Tracker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Reset clears the accumulated distance and steps.
func (t *Tracker) Reset() error {
	if err := t.counter.Reset(); err != nil {
		return fmt.Errorf("unable to reset counter: %w", err)
	}
	return nil
}

// CurrentSteps returns the current step count.
func (t *Tracker) CurrentSteps() (uint32, error) {
	n, err := t.counter.CurrentSteps()
	if err != nil {
		return 0, fmt.Errorf("unable to get steps: %w", err)
	}
	return n, nil
}

// Snapshot returns the full counter state.
func (t *Tracker) Snapshot() (steps.Snapshot, error) {
	s, err := t.counter.Snapshot()
	if err != nil {
		return steps.Snapshot{}, fmt.Errorf("unable to read counter: %w", err)
	}
	return s, nil
}

// SamplerState returns the sampler's state, or StateStopped if it never ran.
func (t *Tracker) SamplerState() State {
	t.mu.Lock()
	s := t.sampler
	t.mu.Unlock()
	if s == nil {
		return StateStopped
	}
	return s.State()
}

// SamplerErr returns why the sampler is not running, if it stopped abnormally
// or could not start.
func (t *Tracker) SamplerErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.samplerErr
}
