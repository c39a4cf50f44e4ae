package tracker

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stigoleg/step-pet/internal/platform"
	"github.com/stigoleg/step-pet/internal/steps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLocator replays a fixed list of results, repeating the last one.
type scriptedLocator struct {
	mu      sync.Mutex
	results []locResult
	calls   int
}

type locResult struct {
	pt  platform.Point
	err error
}

func ok(x, y int) locResult { return locResult{pt: platform.Point{X: x, Y: y}} }

func fail(err error) locResult { return locResult{err: err} }

func script(r ...locResult) *scriptedLocator { return &scriptedLocator{results: r} }

func (s *scriptedLocator) Location() (platform.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	s.calls++
	return s.results[i].pt, s.results[i].err
}

// recordingSleeper records requested delays and cancels after limit sleeps.
type recordingSleeper struct {
	cancel  context.CancelFunc
	limit   int
	delays  []time.Duration
	onSleep func(n int)
}

func (r *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	if r.onSleep != nil {
		r.onSleep(len(r.delays))
	}
	if len(r.delays) >= r.limit {
		r.cancel()
	}
	return ctx.Err()
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestSamplerAccumulatesSteps(t *testing.T) {
	counter := steps.New()
	loc := script(ok(0, 0), ok(100, 0), ok(100, 100), ok(150, 100))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recordingSleeper{cancel: cancel, limit: 4}

	s := NewSampler(counter, loc, WithSleeper(rec.sleep))
	require.NoError(t, s.Run(ctx))

	n, err := counter.CurrentSteps()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)
	assert.Equal(t, []time.Duration{
		DefaultSampleInterval, DefaultSampleInterval, DefaultSampleInterval, DefaultSampleInterval,
	}, rec.delays)
	assert.Equal(t, StateStopped, s.State())
}

func TestSamplerPermissionFailureBacksOffAndRetries(t *testing.T) {
	logs := captureLog(t)
	counter := steps.New()
	loc := script(fail(platform.ErrPermissionDenied), ok(10, 10), ok(10, 110))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var flagDuringBackoff bool
	rec := &recordingSleeper{cancel: cancel, limit: 3}
	rec.onSleep = func(n int) {
		if n == 1 {
			snap, err := counter.Snapshot()
			require.NoError(t, err)
			flagDuringBackoff = snap.PermissionError
		}
	}

	var states []State
	s := NewSampler(counter, loc,
		WithSleeper(rec.sleep),
		WithBackoffInterval(5*time.Second),
		WithPermissionHelp(func() string { return "grant accessibility access" }),
		WithStateObserver(func(st State) { states = append(states, st) }),
	)
	require.NoError(t, s.Run(ctx))

	assert.True(t, flagDuringBackoff, "permission flag should be set while backing off")
	assert.Equal(t, []time.Duration{5 * time.Second, DefaultSampleInterval, DefaultSampleInterval}, rec.delays)
	assert.Equal(t, 3, loc.calls, "sample after backoff must be retried")
	assert.Equal(t, []State{StateSampling, StateBackoff, StateSampling, StateStopped}, states)

	snap, err := counter.Snapshot()
	require.NoError(t, err)
	assert.False(t, snap.PermissionError, "successful read clears the flag")
	assert.Equal(t, uint32(1), snap.Steps)

	assert.Contains(t, logs.String(), "grant accessibility access")
	assert.Contains(t, logs.String(), "cursor access restored")
}

func TestSamplerLogsRemediationOncePerOutage(t *testing.T) {
	logs := captureLog(t)
	counter := steps.New()
	loc := script(fail(platform.ErrUnavailable))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recordingSleeper{cancel: cancel, limit: 4}

	helpCalls := 0
	s := NewSampler(counter, loc,
		WithSleeper(rec.sleep),
		WithPermissionHelp(func() string { helpCalls++; return "fix it" }),
	)
	require.NoError(t, s.Run(ctx))

	assert.Equal(t, 1, helpCalls)
	assert.Equal(t, 1, bytes.Count(logs.Bytes(), []byte("cannot read cursor position")))
	for _, d := range rec.delays {
		assert.Equal(t, DefaultBackoffInterval, d)
	}
}

func TestSamplerStopsWhenCounterPoisoned(t *testing.T) {
	captureLog(t)
	counter := steps.New(steps.WithMilestoneObserver(func(steps.Snapshot) {
		panic("boom")
	}))
	loc := script(ok(0, 0), ok(1000, 0), ok(2000, 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recordingSleeper{cancel: cancel, limit: 10}

	s := NewSampler(counter, loc, WithSleeper(rec.sleep))
	err := s.Run(ctx)
	require.ErrorIs(t, err, ErrSamplerPanicked)
	assert.Equal(t, StateStopped, s.State())

	_, err = counter.CurrentSteps()
	assert.ErrorIs(t, err, steps.ErrPoisoned)
}

func TestSamplerReturnsPoisonError(t *testing.T) {
	captureLog(t)
	counter := steps.New(steps.WithMilestoneObserver(func(steps.Snapshot) {
		panic("boom")
	}))
	require.NoError(t, counter.Update(0, 0))
	require.Panics(t, func() { _ = counter.Update(1000, 0) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recordingSleeper{cancel: cancel, limit: 10}

	s := NewSampler(counter, script(ok(5, 5)), WithSleeper(rec.sleep))
	err := s.Run(ctx)
	assert.ErrorIs(t, err, steps.ErrPoisoned)
	assert.Empty(t, rec.delays)
}

func TestSamplerRealSleepCancels(t *testing.T) {
	captureLog(t)
	counter := steps.New()
	s := NewSampler(counter, script(ok(1, 1)), WithSampleInterval(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sampler did not stop after context cancellation")
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Sampling", StateSampling.String())
	assert.Equal(t, "Backoff", StateBackoff.String())
	assert.Equal(t, "Unknown", State(42).String())
}
