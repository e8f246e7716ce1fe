package retry_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errExists = errors.New("file exists")

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return ctx.Err()
}

// flaky fails with the queued errors one by one, then succeeds.
func flaky(attempts *int, failures ...error) call.Fn {
	return call.Named("flaky", func(context.Context, call.Args) (any, error) {
		*attempts++
		if len(failures) > 0 {
			err := failures[0]
			failures = failures[1:]
			return nil, err
		}
		return "ok", nil
	})
}

func repeat(n int) []error {
	out := make([]error, n)
	for i := range out {
		out[i] = fmt.Errorf("attempt %d: %w", i+1, errExists)
	}
	return out
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(3)...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(3),
		retry.WithDelay(10*time.Millisecond),
		retry.WithClock(clock),
	)
	require.NoError(t, err)

	res, err := fn.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 10 * time.Millisecond}, clock.sleeps)
}

func TestRetryExhausted(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	failures := repeat(4)
	fn, err := retry.Wrap(
		flaky(&attempts, failures...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(3),
		retry.WithClock(clock),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	assert.Equal(t, 4, attempts)
	// the final failure comes back unchanged
	assert.Same(t, failures[3], err)
	// no delay after the final attempt
	assert.Len(t, clock.sleeps, 3)
}

func TestRetryUnspecifiedFailure(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	other := errors.New("permission denied")
	retried := false
	fn, err := retry.Wrap(
		flaky(&attempts, other, errExists),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithClock(clock),
		retry.OnRetry(func(context.Context, int, error, time.Duration) { retried = true }),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	assert.Same(t, other, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, clock.sleeps)
	assert.False(t, retried)
}

func TestRetryZeroRetries(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(1)...),
		[]retry.Kind{retry.AnyError},
		retry.WithMaxRetries(0),
		retry.WithClock(clock),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	assert.ErrorIs(t, err, errExists)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, clock.sleeps)
}

func TestRetryRestartsOnEveryCall(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(3)...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(1),
		retry.WithClock(clock),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	assert.ErrorIs(t, err, errExists)
	assert.Equal(t, 2, attempts)

	res, err := fn.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 4, attempts)
}

func TestRetryRealDelay(t *testing.T) {
	attempts := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(3)...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(3),
		retry.WithDelay(10*time.Millisecond),
	)
	require.NoError(t, err)

	start := time.Now()
	_, err = fn.Invoke(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRetryContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(5)...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithDelay(time.Hour),
		retry.OnRetry(func(context.Context, int, error, time.Duration) { cancel() }),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errExists)
	assert.Equal(t, 1, attempts)
}

func TestRetryHooks(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	var retries []int
	exhausted := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(3)...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(2),
		retry.WithClock(clock),
		retry.OnRetry(func(_ context.Context, attempt int, err error, _ time.Duration) {
			assert.ErrorIs(t, err, errExists)
			retries = append(retries, attempt)
		}),
		retry.OnExhausted(func(_ context.Context, n int, _ error) { exhausted = n }),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	require.Error(t, err)
	assert.Equal(t, []int{1, 2}, retries)
	assert.Equal(t, 3, exhausted)
}

func TestRetryAllErrors(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	failures := repeat(3)
	fn, err := retry.Wrap(
		flaky(&attempts, failures...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(2),
		retry.WithClock(clock),
		retry.WithAllErrors(),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	for _, f := range failures {
		assert.ErrorIs(t, err, f)
	}
}

func TestRetryReport(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)}
	core, logs := observer.New(zap.InfoLevel)
	attempts := 0
	fn, err := retry.Wrap(
		flaky(&attempts, repeat(3)...),
		[]retry.Kind{retry.Is(errExists)},
		retry.WithMaxRetries(2),
		retry.WithDelay(time.Second),
		retry.WithClock(clock),
		retry.WithReport(true),
		retry.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	_, err = fn.Invoke(context.Background())
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "flaky: retry 1", entries[0].Message)
	assert.Equal(t, "flaky: retry 2", entries[1].Message)
	assert.Equal(t, "flaky: retries exhausted", entries[2].Message)
	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.Equal(t, 2*time.Second, entries[2].ContextMap()["elapsed"])
	assert.Equal(t, "2s from 2026-03-01 09:30:00 to 2026-03-01 09:30:02", entries[2].ContextMap()["span"])
}

func TestRetryKindAs(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	attempts := 0
	pathErr := &fs.PathError{Op: "open", Path: "/nope", Err: os.ErrNotExist}
	fn, err := retry.Wrap(
		flaky(&attempts, fmt.Errorf("load: %w", pathErr)),
		[]retry.Kind{retry.As[*fs.PathError]()},
		retry.WithClock(clock),
	)
	require.NoError(t, err)

	res, err := fn.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 2, attempts)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := retry.New(nil)
	assert.ErrorIs(t, err, retry.ErrNoKinds)

	_, err = retry.New([]retry.Kind{retry.AnyError}, retry.WithMaxRetries(-1))
	assert.ErrorIs(t, err, retry.ErrNegativeRetries)

	_, err = retry.New([]retry.Kind{retry.AnyError}, retry.WithDelay(-time.Second))
	assert.ErrorIs(t, err, retry.ErrNegativeDelay)

	p, err := retry.New([]retry.Kind{retry.AnyError})
	require.NoError(t, err)
	assert.Equal(t, retry.DefaultMaxRetries, p.MaxRetries())
	assert.Equal(t, retry.DefaultDelay, p.Delay())
}
