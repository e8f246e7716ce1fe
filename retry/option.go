package retry

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OnRetryFunc is called before each retry sleep. attempt counts from 1.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// OnExhaustedFunc is called when the final allowed attempt fails.
type OnExhaustedFunc func(ctx context.Context, attempts int, err error)

// config holds all retry configuration.
type config struct {
	maxRetries  int
	delay       time.Duration
	report      bool
	logger      *zap.Logger
	clock       Clock
	onRetry     OnRetryFunc
	onExhausted OnExhaustedFunc
	allErrors   bool
}

// Option configures retry behavior.
type Option func(*config)

// WithMaxRetries sets how many times a failed call is retried.
// The function runs at most n+1 times.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.maxRetries = n
	}
}

// WithDelay sets the fixed wait between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithReport logs each retry and the final exhaustion.
func WithReport(report bool) Option {
	return func(c *config) {
		c.report = report
	}
}

// WithLogger sets the logger reports are written to.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// OnRetry sets a hook that is called before each retry sleep.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// OnExhausted sets a hook that is called when all retry attempts are exhausted.
func OnExhausted(fn OnExhaustedFunc) Option {
	return func(c *config) {
		c.onExhausted = fn
	}
}

// WithAllErrors makes the returned error combine the errors of every attempt.
// By default, only the last error is returned, unchanged.
func WithAllErrors() Option {
	return func(c *config) {
		c.allErrors = true
	}
}
