// Package disable replaces a function with a no-op.
package disable

import (
	"context"

	"github.com/google/uuid"
	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/shared/logging"
	"go.uber.org/zap"
)

type config struct {
	report   bool
	sentinel any
	logger   *zap.Logger
}

// Option configures a disabled function.
type Option func(*config)

// WithReport logs "<name> is disabled" on every suppressed call.
func WithReport(report bool) Option {
	return func(c *config) {
		c.report = report
	}
}

// WithReturn sets the value the disabled function returns. Defaults to nil.
func WithReturn(v any) Option {
	return func(c *config) {
		c.sentinel = v
	}
}

// WithLogger sets the logger reports are written to.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Wrap returns a function with fn's name that never runs fn.
// It accepts any arguments and always returns the configured value and a nil error.
func Wrap(fn call.Fn, opts ...Option) call.Fn {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var logger *zap.Logger
	if cfg.report {
		logger = logging.OrDefault(cfg.logger).With(
			zap.String("wrapper_id", uuid.New().String()),
			zap.String("target", fn.Name()),
		)
	}

	return fn.Replace(func(context.Context, call.Args) (any, error) {
		if logger != nil {
			logger.Info(fn.Name() + " is disabled")
		}
		return cfg.sentinel, nil
	})
}

// Decorator is Wrap in call.Decorator form.
func Decorator(opts ...Option) call.Decorator {
	return func(fn call.Fn) call.Fn {
		return Wrap(fn, opts...)
	}
}
