package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/shared/logging"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Default values.
const (
	DefaultMaxRetries = 3
	DefaultDelay      = time.Second
)

var (
	ErrNoKinds         = errors.New("retry: no failure kinds to retry on")
	ErrNegativeRetries = errors.New("retry: max retries must not be negative")
	ErrNegativeDelay   = errors.New("retry: delay must not be negative")
)

// Policy re-runs a function when it fails with one of its kinds.
// A Policy holds no per-call state and can wrap any number of functions.
type Policy struct {
	kinds []Kind
	cfg   config
}

// New creates a Policy retrying on kinds with the given options.
func New(kinds []Kind, opts ...Option) (*Policy, error) {
	cfg := config{
		maxRetries: DefaultMaxRetries,
		delay:      DefaultDelay,
		clock:      realClock{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case len(kinds) == 0:
		return nil, ErrNoKinds
	case cfg.maxRetries < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeRetries, cfg.maxRetries)
	case cfg.delay < 0:
		return nil, fmt.Errorf("%w: %v", ErrNegativeDelay, cfg.delay)
	}
	if cfg.clock == nil {
		cfg.clock = realClock{}
	}

	return &Policy{
		kinds: append([]Kind(nil), kinds...),
		cfg:   cfg,
	}, nil
}

// Wrap is New followed by Policy.Wrap.
func Wrap(fn call.Fn, kinds []Kind, opts ...Option) (call.Fn, error) {
	p, err := New(kinds, opts...)
	if err != nil {
		return call.Fn{}, err
	}
	return p.Wrap(fn), nil
}

// MaxRetries returns the number of retries after the first attempt.
func (p *Policy) MaxRetries() int {
	return p.cfg.maxRetries
}

// Delay returns the wait between attempts.
func (p *Policy) Delay() time.Duration {
	return p.cfg.delay
}

// Wrap returns fn retried under this policy.
func (p *Policy) Wrap(fn call.Fn) call.Fn {
	logger := logging.Nop()
	if p.cfg.report {
		logger = logging.OrDefault(p.cfg.logger).With(
			zap.String("wrapper_id", uuid.New().String()),
			zap.String("target", fn.Name()),
		)
	}
	return fn.Replace(func(ctx context.Context, args call.Args) (any, error) {
		return p.execute(ctx, fn, args, logger)
	})
}

// Decorator is Wrap in call.Decorator form.
func (p *Policy) Decorator() call.Decorator {
	return p.Wrap
}

func (p *Policy) execute(ctx context.Context, fn call.Fn, args call.Args, logger *zap.Logger) (any, error) {
	start := p.cfg.clock.Now()
	var errs error

	for attempt := 0; ; attempt++ {
		res, err := fn.Call(ctx, args)
		if err == nil {
			return res, nil
		}
		if p.cfg.allErrors {
			errs = multierr.Append(errs, err)
		}

		// Failures outside the catchable kinds are never retried
		if !matchAny(p.kinds, err) {
			return res, p.result(errs, err)
		}

		if attempt >= p.cfg.maxRetries {
			if p.cfg.onExhausted != nil {
				p.cfg.onExhausted(ctx, attempt+1, err)
			}
			span := timespan.BetweenTimes(start, p.cfg.clock.Now())
			logger.Warn(
				fmt.Sprintf("%s: retries exhausted", fn.Name()),
				zap.Int("attempts", attempt+1),
				zap.Duration("elapsed", span.Duration()),
				zap.Stringer("span", span),
				zap.Error(err),
			)
			return res, p.result(errs, err)
		}

		if p.cfg.onRetry != nil {
			p.cfg.onRetry(ctx, attempt+1, err, p.cfg.delay)
		}
		logger.Info(
			fmt.Sprintf("%s: retry %d", fn.Name(), attempt+1),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", p.cfg.delay),
			zap.Error(err),
		)

		if sleepErr := p.cfg.clock.Sleep(ctx, p.cfg.delay); sleepErr != nil {
			return res, multierr.Append(p.result(errs, err), sleepErr)
		}
	}
}

func (p *Policy) result(errs, last error) error {
	if p.cfg.allErrors {
		return errs
	}
	return last
}
