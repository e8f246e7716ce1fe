// Package callhistory records the most recent calls made to a function.
package callhistory

import (
	"context"

	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/shared/ringbuffer"
)

type config struct {
	maxLength int
	onEvict   func(call.Record)
}

// Option configures a History.
type Option func(*config)

// WithMaxLength bounds the history to the n most recent calls.
// n <= 0 keeps every call.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithOnEvict registers a hook receiving records dropped from a full history.
func WithOnEvict(fn func(call.Record)) Option {
	return func(c *config) {
		c.onEvict = fn
	}
}

// History is the call log of one wrapped function, newest first.
// Not safe for concurrent use.
type History struct {
	buf *ringbuffer.Buffer[call.Record]
}

// Records returns a copy of the recorded calls, newest first.
func (h *History) Records() []call.Record {
	return h.buf.Items()
}

// Len returns the number of records held.
func (h *History) Len() int {
	return h.buf.Len()
}

// Cap returns the maximum number of records kept, 0 when unbounded.
func (h *History) Cap() int {
	return h.buf.Cap()
}

// Latest returns the most recent record.
func (h *History) Latest() (call.Record, bool) {
	return h.buf.At(0)
}

// Occurrences counts the held records that render the same as rec.
func (h *History) Occurrences(rec call.Record) int {
	fp := rec.Fingerprint()
	n := 0
	for i := 0; i < h.buf.Len(); i++ {
		if r, _ := h.buf.At(i); r.Fingerprint() == fp {
			n++
		}
	}
	return n
}

// Wrap returns fn recording each call into a fresh History.
// The record is taken before fn runs, so failing calls are recorded too.
func Wrap(fn call.Fn, opts ...Option) (call.Fn, *History) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &History{buf: ringbuffer.New[call.Record](cfg.maxLength, cfg.onEvict)}

	return fn.Replace(func(ctx context.Context, args call.Args) (any, error) {
		h.buf.Push(call.NewRecord(fn.Name(), args))
		return fn.Call(ctx, args)
	}), h
}
