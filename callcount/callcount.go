// Package callcount counts how many times a function is called.
package callcount

import (
	"context"

	"github.com/on-the-ground/gecko/call"
)

// Counter holds the number of calls made through one wrapped function.
// It only ever grows. Not safe for concurrent use.
type Counter struct {
	n int
}

// Count returns the number of calls so far.
func (c *Counter) Count() int {
	return c.n
}

// Wrap returns fn instrumented with a fresh Counter starting at zero.
// Every call is counted before fn runs, including calls that fail.
func Wrap(fn call.Fn) (call.Fn, *Counter) {
	c := &Counter{}
	return fn.Replace(func(ctx context.Context, args call.Args) (any, error) {
		c.n++
		return fn.Call(ctx, args)
	}), c
}
