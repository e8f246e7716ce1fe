// Package typed lifts ordinary Go functions of fixed arity into call.Fn,
// runs them through decorators, and lowers them back to their own signature.
//
// The family mirrors the arity of the function being decorated:
//
//	I<n>O1 for func(ctx, I1..In) (O1, error)
//	I<n>O0 for func(ctx, I1..In) error
//
// Positional arguments are passed through decorators as call.Args, so
// history records and validation see the same values the caller passed.
//
// A nil result (what a disabled function returns by default) lowers to the
// zero value of O1. A result of any other type than O1 is reported as
// ErrResultType instead of panicking.
package typed
