// Package call defines the argument-shape-agnostic callable every decorator
// in gecko wraps.
//
// A Fn pairs a name with a Func. Arguments travel as Args: an ordered
// sequence of positional values plus an ordered set of named values.
// Decorators are plain transforms from Fn to Fn and stack with Chain:
//
//	greet := call.Chain(
//	    call.Named("greet", greetFn),
//	    retryPolicy.Decorator(),
//	    disable.Decorator(disable.WithReport(true)),
//	)
//	res, err := greet.Call(ctx, call.Pos("Joseph"))
//
// The first decorator passed to Chain is the outermost one, matching the
// top-to-bottom reading order of stacked decorators.
package call
