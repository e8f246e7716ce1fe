package call

import "context"

// Func is the shape every wrapped callable is reduced to.
type Func func(ctx context.Context, args Args) (any, error)

// Fn is a named callable. The zero value is not usable.
type Fn struct {
	name string
	fn   Func
}

// Named pairs fn with the name decorators report and record it under.
func Named(name string, fn Func) Fn {
	if fn == nil {
		panic("call.Named: nil func")
	}
	return Fn{name: name, fn: fn}
}

// Name returns the declared name of the function.
func (f Fn) Name() string {
	return f.name
}

// Call invokes the function.
func (f Fn) Call(ctx context.Context, args Args) (any, error) {
	return f.fn(ctx, args)
}

// Invoke is Call with positional arguments only.
func (f Fn) Invoke(ctx context.Context, pos ...any) (any, error) {
	return f.fn(ctx, Pos(pos...))
}

// Replace returns a function that keeps f's name but runs fn.
// Decorators use it to preserve the identity of what they wrap.
func (f Fn) Replace(fn Func) Fn {
	return Named(f.name, fn)
}

// Decorator transforms a function into a drop-in substitute for it.
type Decorator func(Fn) Fn

// Chain applies decorators to fn. decorators[0] ends up outermost.
func Chain(fn Fn, decorators ...Decorator) Fn {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}
