package typed

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/shared/helper"
)

var ErrResultType = errors.New("decorated function returned an unexpected type")

func I0O1[O1 any](
	name string,
	fn func(context.Context) (O1, error),
	decorators ...call.Decorator,
) func(context.Context) (O1, error) {
	decorated := lift(name, func(ctx context.Context, _ []any) (any, error) {
		return fn(ctx)
	}, decorators)
	return func(ctx context.Context) (O1, error) {
		return lower[O1](ctx, decorated)
	}
}

func I1O1[I1, O1 any](
	name string,
	fn func(context.Context, I1) (O1, error),
	decorators ...call.Decorator,
) func(context.Context, I1) (O1, error) {
	decorated := lift(name, func(ctx context.Context, args []any) (any, error) {
		return fn(ctx, arg[I1](args, 0))
	}, decorators)
	return func(ctx context.Context, i1 I1) (O1, error) {
		return lower[O1](ctx, decorated, i1)
	}
}

func I2O1[I1, I2, O1 any](
	name string,
	fn func(context.Context, I1, I2) (O1, error),
	decorators ...call.Decorator,
) func(context.Context, I1, I2) (O1, error) {
	decorated := lift(name, func(ctx context.Context, args []any) (any, error) {
		return fn(ctx, arg[I1](args, 0), arg[I2](args, 1))
	}, decorators)
	return func(ctx context.Context, i1 I1, i2 I2) (O1, error) {
		return lower[O1](ctx, decorated, i1, i2)
	}
}

func I3O1[I1, I2, I3, O1 any](
	name string,
	fn func(context.Context, I1, I2, I3) (O1, error),
	decorators ...call.Decorator,
) func(context.Context, I1, I2, I3) (O1, error) {
	decorated := lift(name, func(ctx context.Context, args []any) (any, error) {
		return fn(ctx, arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
	}, decorators)
	return func(ctx context.Context, i1 I1, i2 I2, i3 I3) (O1, error) {
		return lower[O1](ctx, decorated, i1, i2, i3)
	}
}

func I4O1[I1, I2, I3, I4, O1 any](
	name string,
	fn func(context.Context, I1, I2, I3, I4) (O1, error),
	decorators ...call.Decorator,
) func(context.Context, I1, I2, I3, I4) (O1, error) {
	decorated := lift(name, func(ctx context.Context, args []any) (any, error) {
		return fn(ctx, arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
	}, decorators)
	return func(ctx context.Context, i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return lower[O1](ctx, decorated, i1, i2, i3, i4)
	}
}

// lift turns fn into a named call.Fn and applies decorators to it.
func lift(
	name string,
	fn func(context.Context, []any) (any, error),
	decorators []call.Decorator,
) call.Fn {
	return call.Chain(
		call.Named(name, func(ctx context.Context, args call.Args) (any, error) {
			return fn(ctx, args.Pos)
		}),
		decorators...,
	)
}

func lower[O any](ctx context.Context, fn call.Fn, args ...any) (O, error) {
	res, err := helper.GetTypedValueOf[O](func() (any, error) {
		return fn.Call(ctx, call.Pos(args...))
	})
	if errors.Is(err, helper.ErrUnexpectedType) {
		return res, fmt.Errorf("%w: %s: %w", ErrResultType, fn.Name(), err)
	}
	return res, err
}

// arg extracts the i-th positional argument. The lowered side always passes
// every argument, so a missing or mistyped one is a programming error.
func arg[T any](args []any, i int) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		if i >= len(args) {
			return nil, fmt.Errorf("missing positional argument %d", i)
		}
		return args[i], nil
	})
}
