package typed

import (
	"context"

	"github.com/on-the-ground/gecko/call"
)

func I0O0(
	name string,
	fn func(context.Context) error,
	decorators ...call.Decorator,
) func(context.Context) error {
	decorated := lift(name, func(ctx context.Context, _ []any) (any, error) {
		return nil, fn(ctx)
	}, decorators)
	return func(ctx context.Context) error {
		_, err := decorated.Call(ctx, call.Pos())
		return err
	}
}

func I1O0[I1 any](
	name string,
	fn func(context.Context, I1) error,
	decorators ...call.Decorator,
) func(context.Context, I1) error {
	decorated := lift(name, func(ctx context.Context, args []any) (any, error) {
		return nil, fn(ctx, arg[I1](args, 0))
	}, decorators)
	return func(ctx context.Context, i1 I1) error {
		_, err := decorated.Call(ctx, call.Pos(i1))
		return err
	}
}

func I2O0[I1, I2 any](
	name string,
	fn func(context.Context, I1, I2) error,
	decorators ...call.Decorator,
) func(context.Context, I1, I2) error {
	decorated := lift(name, func(ctx context.Context, args []any) (any, error) {
		return nil, fn(ctx, arg[I1](args, 0), arg[I2](args, 1))
	}, decorators)
	return func(ctx context.Context, i1 I1, i2 I2) error {
		_, err := decorated.Call(ctx, call.Pos(i1, i2))
		return err
	}
}
