package retry_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/retry"
)

func ExamplePolicy_Wrap() {
	errBusy := errors.New("busy")
	attempts := 0

	policy, err := retry.New([]retry.Kind{retry.Is(errBusy)}, retry.WithMaxRetries(3), retry.WithDelay(0))
	if err != nil {
		panic(err)
	}

	fn := policy.Wrap(call.Named("connect", func(context.Context, call.Args) (any, error) {
		attempts++
		if attempts < 3 {
			return nil, errBusy
		}
		return "connected", nil
	}))

	res, err := fn.Invoke(context.Background())
	fmt.Println(res, err, attempts)
	// Output: connected <nil> 3
}
