// Package retry re-runs a function that fails with a retryable kind of error.
//
// A Policy is built once from the kinds of failure worth retrying and wraps
// any number of functions:
//
//	policy, err := retry.New(
//	    []retry.Kind{retry.Is(fs.ErrExist), retry.As[*net.OpError]()},
//	    retry.WithMaxRetries(3),
//	    retry.WithDelay(time.Second),
//	)
//	save := policy.Wrap(call.Named("save", saveFn))
//
// The wrapped function runs at most MaxRetries+1 times. The first attempt
// is not a retry. Between attempts the policy waits for the fixed delay; it
// never waits after the last attempt.
//
// An error that matches no kind is returned at once. When every attempt
// fails, the error of the last attempt is returned as is, so callers see
// exactly what the function returned. WithAllErrors combines the errors of
// every attempt instead.
//
// Inject a Clock with WithClock to control time in tests.
package retry
