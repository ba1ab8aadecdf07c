package again

import (
	"context"
	"runtime/debug"

	"github.com/sethvargo/go-retry"

	"github.com/ib-77/either/pkg/either"
)

// Do runs f under b's schedule until an attempt succeeds, the schedule is
// exhausted, or the work is called off.
//
// A success yields (Ok, nil). An exhausted schedule yields the last
// attempt's fault as (Err, nil); a panicking attempt counts as a fault
// carrying *either.PanicError. Cancellation, whether reported by an
// attempt, raised between attempts, or detected while waiting out a
// backoff, stops retrying and comes back as the second return value with
// an empty instance, mirroring future.Await.
func Do[T any](ctx context.Context, b retry.Backoff, f func(context.Context) (T, error)) (either.Result[T], error) {
	var out either.Result[T]

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		v, ferr := attempt(ctx, f)
		if either.IsNil(ferr) {
			out = either.Success(v)
			return nil
		}
		if either.IsCancellation(ferr) {
			return ferr
		}
		return retry.RetryableError(ferr)
	})

	if err == nil {
		return out, nil
	}
	if either.IsCancellation(err) {
		return either.Result[T]{}, err
	}
	return either.Fail[T](err), nil
}

// attempt reports a panic as an ordinary attempt error.
func attempt[T any](ctx context.Context, f func(context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &either.PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return f(ctx)
}
