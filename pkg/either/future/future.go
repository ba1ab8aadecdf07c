package future

import (
	"context"
	"runtime/debug"

	"github.com/ib-77/either/pkg/either"
)

// Future is the pending outcome of a function started with Go, Wrap or
// Wrap2. It resolves exactly once; after that every Await returns the same
// outcome.
type Future[T any] struct {
	res    either.Result[T]
	cancel error
	done   chan struct{}
}

// Go starts f on its own goroutine and returns its Future immediately.
//
// When f returns, the outcome is fixed: a nil error resolves to a success
// instance, a cancellation-class error is held aside for Await's error
// return, any other error resolves to a failure instance, and a panic
// resolves to a failure around *either.PanicError.
func Go[T any](ctx context.Context, f func(context.Context) (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(fut.done)
		defer func() {
			if r := recover(); r != nil {
				fut.res = either.Fail[T](&either.PanicError{Value: r, Stack: debug.Stack()})
			}
		}()

		v, err := f(ctx)
		switch {
		case either.IsNil(err):
			fut.res = either.Success(v)
		case either.IsCancellation(err):
			fut.cancel = err
		default:
			fut.res = either.Fail[T](err)
		}
	}()

	return fut
}

// Wrap starts a one-argument function. See Go.
func Wrap[A, T any](ctx context.Context, f func(context.Context, A) (T, error), a A) *Future[T] {
	return Go(ctx, func(ctx context.Context) (T, error) {
		return f(ctx, a)
	})
}

// Wrap2 starts a two-argument function. See Go.
func Wrap2[A, B, T any](ctx context.Context, f func(context.Context, A, B) (T, error), a A, b B) *Future[T] {
	return Go(ctx, func(ctx context.Context) (T, error) {
		return f(ctx, a, b)
	})
}

// Await blocks until the future resolves or ctx is done, whichever comes
// first. A resolved future yields (instance, nil); a cancelled wait or a
// cancelled producer yields an empty instance and the cancellation error.
// An already-resolved future wins over a simultaneously expired ctx.
func (f *Future[T]) Await(ctx context.Context) (either.Result[T], error) {
	select {
	case <-f.done:
		return f.outcome()
	default:
	}

	select {
	case <-f.done:
		return f.outcome()
	case <-ctx.Done():
		return either.Result[T]{}, ctx.Err()
	}
}

// Done is closed once the future has resolved. It lets callers plug a
// future into their own select loops; after Done is closed, Await returns
// without blocking.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// outcome must only run after done is closed.
func (f *Future[T]) outcome() (either.Result[T], error) {
	if f.cancel != nil {
		return either.Result[T]{}, f.cancel
	}
	return f.res, nil
}
