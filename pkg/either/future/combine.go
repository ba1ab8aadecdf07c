package future

import (
	"context"
	"errors"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/either/pkg/either"
)

// ErrNoFutures is returned by Race when called with nothing to race.
var ErrNoFutures = errors.New("future: nothing to race")

// All awaits every future in order and returns the outcomes slot by slot,
// failures included. Only cancellation aborts the wait; abandoned futures
// keep running on their own goroutines. Feed the outcomes to
// either.Collect or either.CollectAll to settle them into one instance.
func All[T any](ctx context.Context, futs ...*Future[T]) ([]either.Result[T], error) {
	out := make([]either.Result[T], 0, len(futs))
	for _, f := range futs {
		res, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Race returns the outcome of the first future to resolve, whatever that
// outcome is. When ctx expires first, the race is abandoned with ctx's
// error; racing nothing fails with ErrNoFutures.
func Race[T any](ctx context.Context, futs ...*Future[T]) (either.Result[T], error) {
	if len(futs) == 0 {
		return either.Result[T]{}, ErrNoFutures
	}

	// Buffered to the field size; a late finisher must not block
	winner := make(chan *Future[T], len(futs))
	for _, f := range futs {
		go func(f *Future[T]) {
			select {
			case <-f.done:
				winner <- f
			case <-ctx.Done():
			}
		}(f)
	}

	select {
	case f := <-winner:
		return f.outcome()
	case <-ctx.Done():
		return either.Result[T]{}, ctx.Err()
	}
}

// Join runs every function on its own goroutine and waits for the batch.
// The first fault cancels the shared context, so siblings can stop early;
// that first fault is the one reported. Payloads keep the order of fs.
//
// A member fault is reported as a failure instance; an outside
// cancellation is returned as the cancellation error, mirroring Await.
func Join[T any](ctx context.Context, fs ...func(context.Context) (T, error)) (either.Result[[]T], error) {
	g, gctx := errgroup.WithContext(ctx)

	results := make([]T, len(fs))
	for i, f := range fs {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &either.PanicError{Value: r, Stack: debug.Stack()}
				}
			}()

			v, ferr := f(gctx)
			if !either.IsNil(ferr) {
				return ferr
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if either.IsCancellation(err) {
			return either.Result[[]T]{}, err
		}
		return either.Fail[[]T](err), nil
	}
	return either.Success(results), nil
}
