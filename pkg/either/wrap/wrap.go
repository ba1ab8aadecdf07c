package wrap

import (
	"runtime/debug"

	"github.com/ib-77/either/pkg/either"
)

// run is the single recovery point behind every adapter.
func run[T any](f func() (T, error)) (res either.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = either.Fail[T](&either.PanicError{Value: r, Stack: debug.Stack()})
		}
	}()

	v, err := f()
	if !either.IsNil(err) {
		return either.Fail[T](err)
	}
	return either.Success(v)
}

// Of wraps an already-computed (value, error) pair, so a conventional call
// can be converted in place: wrap.Of(strconv.Atoi(s)). A typed nil error
// counts as success.
func Of[T any](v T, err error) either.Result[T] {
	if !either.IsNil(err) {
		return either.Fail[T](err)
	}
	return either.Success(v)
}

// Try runs f and wraps its outcome. A non-nil error return becomes a
// failure instance, a panic becomes a failure around *either.PanicError,
// and everything else becomes a success.
func Try[T any](f func() (T, error)) either.Result[T] {
	return run(f)
}

// Call runs a function with no error return, capturing panics only.
func Call[T any](f func() T) either.Result[T] {
	return run(func() (T, error) {
		return f(), nil
	})
}

// Func lifts f into a function returning a Result instead of (T, error).
// The returned function never panics.
func Func[T any](f func() (T, error)) func() either.Result[T] {
	return func() either.Result[T] {
		return run(f)
	}
}

// Func1 lifts a one-argument function. See Func.
func Func1[A, T any](f func(A) (T, error)) func(A) either.Result[T] {
	return func(a A) either.Result[T] {
		return run(func() (T, error) {
			return f(a)
		})
	}
}

// Func2 lifts a two-argument function. See Func.
func Func2[A, B, T any](f func(A, B) (T, error)) func(A, B) either.Result[T] {
	return func(a A, b B) either.Result[T] {
		return run(func() (T, error) {
			return f(a, b)
		})
	}
}

// Pure lifts a function with no error return, capturing panics only.
func Pure[T any](f func() T) func() either.Result[T] {
	return func() either.Result[T] {
		return Call(f)
	}
}

// Pure1 lifts a one-argument function. See Pure.
func Pure1[A, T any](f func(A) T) func(A) either.Result[T] {
	return func(a A) either.Result[T] {
		return run(func() (T, error) {
			return f(a), nil
		})
	}
}

// Pure2 lifts a two-argument function. See Pure.
func Pure2[A, B, T any](f func(A, B) T) func(A, B) either.Result[T] {
	return func(a A, b B) either.Result[T] {
		return run(func() (T, error) {
			return f(a, b), nil
		})
	}
}
