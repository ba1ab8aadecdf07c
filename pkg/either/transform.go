package either

import "errors"

// Map applies f to the success payload and rewraps the result. Failure and
// empty instances pass through with the payload side retyped and the tag
// untouched.
func Map[T, E, U any](e Either[T, E], f func(T) U) Either[U, E] {
	if !e.valid {
		return Either[U, E]{}
	}
	if !e.isOk {
		return Err[U, E](e.err)
	}
	return Ok[U, E](f(e.ok))
}

// MapErr applies f to the failure payload and rewraps the result. Success
// and empty instances pass through untouched.
func MapErr[T, E, F any](e Either[T, E], f func(E) F) Either[T, F] {
	if !e.valid {
		return Either[T, F]{}
	}
	if e.isOk {
		return Ok[T, F](e.ok)
	}
	return Err[T, F](f(e.err))
}

// Then chains a computation that can itself fail: f runs on the success
// payload and its result replaces e. Failure and empty instances
// short-circuit without invoking f.
func Then[T, E, U any](e Either[T, E], f func(T) Either[U, E]) Either[U, E] {
	if !e.valid {
		return Either[U, E]{}
	}
	if !e.isOk {
		return Err[U, E](e.err)
	}
	return f(e.ok)
}

// Collect folds a slice of instances into a single instance holding all
// success payloads in order. The first failure short-circuits and becomes
// the result; an empty element yields an empty result.
func Collect[T, E any](es []Either[T, E]) Either[[]T, E] {
	out := make([]T, 0, len(es))
	for _, e := range es {
		if !e.valid {
			return Either[[]T, E]{}
		}
		if !e.isOk {
			return Err[[]T, E](e.err)
		}
		out = append(out, e.ok)
	}
	return Ok[[]T, E](out)
}

// CollectAll folds a slice of results without short-circuiting: every
// failure is visited and the result carries all of them joined. GetErrors
// recovers the individual leaves from the joined failure. An empty element
// yields an empty result, as in Collect.
func CollectAll[T any](rs []Result[T]) Result[[]T] {
	out := make([]T, 0, len(rs))
	var errs []error
	for _, r := range rs {
		if !r.valid {
			return Result[[]T]{}
		}
		if !r.isOk {
			errs = append(errs, r.err)
			continue
		}
		out = append(out, r.ok)
	}
	if len(errs) > 0 {
		return Fail[[]T](errors.Join(errs...))
	}
	return Success(out)
}
