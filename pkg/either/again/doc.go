// Package again retries fallible work under a backoff schedule and wraps
// the final outcome as a Result.
//
// Attempts report through the usual (T, error) convention. An error or a
// panic makes the attempt retryable; a cancellation-class error stops the
// schedule at once and is never folded into an instance, matching the
// future package. The schedule itself is any retry.Backoff from
// github.com/sethvargo/go-retry, so callers pick constants, fibonacci,
// jitter or caps the same way they would with that package directly.
//
// Key operations:
// - Do: run a function under a backoff schedule, wrapping the outcome
package again
