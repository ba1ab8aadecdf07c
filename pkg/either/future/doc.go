// Package future runs work on background goroutines and delivers the
// outcome as a Result.
//
// A Future starts executing as soon as it is created. The producing
// function reports through the usual (T, error) convention; errors and
// panics become failure instances exactly as in the wrap package, with one
// exception: errors of the cancellation class (context.Canceled,
// context.DeadlineExceeded) are never folded into an instance. They come
// back through Await's second return value, so a caller can always tell
// "the work failed" apart from "the work was called off".
//
// Key operations:
// - Go: start a function on its own goroutine
// - Wrap/Wrap2: start an argument-taking function
// - Await: block for the outcome, honoring the caller's context
// - Done: expose completion as a channel for select loops
// - All: await every future and return the outcome of each
// - Race: take the first future to resolve
// - Join: run a batch of functions, failing or cancelling together
package future
