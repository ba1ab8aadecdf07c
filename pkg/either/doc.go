// Package either provides an immutable disjoint union of a success value
// and a failure value, behind the Either[T, E] type.
//
// An instance is created through one of the constructors Ok and Err, holds
// exactly one of the two payloads, and never changes afterwards. Payloads
// are read through the Option-returning projections or the panicking
// Unwrap family. Match collapses an instance by running exactly one of two
// branches.
//
// Key operations:
// - Ok/Err: construct a success or failure instance
// - Success/Fail: shorthand constructors for Result[T] = Either[T, error]
// - Ok()/Err(): project the payloads as Option values
// - Match: reduce an instance to a single value via two branches
// - Map/MapErr/Then: transform payloads without touching the tag
// - Collect: fold a slice of instances into one
// - Tee: observe the payload without changing the instance
//
// The wrap, future and again subpackages adapt plain functions, panicking
// functions and asynchronous work into Result values.
package either
