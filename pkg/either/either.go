package either

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidState is reported when an Either that was not built via Ok or
// Err is consumed. The zero value of Either is the only way to reach this
// state; Ok and Err are the sanctioned constructors.
var ErrInvalidState = errors.New("either is in an invalid state: use Ok or Err to create an instance")

// Either holds exactly one of a success value of type T or a failure value
// of type E. Instances are immutable: every transformation produces a new
// instance and no operation changes the tag or payload of an existing one.
type Either[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	ok        T
	err       E
	isOk      bool
	valid     bool
}

// Ok creates a success instance wrapping value. Any value of type T is
// accepted, including zero values and nil pointers.
func Ok[T, E any](value T) Either[T, E] {
	return Either[T, E]{
		ok:        value,
		isOk:      true,
		valid:     true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err creates a failure instance wrapping err. Any value of type E is
// accepted; no validation is applied.
func Err[T, E any](err E) Either[T, E] {
	return Either[T, E]{
		err:       err,
		isOk:      false,
		valid:     true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Result is the common specialization carrying a Go error on the failure
// side. The adapter packages (wrap, future, again) produce Result values.
type Result[T any] = Either[T, error]

// Success wraps v into a Result.
func Success[T any](v T) Result[T] {
	return Ok[T, error](v)
}

// Fail wraps err into a Result.
func Fail[T any](err error) Result[T] {
	return Err[T, error](err)
}

// IsOk reports whether the instance was built via Ok.
func (e Either[T, E]) IsOk() bool {
	return e.isOk
}

// IsErr reports whether the instance was built via Err.
func (e Either[T, E]) IsErr() bool {
	return e.valid && !e.isOk
}

// IsEmpty reports whether the instance bypassed both constructors, i.e. it
// is the zero value. Empty instances have no payload on either side.
func (e Either[T, E]) IsEmpty() bool {
	return !e.valid
}

// Ok returns the success payload, or None when the instance is a failure
// or empty. It never panics and has no side effects.
func (e Either[T, E]) Ok() Option[T] {
	if e.isOk {
		return Some(e.ok)
	}
	return None[T]()
}

// Err returns the failure payload, or None when the instance is a success
// or empty. Symmetric to Ok.
func (e Either[T, E]) Err() Option[E] {
	if e.valid && !e.isOk {
		return Some(e.err)
	}
	return None[E]()
}

// Unwrap returns the success payload and panics on a failure or empty
// instance. The non-panicking paths are Ok, Match and UnwrapOr.
func (e Either[T, E]) Unwrap() T {
	if !e.valid {
		panic(ErrInvalidState)
	}
	if !e.isOk {
		panic(fmt.Sprintf("either: called Unwrap on an Err value: %v", e.err))
	}
	return e.ok
}

// UnwrapOr returns the success payload, or def on a failure or empty
// instance.
func (e Either[T, E]) UnwrapOr(def T) T {
	if e.isOk {
		return e.ok
	}
	return def
}

// UnwrapErr returns the failure payload and panics on a success or empty
// instance.
func (e Either[T, E]) UnwrapErr() E {
	if !e.valid {
		panic(ErrInvalidState)
	}
	if e.isOk {
		panic(fmt.Sprintf("either: called UnwrapErr on an Ok value: %v", e.ok))
	}
	return e.err
}

// Tee invokes onOk or onErr for its side effect, depending on the tag, and
// returns the instance unchanged. Nil callbacks are skipped; nothing is
// invoked on an empty instance.
func (e Either[T, E]) Tee(onOk func(T), onErr func(E)) Either[T, E] {
	if !e.valid {
		return e
	}
	if e.isOk {
		if onOk != nil {
			onOk(e.ok)
		}
		return e
	}
	if onErr != nil {
		onErr(e.err)
	}
	return e
}

// CreatedAt reports when the instance was constructed (UTC).
func (e Either[T, E]) CreatedAt() time.Time {
	return e.createdAt
}

// Id returns the instance identity assigned at construction. Identity and
// creation time are process-local tracing metadata; they are not part of
// the serialized form and play no role in any semantic operation.
func (e Either[T, E]) Id() uuid.UUID {
	return e.id
}

func (e Either[T, E]) String() string {
	if !e.valid {
		return "Empty"
	}
	if e.isOk {
		return fmt.Sprintf("Ok(%v)", e.ok)
	}
	return fmt.Sprintf("Err(%v)", e.err)
}
