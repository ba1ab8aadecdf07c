package either

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Option holds a value of type T or nothing. It is the return type of the
// Ok and Err projections, which makes payload access total: asking the
// wrong side of an Either yields None instead of a panic.
type Option[T any] struct {
	value T
	set   bool
}

// Some wraps value into a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, set: true}
}

// None returns the absent Option. Equivalent to the zero value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.set
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.set
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// MustGet returns the contained value and panics when absent.
func (o Option[T]) MustGet() T {
	if !o.set {
		panic("either: called MustGet on a None option")
	}
	return o.value
}

// OrElse returns the contained value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// OrZero returns the contained value, or the zero value of T when absent.
func (o Option[T]) OrZero() T {
	return o.value
}

func (o Option[T]) String() string {
	if o.set {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MarshalJSON encodes Some as its payload and None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null into None and anything else into Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
