package either

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its leaves. Errors built with errors.Join or
// any Unwrap() []error carrier are expanded recursively; a plain error
// yields a single-element slice and nil yields an empty one.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	out := make([]error, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		out = append(out, GetErrors(e)...)
	}
	return out
}

// IsCancellation reports whether err belongs to the cancellation class, i.e.
// it carries context.Canceled or context.DeadlineExceeded. The adapter
// packages never convert such errors into a failure instance.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
