package either

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
)

// envelope is the wire form of an Either. Exactly one payload side is
// populated; the other is null. Identity and creation time stay local.
type envelope struct {
	Ok   json.RawMessage `json:"ok"`
	Err  json.RawMessage `json:"err"`
	IsOk bool            `json:"is_ok"`
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// MarshalJSON encodes the instance as {"ok": ..., "err": ..., "is_ok": ...}
// with null on the inactive side. Payloads implementing error are encoded
// as their Error() string. Marshaling an empty instance fails with
// ErrInvalidState.
func (e Either[T, E]) MarshalJSON() ([]byte, error) {
	if !e.valid {
		return nil, fmt.Errorf("either: marshal: %w", ErrInvalidState)
	}
	env := envelope{
		Ok:   json.RawMessage("null"),
		Err:  json.RawMessage("null"),
		IsOk: e.isOk,
	}
	if e.isOk {
		raw, err := marshalPayload(e.ok)
		if err != nil {
			return nil, fmt.Errorf("either: marshal ok payload: %w", err)
		}
		env.Ok = raw
	} else {
		raw, err := marshalPayload(e.err)
		if err != nil {
			return nil, fmt.Errorf("either: marshal err payload: %w", err)
		}
		env.Err = raw
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes an envelope produced by MarshalJSON. The side
// contradicting is_ok must be null or absent, otherwise the envelope is
// rejected with an error wrapping ErrInvalidState. A null payload on the
// active side decodes to the zero value. The decoded instance receives a
// fresh identity and creation time.
func (e *Either[T, E]) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("either: unmarshal: %w", err)
	}
	if env.IsOk {
		if !isNull(env.Err) {
			return fmt.Errorf("either: unmarshal: err payload on an ok envelope: %w", ErrInvalidState)
		}
		var v T
		if !isNull(env.Ok) {
			dec, err := unmarshalPayload[T](env.Ok)
			if err != nil {
				return fmt.Errorf("either: unmarshal ok payload: %w", err)
			}
			v = dec
		}
		*e = Ok[T, E](v)
		return nil
	}
	if !isNull(env.Ok) {
		return fmt.Errorf("either: unmarshal: ok payload on an err envelope: %w", ErrInvalidState)
	}
	var v E
	if !isNull(env.Err) {
		dec, err := unmarshalPayload[E](env.Err)
		if err != nil {
			return fmt.Errorf("either: unmarshal err payload: %w", err)
		}
		v = dec
	}
	*e = Err[T, E](v)
	return nil
}

func marshalPayload(v any) ([]byte, error) {
	if err, ok := v.(error); ok && !IsNil(err) {
		return json.Marshal(err.Error())
	}
	return json.Marshal(v)
}

// unmarshalPayload decodes raw into P. When P is the error interface the
// payload was written as a message string, so it is rebuilt as a plain
// error around that string.
func unmarshalPayload[P any](raw json.RawMessage) (P, error) {
	var p P
	if reflect.TypeOf(&p).Elem() == errType {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			return p, err
		}
		reflect.ValueOf(&p).Elem().Set(reflect.ValueOf(errors.New(msg)))
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, err
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
