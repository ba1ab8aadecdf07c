package either

import (
	"testing"
)

func TestOption_SomeAndNone(t *testing.T) {
	t.Parallel()
	s := Some(42)
	if !s.IsSome() || s.IsNone() {
		t.Fatalf("expected Some, got %v", s)
	}
	if v, ok := s.Get(); !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", v, ok)
	}

	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Fatalf("expected None, got %v", n)
	}
	if v, ok := n.Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got (%v, %v)", v, ok)
	}
}

func TestOption_ZeroValueIsNone(t *testing.T) {
	t.Parallel()
	var o Option[string]
	if !o.IsNone() {
		t.Fatalf("expected the zero value to be None, got %v", o)
	}
}

func TestOption_MustGet(t *testing.T) {
	t.Parallel()
	if got := Some("x").MustGet(); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet on None to panic")
		}
	}()
	None[string]().MustGet()
}

func TestOption_Fallbacks(t *testing.T) {
	t.Parallel()
	if got := Some(3).OrElse(-1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := None[int]().OrElse(-1); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := None[int]().OrZero(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestOption_String(t *testing.T) {
	t.Parallel()
	if got := Some(7).String(); got != "Some(7)" {
		t.Fatalf("expected Some(7), got %q", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Fatalf("expected None, got %q", got)
	}
}

func TestOption_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	raw, err := Some(7).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal Some: %v", err)
	}
	if string(raw) != "7" {
		t.Fatalf("expected 7, got %s", raw)
	}

	raw, err = None[int]().MarshalJSON()
	if err != nil {
		t.Fatalf("marshal None: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null, got %s", raw)
	}

	var o Option[int]
	if err := o.UnmarshalJSON([]byte("7")); err != nil {
		t.Fatalf("unmarshal 7: %v", err)
	}
	if v, ok := o.Get(); !ok || v != 7 {
		t.Fatalf("expected Some(7), got %v", o)
	}
	if err := o.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !o.IsNone() {
		t.Fatalf("expected None after null, got %v", o)
	}
}
