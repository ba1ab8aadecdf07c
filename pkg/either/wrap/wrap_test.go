package wrap

import (
	"errors"
	"runtime"
	"strconv"
	"testing"

	"github.com/ib-77/either/pkg/either"
)

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func TestOf_WrapsCallSite(t *testing.T) {
	t.Parallel()
	if res := Of(strconv.Atoi("42")); !res.IsOk() || res.Unwrap() != 42 {
		t.Fatalf("expected Ok(42), got %v", res)
	}
	if res := Of(strconv.Atoi("nope")); !res.IsErr() {
		t.Fatalf("expected err, got %v", res)
	}
}

func TestTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ok := Try(func() (string, error) { return "done", nil })
	if !ok.IsOk() || ok.Unwrap() != "done" {
		t.Fatalf("expected Ok(done), got %v", ok)
	}

	boom := errors.New("boom")
	bad := Try(func() (string, error) { return "", boom })
	if !bad.IsErr() || !errors.Is(bad.UnwrapErr(), boom) {
		t.Fatalf("expected Err(boom), got %v", bad)
	}
}

func TestTry_NormalizesTypedNilError(t *testing.T) {
	t.Parallel()
	res := Try(func() (int, error) {
		var pe *parseError
		return 7, pe
	})
	if !res.IsOk() || res.Unwrap() != 7 {
		t.Fatalf("expected a typed nil error to count as success, got %v", res)
	}
}

func TestFunc2_Divide(t *testing.T) {
	t.Parallel()
	div := Func2(divide)

	if res := div(4, 2); !res.IsOk() || res.Unwrap() != 2 {
		t.Fatalf("expected Ok(2), got %v", res)
	}
	if res := div(4, 0); !res.IsErr() || res.UnwrapErr().Error() != "division by zero" {
		t.Fatalf("expected Err(division by zero), got %v", res)
	}
}

func TestPure2_CapturesDivideByZero(t *testing.T) {
	t.Parallel()
	div := Pure2(func(a, b int) int { return a / b })

	res := div(4, 0)
	if !res.IsErr() {
		t.Fatalf("expected the panic to surface as a failure, got %v", res)
	}

	var pe *either.PanicError
	if !errors.As(res.UnwrapErr(), &pe) {
		t.Fatalf("expected a PanicError payload, got %v", res.UnwrapErr())
	}
	if len(pe.Stack) == 0 {
		t.Fatalf("expected the captured stack to be recorded")
	}
	// The original runtime fault stays reachable through the capture
	var rte runtime.Error
	if !errors.As(res.UnwrapErr(), &rte) {
		t.Fatalf("expected a runtime error in the chain, got %v", res.UnwrapErr())
	}

	if res = div(4, 2); !res.IsOk() || res.Unwrap() != 2 {
		t.Fatalf("expected Ok(2), got %v", res)
	}
}

func TestCall_CapturesPanicValue(t *testing.T) {
	t.Parallel()
	res := Call(func() int { panic("blown") })

	var pe *either.PanicError
	if !errors.As(res.UnwrapErr(), &pe) {
		t.Fatalf("expected a PanicError payload, got %v", res.UnwrapErr())
	}
	if pe.Value != "blown" {
		t.Fatalf("expected the panic value to be kept, got %v", pe.Value)
	}
}

func TestTry_PanicWithSentinelStaysReachable(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel")
	res := Try(func() (int, error) { panic(sentinel) })

	if !res.IsErr() || !errors.Is(res.UnwrapErr(), sentinel) {
		t.Fatalf("expected the sentinel through the capture, got %v", res)
	}
}

func TestFunc1_LiftsAndNeverPanics(t *testing.T) {
	t.Parallel()
	atoi := Func1(strconv.Atoi)

	if res := atoi("7"); !res.IsOk() || res.Unwrap() != 7 {
		t.Fatalf("expected Ok(7), got %v", res)
	}
	if res := atoi("x"); !res.IsErr() {
		t.Fatalf("expected err, got %v", res)
	}
}

func TestPure1_CapturesOnly(t *testing.T) {
	t.Parallel()
	double := Pure1(func(n int) int { return n * 2 })
	if res := double(21); !res.IsOk() || res.Unwrap() != 42 {
		t.Fatalf("expected Ok(42), got %v", res)
	}
}
