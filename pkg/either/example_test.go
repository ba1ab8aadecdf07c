package either_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/either/pkg/either"
)

func ExampleMatch() {
	res := either.Ok[int, error](42)

	fmt.Println(either.Match(res,
		func(v int) string { return fmt.Sprintf("Success: %d", v) },
		func(err error) string { return fmt.Sprintf("Error: %v", err) },
	))
	// Output: Success: 42
}

func ExampleMatch_failure() {
	res := either.Err[int, error](errors.New("boom"))

	fmt.Println(either.Match(res,
		func(v int) string { return fmt.Sprintf("Success: %d", v) },
		func(err error) string { return fmt.Sprintf("Error: %v", err) },
	))
	// Output: Error: boom
}

func ExampleMap() {
	doubled := either.Map(either.Ok[int, error](21), func(n int) int { return n * 2 })

	fmt.Println(doubled)
	// Output: Ok(42)
}

func ExampleCollect() {
	rs := []either.Result[int]{either.Success(1), either.Success(2)}

	fmt.Println(either.Collect(rs))
	// Output: Ok([1 2])
}
