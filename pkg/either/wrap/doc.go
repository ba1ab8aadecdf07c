// Package wrap adapts conventional Go functions into Result values.
//
// It captures the two ways a synchronous call can go wrong, a non-nil
// error return and a panic, and reports both as a failure instance instead
// of letting them escape. A captured panic surfaces as *either.PanicError
// carrying the panic value and the goroutine stack.
//
// Key operations:
// - Of: wrap an already-made (value, error) pair at the call site
// - Try: run a (T, error) function, capturing errors and panics
// - Call: run a plain T function, capturing panics
// - Func/Func1/Func2: lift a (T, error) function into a Result function
// - Pure/Pure1/Pure2: lift a plain function into a Result function
package wrap
