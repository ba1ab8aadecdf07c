package either

// Match reduces e to a single value by dispatching on its tag: onOk receives
// the success payload, onErr the failure payload, and exactly one of them
// runs. Panics raised inside a branch propagate to the caller unchanged.
//
// Matching an empty instance panics with ErrInvalidState. Match is a
// package function rather than a method so the branches can return an
// arbitrary type R.
func Match[T, E, R any](e Either[T, E], onOk func(T) R, onErr func(E) R) R {
	if !e.valid {
		panic(ErrInvalidState)
	}
	if e.isOk {
		return onOk(e.ok)
	}
	return onErr(e.err)
}
