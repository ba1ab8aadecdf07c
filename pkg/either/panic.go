package either

import "fmt"

// PanicError is the failure payload produced when an adapter captures a
// panic. Value holds the value passed to panic and Stack the goroutine
// stack formatted at recovery time.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap exposes the panic value when it is itself an error, so errors.Is
// and errors.As see through the capture to the original class.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}
