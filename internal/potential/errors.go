package potential

import (
	"errors"
	"fmt"
)

// Domain errors for potential evaluation.
var (
	// ErrNotImplemented indicates a variant lacks the requested raw operation.
	ErrNotImplemented = errors.New("potential: raw operation not implemented")

	// ErrInvalidInput indicates a composition argument that is neither a
	// Potential nor a list of Potentials.
	ErrInvalidInput = errors.New("potential: invalid input")

	// ErrZeroReferenceForce indicates a vanishing radial force at the
	// normalization reference point (R=1, z=0).
	ErrZeroReferenceForce = errors.New("potential: zero radial force at reference point")

	// ErrBadAmplitude indicates an amplitude that is zero, NaN or infinite.
	ErrBadAmplitude = errors.New("potential: amplitude must be finite and nonzero")
)

// Error wraps a domain error with the operation that triggered it.
type Error struct {
	Op      string
	Wrapped error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Wrapped, ErrNotImplemented):
		return fmt.Sprintf("'%s' not implemented for this potential", e.Op)
	case errors.Is(e.Wrapped, ErrInvalidInput):
		return fmt.Sprintf("Input to '%s' is neither a Potential-instance or a list of such instances", e.Op)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
	}
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func notImplemented(rawOp string) error {
	return &Error{Op: rawOp, Wrapped: ErrNotImplemented}
}

func invalidInput(fn string) error {
	return &Error{Op: fn, Wrapped: ErrInvalidInput}
}
