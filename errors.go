package bigint

import "errors"

// Sentinel errors returned by parsing, arithmetic and conversion
// operations. Callers match them with errors.Is; the wrapped message
// carries the offending input.
var (
	// ErrInvalidInteger reports text that does not denote an integer.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrInvalidBaseZero reports an attempt to represent a non-zero
	// value in base zero. Only zero has a base-zero form.
	ErrInvalidBaseZero = errors.New("base 0 cannot represent non-zero values")

	// ErrDivisionByZero reports a zero divisor or modulus.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrShiftOutOfRange reports a shift amount whose magnitude exceeds
	// the safe-integer bound of 2^53.
	ErrShiftOutOfRange = errors.New("shift amount out of range")

	// ErrUnsupportedExponent reports an exponent for which no integer
	// result is defined, such as a huge Pow exponent or a negative
	// ModPow exponent with no modular inverse.
	ErrUnsupportedExponent = errors.New("unsupported exponent")
)
