package sha3hw

import "github.com/pkg/errors"

// Errors returned by this package. They are wrapped with the offending
// field, so match them with errors.Is.
var (
	// ErrInvalidKey reports a key that is not exactly 512 bits.
	ErrInvalidKey = errors.New("key must be exactly 512 bits")
	// ErrRange reports a word or integer that does not fit its fixed width.
	ErrRange = errors.New("value out of range")
	// ErrFormat reports malformed hexadecimal text.
	ErrFormat = errors.New("malformed hex")
	// ErrMismatch reports a computed digest that differs from the expected one.
	ErrMismatch = errors.New("digest mismatch")
)
