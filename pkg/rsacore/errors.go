package rsacore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus indicates a zero or negative modulus.
	ErrInvalidModulus = errors.New("rsacore: invalid modulus")

	// ErrNoInverse indicates gcd(e, m) != 1, so e has no inverse modulo m.
	// Key generation absorbs it and redraws primes; direct callers of
	// euclid.Inverse receive it as a hard failure.
	ErrNoInverse = errors.New("rsacore: no modular inverse exists")

	// ErrMalformedInput indicates an argument outside the accepted domain,
	// such as a message not in [0, n) or a key size too small for two
	// distinct odd primes.
	ErrMalformedInput = errors.New("rsacore: malformed input")

	// ErrRandomSourceExhausted indicates that sampling could not satisfy its
	// range constraints within the attempt bound. It points at a broken
	// environment, not at bad data, and should be treated as fatal.
	ErrRandomSourceExhausted = errors.New("rsacore: random source exhausted")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error for op whose chain contains kind, so errors.Is(err,
// kind) holds for the result.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// Wrap attaches op to err without changing its identity. Nil stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
