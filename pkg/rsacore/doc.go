// Package rsacore holds the shared pieces of the textbook RSA core: the error
// taxonomy, the key-generation Config, the bounded retry combinator and a few
// memory-hygiene helpers.
//
// The algorithms themselves live in subpackages, each built only from the
// add/sub/mul/quo-rem/mod/bit primitives of math/big and uniform sampling from
// crypto/rand:
//
//   - modexp: left-to-right square-and-multiply exponentiation
//   - euclid: iterative extended Euclid and modular inverse
//   - primality: Miller–Rabin probabilistic primality test
//   - rsa: key generation, encryption and decryption
//
// No library exponentiation, inverse or primality routine is used anywhere in
// these packages; internalcheck enforces that.
//
// # Errors
//
// Every failure wraps one of four sentinels so callers can branch with
// errors.Is:
//
//	ErrInvalidModulus        modulus is zero or negative
//	ErrNoInverse             gcd(e, m) != 1
//	ErrMalformedInput        argument outside the accepted domain
//	ErrRandomSourceExhausted bounded sampling or key search gave up
//
// # Non-goals
//
// The arithmetic is not constant time, no padding scheme is applied and keys
// have no serialization format. Do not use this for anything but study.
package rsacore
