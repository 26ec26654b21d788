// Package modexp implements modular exponentiation by left-to-right binary
// square-and-multiply. It is the single exponentiation routine of the core:
// primality testing, encryption and decryption all go through ModExp.
package modexp

import (
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
)

// ModExp returns a^e mod m in [0, m).
//
// The accumulator starts at 1 mod m. Bits of e are scanned from BitLen(e)-1
// down to 0; each step squares the accumulator and, when the bit is set,
// multiplies in a. a may be negative or larger than m; it is reduced first.
// e = 0 yields 1 mod m, which is 0 when m = 1.
//
// m must be positive (ErrInvalidModulus) and e non-negative
// (ErrMalformedInput). Inputs are never modified.
func ModExp(a, e, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, rsacore.Errorf("modexp", rsacore.ErrInvalidModulus, "modulus must be positive")
	}
	if a == nil || e == nil {
		return nil, rsacore.Errorf("modexp", rsacore.ErrMalformedInput, "nil operand")
	}
	if e.Sign() < 0 {
		return nil, rsacore.Errorf("modexp", rsacore.ErrMalformedInput, "negative exponent")
	}
	return modExp(a, e, m), nil
}

// MustModExp is ModExp for call sites that have already established its
// preconditions. It panics on error.
func MustModExp(a, e, m *big.Int) *big.Int {
	r, err := ModExp(a, e, m)
	if err != nil {
		panic(err)
	}
	return r
}

func modExp(a, e, m *big.Int) *big.Int {
	base := new(big.Int).Mod(a, m)
	acc := new(big.Int).Mod(big.NewInt(1), m)
	tmp := new(big.Int)

	for i := e.BitLen() - 1; i >= 0; i-- {
		tmp.Mul(acc, acc)
		acc.Mod(tmp, m)
		if e.Bit(i) == 1 {
			tmp.Mul(acc, base)
			acc.Mod(tmp, m)
		}
	}
	return acc
}
