// Package euclid implements the iterative extended Euclidean algorithm and the
// modular inverse built on it.
//
// The algorithm keeps two rows (r, x, y) seeded with (a, 1, 0) and (b, 0, 1).
// Each step replaces the pair (row0, row1) with (row1, row0 - q*row1) where
// q = row0.R / row1.R. Every row satisfies a*X + b*Y = R throughout, so when
// row1.R reaches zero, row0 holds gcd(a, b) and its Bézout coefficients.
package euclid

import (
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
)

// Row is one (remainder, x-coefficient, y-coefficient) triple.
type Row struct {
	R, X, Y *big.Int
}

// State is the two-row window the algorithm rotates.
type State [2]Row

// Result holds g = gcd(a, b) and coefficients with a*X + b*Y = g.
type Result struct {
	G, X, Y *big.Int
}

// Start returns the initial state for inputs a and b.
func Start(a, b *big.Int) State {
	return State{
		{R: new(big.Int).Set(a), X: big.NewInt(1), Y: big.NewInt(0)},
		{R: new(big.Int).Set(b), X: big.NewInt(0), Y: big.NewInt(1)},
	}
}

// Done reports whether the second remainder has reached zero.
func (s State) Done() bool {
	return s[1].R.Sign() == 0
}

// Step performs one rotation. It must not be called on a finished state.
func Step(s State) State {
	q := new(big.Int).Quo(s[0].R, s[1].R)
	return State{s[1], sub(s[0], s[1], q)}
}

// sub returns r0 - q*r1 component-wise.
func sub(r0, r1 Row, q *big.Int) Row {
	return Row{
		R: subMul(r0.R, q, r1.R),
		X: subMul(r0.X, q, r1.X),
		Y: subMul(r0.Y, q, r1.Y),
	}
}

func subMul(a, q, b *big.Int) *big.Int {
	t := new(big.Int).Mul(q, b)
	return t.Sub(a, t)
}

// ExtendedEuclid returns gcd(a, b) with Bézout coefficients. Both inputs must
// be non-negative. gcd(0, 0) is reported as 0 with X = 1, Y = 0.
func ExtendedEuclid(a, b *big.Int) (Result, error) {
	return Walk(a, b, nil)
}

// Walk runs the algorithm like ExtendedEuclid and calls visit with every state,
// the initial one included, before it is advanced.
func Walk(a, b *big.Int, visit func(State)) (Result, error) {
	if a == nil || b == nil || a.Sign() < 0 || b.Sign() < 0 {
		return Result{}, rsacore.Errorf("euclid", rsacore.ErrMalformedInput, "operands must be non-negative")
	}
	s := Start(a, b)
	for {
		if visit != nil {
			visit(s)
		}
		if s.Done() {
			break
		}
		s = Step(s)
	}
	return Result{G: s[0].R, X: s[0].X, Y: s[0].Y}, nil
}

// GCD returns gcd(a, b) for non-negative a and b.
func GCD(a, b *big.Int) (*big.Int, error) {
	res, err := ExtendedEuclid(a, b)
	if err != nil {
		return nil, err
	}
	return res.G, nil
}

// Inverse returns x in [0, m) with e*x = 1 (mod m).
//
// e is reduced into [0, m) first, so negative values are accepted. A negative
// Bézout coefficient is normal and is lifted by adding m. When gcd(e, m) != 1
// the error wraps rsacore.ErrNoInverse.
func Inverse(e, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, rsacore.Errorf("euclid.Inverse", rsacore.ErrInvalidModulus, "modulus must be positive")
	}
	if e == nil {
		return nil, rsacore.Errorf("euclid.Inverse", rsacore.ErrMalformedInput, "nil operand")
	}
	res, err := ExtendedEuclid(new(big.Int).Mod(e, m), m)
	if err != nil {
		return nil, err
	}
	if res.G.Cmp(big.NewInt(1)) != 0 {
		return nil, rsacore.Errorf("euclid.Inverse", rsacore.ErrNoInverse, "gcd is %s", res.G.String())
	}
	x := res.X
	if x.Sign() < 0 {
		x.Add(x, m)
	}
	return x, nil
}
