package primality

import (
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
	"github.com/bob11/textbook-rsa/pkg/rsacore/modexp"
	"github.com/bob11/textbook-rsa/pkg/rsacore/randint"
)

// Result is the outcome of a primality test.
type Result int

const (
	// Composite means a witness proved n composite, or n < 2.
	Composite Result = iota
	// ProbablyPrime means every round passed.
	ProbablyPrime
)

func (r Result) String() string {
	switch r {
	case Composite:
		return "composite"
	case ProbablyPrime:
		return "probably-prime"
	default:
		return "unknown"
	}
}

// DefaultRounds matches rsacore.DefaultRounds. Ten rounds bound the error at
// 4^-10 for a composite input, which suits random candidates during key
// generation. It is not conservative for inputs chosen by an adversary; raise
// the round count there instead of relying on this default.
const DefaultRounds = rsacore.DefaultRounds

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Decompose writes n-1 = 2^s * q with q odd. n must be at least 2.
func Decompose(n *big.Int) (s uint, q *big.Int, err error) {
	if n == nil || n.Cmp(two) < 0 {
		return 0, nil, rsacore.Errorf("primality.Decompose", rsacore.ErrMalformedInput, "n must be at least 2")
	}
	m := new(big.Int).Sub(n, one)
	s = m.TrailingZeroBits()
	return s, m.Rsh(m, s), nil
}

// Test runs rounds of Miller–Rabin on n with bases drawn from src (nil uses
// crypto/rand). A composite n is reported through the Result, never as an
// error; the only errors are rounds < 1 and failures of the random source.
func Test(n *big.Int, rounds int, src *randint.Sampler) (Result, error) {
	if rounds < 1 {
		return Composite, rsacore.Errorf("primality", rsacore.ErrMalformedInput, "rounds must be positive, got %d", rounds)
	}
	if n == nil || n.Cmp(two) < 0 {
		return Composite, nil
	}
	if n.Cmp(three) <= 0 {
		return ProbablyPrime, nil
	}
	if n.Bit(0) == 0 {
		return Composite, nil
	}
	if src == nil {
		src = randint.New(nil)
	}

	s, q, err := Decompose(n)
	if err != nil {
		return Composite, err
	}
	nMinus1 := new(big.Int).Sub(n, one)
	hi := new(big.Int).Sub(n, two)

	for round := 0; round < rounds; round++ {
		a, err := src.InRange(two, hi)
		if err != nil {
			return Composite, err
		}
		if !passes(a, q, s, n, nMinus1) {
			return Composite, nil
		}
	}
	return ProbablyPrime, nil
}

// passes reports whether base a finds no evidence that n is composite.
func passes(a, q *big.Int, s uint, n, nMinus1 *big.Int) bool {
	x := modexp.MustModExp(a, q, n)
	if x.Cmp(one) == 0 {
		return true
	}
	tmp := new(big.Int)
	for i := uint(0); i < s; i++ {
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		tmp.Mul(x, x)
		x.Mod(tmp, n)
	}
	return false
}

// Tester bundles a round count and a sampler for repeated tests.
type Tester struct {
	Rounds  int
	Sampler *randint.Sampler
}

// NewTester returns a Tester. rounds <= 0 selects DefaultRounds.
func NewTester(rounds int, src *randint.Sampler) *Tester {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if src == nil {
		src = randint.New(nil)
	}
	return &Tester{Rounds: rounds, Sampler: src}
}

// Test runs Test with the receiver's settings.
func (t *Tester) Test(n *big.Int) (Result, error) {
	return Test(n, t.Rounds, t.Sampler)
}

// IsProbablyPrime is Test reduced to a boolean.
func (t *Tester) IsProbablyPrime(n *big.Int) (bool, error) {
	r, err := t.Test(n)
	return r == ProbablyPrime, err
}
