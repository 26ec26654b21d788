// Package randint draws uniformly distributed big integers from a
// cryptographically secure reader, with bounded redraws for range
// constraints.
package randint

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
)

// DefaultMaxRedraws bounds rejection sampling in InRange. A healthy source
// exceeds it with probability far below 2^-100 for every range the core uses.
const DefaultMaxRedraws = 128

var one = big.NewInt(1)

// Sampler draws integers from r. It holds no mutable state besides the
// reader, so it is safe for concurrent use whenever r is.
type Sampler struct {
	r          io.Reader
	maxRedraws int
}

// New returns a Sampler reading from r. Nil selects crypto/rand.Reader.
func New(r io.Reader) *Sampler {
	if r == nil {
		r = rand.Reader
	}
	return &Sampler{r: r, maxRedraws: DefaultMaxRedraws}
}

// WithMaxRedraws returns a copy of s that gives up after n rejected draws.
func (s *Sampler) WithMaxRedraws(n int) *Sampler {
	c := *s
	c.maxRedraws = n
	return &c
}

// Below returns a uniform value in [0, hi). hi must be positive.
func (s *Sampler) Below(hi *big.Int) (*big.Int, error) {
	if hi == nil || hi.Sign() <= 0 {
		return nil, rsacore.Errorf("randint.Below", rsacore.ErrMalformedInput, "upper bound must be positive")
	}
	v, err := rand.Int(s.r, hi)
	if err != nil {
		return nil, rsacore.Wrap("randint.Below", err)
	}
	return v, nil
}

// InRange returns a uniform value in [lo, hi] (both inclusive). It draws from
// [0, hi] and redraws anything below lo, giving up with
// ErrRandomSourceExhausted after the redraw bound.
func (s *Sampler) InRange(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || lo.Sign() < 0 || lo.Cmp(hi) > 0 {
		return nil, rsacore.Errorf("randint.InRange", rsacore.ErrMalformedInput, "empty or negative range")
	}
	bound := new(big.Int).Add(hi, one)
	for i := 0; i <= s.maxRedraws; i++ {
		v, err := s.Below(bound)
		if err != nil {
			return nil, err
		}
		if v.Cmp(lo) >= 0 {
			return v, nil
		}
	}
	return nil, rsacore.Errorf("randint.InRange", rsacore.ErrRandomSourceExhausted,
		"no value in range after %d redraws", s.maxRedraws)
}

// OddCandidate returns a uniform odd value below 2^bits. The top bit is left
// unconstrained, so the result may be shorter than bits.
func (s *Sampler) OddCandidate(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, rsacore.Errorf("randint.OddCandidate", rsacore.ErrMalformedInput, "need at least 2 bits, got %d", bits)
	}
	v, err := s.Below(new(big.Int).Lsh(one, uint(bits)))
	if err != nil {
		return nil, err
	}
	return v.SetBit(v, 0, 1), nil
}
