package rsa

import (
	"context"
	"errors"
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
	"github.com/bob11/textbook-rsa/pkg/rsacore/euclid"
	"github.com/bob11/textbook-rsa/pkg/rsacore/logging"
	"github.com/bob11/textbook-rsa/pkg/rsacore/modexp"
	"github.com/bob11/textbook-rsa/pkg/rsacore/primality"
	"github.com/bob11/textbook-rsa/pkg/rsacore/randint"
)

const (
	// MinKeyBits is the smallest modulus size GenerateKey accepts. Below it
	// the candidate space cannot hold two distinct odd primes.
	MinKeyBits = 8

	// DefaultKeyBits is the modulus size of the reference tool.
	DefaultKeyBits = 1024
)

var one = big.NewInt(1)

// PublicKey is the encryption half of a key pair.
type PublicKey struct {
	N, E *big.Int
}

// PrivateKey is the decryption half of a key pair.
type PrivateKey struct {
	N, D *big.Int
}

// KeyPair holds the modulus and both exponents. E*D = 1 modulo
// (p-1)(q-1) for the primes p, q behind N; the primes themselves are not
// kept. A KeyPair is not modified after GenerateKey returns it.
type KeyPair struct {
	N, E, D *big.Int
}

// Public returns a copy of the public half.
func (k *KeyPair) Public() PublicKey {
	return PublicKey{N: new(big.Int).Set(k.N), E: new(big.Int).Set(k.E)}
}

// Private returns a copy of the private half.
func (k *KeyPair) Private() PrivateKey {
	return PrivateKey{N: new(big.Int).Set(k.N), D: new(big.Int).Set(k.D)}
}

// Validate checks the structural shape of k: N > 1, E >= 3 and odd, D > 0.
// It cannot check E*D = 1 mod λ, since λ is not kept.
func (k *KeyPair) Validate() error {
	switch {
	case k == nil || k.N == nil || k.E == nil || k.D == nil:
		return rsacore.Errorf("rsa.Validate", rsacore.ErrMalformedInput, "incomplete key pair")
	case k.N.Cmp(one) <= 0:
		return rsacore.Errorf("rsa.Validate", rsacore.ErrInvalidModulus, "modulus must exceed 1")
	case k.E.Cmp(big.NewInt(3)) < 0 || k.E.Bit(0) == 0:
		return rsacore.Errorf("rsa.Validate", rsacore.ErrMalformedInput, "public exponent must be odd and at least 3")
	case k.D.Sign() <= 0:
		return rsacore.Errorf("rsa.Validate", rsacore.ErrMalformedInput, "private exponent must be positive")
	}
	return nil
}

// GenerateKey returns a fresh key pair whose modulus is the product of two
// random odd primes of at most bits/2 bits each.
//
// Each attempt draws a pair of odd candidates, tests both with Miller–Rabin
// and checks gcd(e, λ) = 1 where λ = (p-1)(q-1). Any failure discards the
// whole pair and draws again. d is the inverse of e modulo λ. The search is
// bounded by cfg.MaxAttempts (ErrRandomSourceExhausted) and stops early when
// ctx is done.
func GenerateKey(ctx context.Context, bits int, cfg rsacore.Config) (*KeyPair, error) {
	return generateKey(ctx, bits, cfg, nil)
}

// generateKey is GenerateKey with a hook that sees the primes before they are
// scrubbed.
func generateKey(ctx context.Context, bits int, cfg rsacore.Config, keep func(p, q *big.Int)) (*KeyPair, error) {
	if bits < MinKeyBits {
		return nil, rsacore.Errorf("rsa.GenerateKey", rsacore.ErrMalformedInput, "key size %d is below %d bits", bits, MinKeyBits)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	log := cfg.Logger.With("bits", bits, "rounds", cfg.Rounds)
	sampler := randint.New(cfg.Random)
	tester := primality.NewTester(cfg.Rounds, sampler)
	e := cfg.PublicExponent
	half := bits / 2

	var key *KeyPair
	var rejectedGCD int
	attempts, err := rsacore.Retry(ctx, cfg.MaxAttempts, func(int) (bool, error) {
		p, q, err := drawPair(sampler, tester, half)
		if err != nil || p == nil {
			return false, err
		}
		defer rsacore.ZeroizeInts(p, q)

		lambda := totient(p, q)
		defer rsacore.ZeroizeInt(lambda)

		d, err := euclid.Inverse(e, lambda)
		if errors.Is(err, rsacore.ErrNoInverse) {
			rejectedGCD++
			log.Debug(ctx, "public exponent shares a factor with totient, redrawing")
			return false, nil
		}
		if err != nil {
			return false, err
		}

		if keep != nil {
			keep(p, q)
		}
		key = &KeyPair{N: new(big.Int).Mul(p, q), E: new(big.Int).Set(e), D: d}
		return true, nil
	})
	if err != nil {
		log.Warn(ctx, "key generation failed", "attempts", attempts, "error", err)
		return nil, err
	}

	log.Info(ctx, "generated key",
		"attempts", attempts,
		"gcd_rejections", rejectedGCD,
		"modulus_bits", key.N.BitLen(),
		logging.Redacted("d"),
	)
	return key, nil
}

// drawPair draws two odd candidates and returns them only if both test
// probably prime and differ. A nil p with a nil error means try again.
func drawPair(sampler *randint.Sampler, tester *primality.Tester, bits int) (p, q *big.Int, err error) {
	p, err = sampler.OddCandidate(bits)
	if err != nil {
		return nil, nil, err
	}
	q, err = sampler.OddCandidate(bits)
	if err != nil {
		rsacore.ZeroizeInt(p)
		return nil, nil, err
	}
	ok, err := bothPrime(tester, p, q)
	if err != nil || !ok || p.Cmp(q) == 0 {
		rsacore.ZeroizeInts(p, q)
		return nil, nil, err
	}
	return p, q, nil
}

func bothPrime(tester *primality.Tester, p, q *big.Int) (bool, error) {
	ok, err := tester.IsProbablyPrime(p)
	if err != nil || !ok {
		return false, err
	}
	return tester.IsProbablyPrime(q)
}

// totient returns (p-1)(q-1).
func totient(p, q *big.Int) *big.Int {
	p1 := new(big.Int).Sub(p, one)
	q1 := new(big.Int).Sub(q, one)
	defer rsacore.ZeroizeInts(p1, q1)
	return new(big.Int).Mul(p1, q1)
}

// Encrypt returns m^E mod N. m must lie in [0, N); no padding is applied.
func Encrypt(m *big.Int, pub PublicKey) (*big.Int, error) {
	if err := checkOperand("rsa.Encrypt", m, pub.N, pub.E); err != nil {
		return nil, err
	}
	return modexp.ModExp(m, pub.E, pub.N)
}

// Decrypt returns c^D mod N. c must lie in [0, N).
func Decrypt(c *big.Int, priv PrivateKey) (*big.Int, error) {
	if err := checkOperand("rsa.Decrypt", c, priv.N, priv.D); err != nil {
		return nil, err
	}
	return modexp.ModExp(c, priv.D, priv.N)
}

func checkOperand(op string, x, n, exp *big.Int) error {
	if n == nil || n.Sign() <= 0 {
		return rsacore.Errorf(op, rsacore.ErrInvalidModulus, "modulus must be positive")
	}
	if exp == nil || exp.Sign() < 0 {
		return rsacore.Errorf(op, rsacore.ErrMalformedInput, "exponent must be non-negative")
	}
	if x == nil || x.Sign() < 0 || x.Cmp(n) >= 0 {
		return rsacore.Errorf(op, rsacore.ErrMalformedInput, "operand must lie in [0, n)")
	}
	return nil
}
