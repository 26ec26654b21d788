package rsacore

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore/logging"
)

const (
	// DefaultPublicExponent is the fixed exponent of the reference tool,
	// 0x10C69.
	DefaultPublicExponent = 68713

	// DefaultRounds is the Miller–Rabin round count used during key
	// generation. It bounds the error at 4^-10 per candidate, which is fine
	// for random candidates but not for numbers an adversary picked.
	DefaultRounds = 10

	// MinRounds is the smallest round count key generation accepts.
	MinRounds = 10

	// DefaultMaxAttempts bounds the number of candidate pairs drawn before
	// key generation gives up with ErrRandomSourceExhausted.
	DefaultMaxAttempts = 1 << 20
)

// Config expresses the knobs of key generation. The zero value is usable:
// WithDefaults fills every unset field.
type Config struct {
	// PublicExponent is e. It must be odd and at least 3. Nil selects
	// DefaultPublicExponent.
	PublicExponent *big.Int

	// Rounds is the number of Miller–Rabin rounds per candidate prime.
	Rounds int

	// MaxAttempts caps the number of candidate pairs drawn.
	MaxAttempts int

	// Random is the entropy source. It must be cryptographically secure;
	// nil selects crypto/rand.Reader.
	Random io.Reader

	// Logger receives progress messages. Nil discards them.
	Logger logging.Logger
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of c with unset fields replaced by defaults.
// PublicExponent is copied so later mutation by the caller has no effect.
func (c Config) WithDefaults() Config {
	if c.PublicExponent == nil {
		c.PublicExponent = big.NewInt(DefaultPublicExponent)
	} else {
		c.PublicExponent = new(big.Int).Set(c.PublicExponent)
	}
	if c.Rounds == 0 {
		c.Rounds = DefaultRounds
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Random == nil {
		c.Random = rand.Reader
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c
}

// Validate reports whether c, after defaults, describes a usable key
// generation setup.
func (c Config) Validate() error {
	c = c.WithDefaults()
	e := c.PublicExponent
	if e.Cmp(big.NewInt(3)) < 0 || e.Bit(0) == 0 {
		return Errorf("config", ErrMalformedInput, "public exponent must be odd and at least 3, got %s", e.String())
	}
	if c.Rounds < MinRounds {
		return Errorf("config", ErrMalformedInput, "rounds must be at least %d, got %d", MinRounds, c.Rounds)
	}
	if c.MaxAttempts < 1 {
		return Errorf("config", ErrMalformedInput, "max attempts must be positive, got %d", c.MaxAttempts)
	}
	return nil
}
