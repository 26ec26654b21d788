package rsa

import (
	"context"
	"math/big"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
)

// GenerateKeyWithPrimes exposes the primes behind a generated key to tests.
func GenerateKeyWithPrimes(ctx context.Context, bits int, cfg rsacore.Config) (key *KeyPair, p, q *big.Int, err error) {
	key, err = generateKey(ctx, bits, cfg, func(pp, qq *big.Int) {
		p = new(big.Int).Set(pp)
		q = new(big.Int).Set(qq)
	})
	return key, p, q, err
}
