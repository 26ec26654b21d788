// Package rsa implements textbook RSA on top of the core primitives.
//
// SECURITY WARNING: there is no padding, no blinding and no constant-time
// arithmetic. Encrypt and Decrypt are the raw maps m -> m^e mod n and
// c -> c^d mod n. Messages must already be integers in [0, n).
//
// # Key Operations
//
//   - GenerateKey(): draw two primes, derive n, λ and d = e^-1 mod λ
//   - Encrypt(): one modexp.ModExp call with the public exponent
//   - Decrypt(): one modexp.ModExp call with the private exponent
//
// # Usage Example
//
//	key, err := rsa.GenerateKey(ctx, 1024, rsacore.Config{})
//	if err != nil {
//	    return err
//	}
//	c, err := rsa.Encrypt(m, key.Public())
//	m2, err := rsa.Decrypt(c, key.Private())
//
// The public exponent defaults to 68713; pass rsacore.Config.PublicExponent
// to pick another.
package rsa
