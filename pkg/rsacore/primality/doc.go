// Package primality implements the Miller–Rabin probabilistic primality test.
//
// n-1 is split as 2^s * q with q odd by stripping trailing zero bits. Each
// round draws a base a uniformly from [2, n-2] and computes x = a^q mod n with
// modexp.ModExp. The round passes if x = 1, or if x reaches n-1 within s
// squarings. A round that fails proves n composite and ends the test at once.
// If every round passes, n is a strong probable prime; the chance that a
// composite survives k rounds is at most 4^-k.
//
// Small cases are settled without sampling: n < 2 is composite, 2 and 3 are
// prime, and other even numbers are composite.
//
// # Usage
//
//	res, err := primality.Test(n, primality.DefaultRounds, nil)
//	if err != nil {
//	    return err // random source failure
//	}
//	if res == primality.ProbablyPrime {
//	    // ...
//	}
package primality
