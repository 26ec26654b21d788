package euclid_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/bob11/textbook-rsa/pkg/rsacore"
	"github.com/bob11/textbook-rsa/pkg/rsacore/euclid"
)

func checkBezout(t *testing.T, a, b *big.Int, res euclid.Result) {
	t.Helper()
	lhs := new(big.Int).Mul(a, res.X)
	lhs.Add(lhs, new(big.Int).Mul(b, res.Y))
	if lhs.Cmp(res.G) != 0 {
		t.Fatalf("a*x + b*y = %s, want gcd %s (a=%s b=%s x=%s y=%s)", lhs, res.G, a, b, res.X, res.Y)
	}
}

func TestExtendedEuclidTextbook(t *testing.T) {
	a, b := big.NewInt(240), big.NewInt(46)
	res, err := euclid.ExtendedEuclid(a, b)
	if err != nil {
		t.Fatalf("ExtendedEuclid: %v", err)
	}
	if res.G.Int64() != 2 {
		t.Fatalf("gcd = %s, want 2", res.G)
	}
	if res.X.Int64() != -9 || res.Y.Int64() != 47 {
		t.Fatalf("coefficients = (%s, %s), want (-9, 47)", res.X, res.Y)
	}
	checkBezout(t, a, b, res)
}

func TestExtendedEuclidEdgeCases(t *testing.T) {
	tests := []struct {
		a, b, gcd int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{1, 1, 1},
		{17, 17, 17},
		{3, 7, 1},
		{7, 3, 1},
		{12, 18, 6},
		{1 << 40, 1 << 20, 1 << 20},
	}
	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		res, err := euclid.ExtendedEuclid(a, b)
		if err != nil {
			t.Fatalf("ExtendedEuclid(%d, %d): %v", tt.a, tt.b, err)
		}
		if res.G.Int64() != tt.gcd {
			t.Errorf("gcd(%d, %d) = %s, want %d", tt.a, tt.b, res.G, tt.gcd)
		}
		checkBezout(t, a, b, res)
	}
}

func TestExtendedEuclidRandomBezout(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	limit := new(big.Int).Lsh(big.NewInt(1), 512)
	for i := 0; i < 200; i++ {
		a := new(big.Int).Rand(rng, limit)
		b := new(big.Int).Rand(rng, limit)
		res, err := euclid.ExtendedEuclid(a, b)
		if err != nil {
			t.Fatalf("ExtendedEuclid: %v", err)
		}
		checkBezout(t, a, b, res)

		// g must divide both inputs.
		if res.G.Sign() > 0 {
			if new(big.Int).Rem(a, res.G).Sign() != 0 || new(big.Int).Rem(b, res.G).Sign() != 0 {
				t.Fatalf("gcd %s does not divide %s and %s", res.G, a, b)
			}
		}
	}
}

func TestWalkInvariantHoldsAtEveryStep(t *testing.T) {
	a, b := big.NewInt(1071), big.NewInt(462)
	steps := 0
	_, err := euclid.Walk(a, b, func(s euclid.State) {
		steps++
		for i, row := range s {
			lhs := new(big.Int).Mul(a, row.X)
			lhs.Add(lhs, new(big.Int).Mul(b, row.Y))
			if lhs.Cmp(row.R) != 0 {
				t.Fatalf("step %d row %d: a*x + b*y = %s, want %s", steps, i, lhs, row.R)
			}
		}
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if steps < 2 {
		t.Fatalf("expected several states, saw %d", steps)
	}
}

func TestStepRotatesRows(t *testing.T) {
	s := euclid.Start(big.NewInt(240), big.NewInt(46))
	next := euclid.Step(s)
	if next[0].R.Int64() != 46 || next[1].R.Int64() != 10 {
		t.Fatalf("remainders after one step = (%s, %s), want (46, 10)", next[0].R, next[1].R)
	}
	if next[1].X.Int64() != 1 || next[1].Y.Int64() != -5 {
		t.Fatalf("new row coefficients = (%s, %s), want (1, -5)", next[1].X, next[1].Y)
	}
	if s[0].R.Int64() != 240 {
		t.Fatalf("Step modified its input")
	}
}

func TestExtendedEuclidRejectsNegative(t *testing.T) {
	_, err := euclid.ExtendedEuclid(big.NewInt(-4), big.NewInt(6))
	if !errors.Is(err, rsacore.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestGCD(t *testing.T) {
	g, err := euclid.GCD(big.NewInt(68713), big.NewInt(3120))
	if err != nil {
		t.Fatalf("GCD: %v", err)
	}
	if g.Int64() != 1 {
		t.Fatalf("gcd(68713, 3120) = %s, want 1", g)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		e, m, want int64
	}{
		{3, 11, 4},
		{17, 3120, 2753},
		{-3, 11, 7},
		{14, 11, 4},
		{1, 2, 1},
		{5, 1, 0},
	}
	for _, tt := range tests {
		got, err := euclid.Inverse(big.NewInt(tt.e), big.NewInt(tt.m))
		if err != nil {
			t.Fatalf("Inverse(%d, %d): %v", tt.e, tt.m, err)
		}
		if got.Int64() != tt.want {
			t.Errorf("Inverse(%d, %d) = %s, want %d", tt.e, tt.m, got, tt.want)
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	limit := new(big.Int).Lsh(big.NewInt(1), 256)
	found := 0
	for found < 100 {
		m := new(big.Int).Rand(rng, limit)
		if m.Cmp(big.NewInt(2)) < 0 {
			continue
		}
		e := new(big.Int).Rand(rng, m)
		g, err := euclid.GCD(e, m)
		if err != nil {
			t.Fatalf("GCD: %v", err)
		}
		if g.Cmp(big.NewInt(1)) != 0 {
			continue
		}
		found++

		d, err := euclid.Inverse(e, m)
		if err != nil {
			t.Fatalf("Inverse: %v", err)
		}
		if d.Sign() < 0 || d.Cmp(m) >= 0 {
			t.Fatalf("inverse %s outside [0, %s)", d, m)
		}
		prod := new(big.Int).Mul(e, d)
		if prod.Mod(prod, m).Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("e*d mod m = %s, want 1", prod)
		}
	}
}

func TestInverseErrors(t *testing.T) {
	_, err := euclid.Inverse(big.NewInt(2), big.NewInt(4))
	if !errors.Is(err, rsacore.ErrNoInverse) {
		t.Fatalf("expected ErrNoInverse, got %v", err)
	}

	_, err = euclid.Inverse(big.NewInt(0), big.NewInt(9))
	if !errors.Is(err, rsacore.ErrNoInverse) {
		t.Fatalf("expected ErrNoInverse for zero, got %v", err)
	}

	_, err = euclid.Inverse(big.NewInt(3), big.NewInt(0))
	if !errors.Is(err, rsacore.ErrInvalidModulus) {
		t.Fatalf("expected ErrInvalidModulus, got %v", err)
	}

	_, err = euclid.Inverse(big.NewInt(3), big.NewInt(-11))
	if !errors.Is(err, rsacore.ErrInvalidModulus) {
		t.Fatalf("expected ErrInvalidModulus for negative modulus, got %v", err)
	}
}
