// Command rsa generates textbook RSA keys and encrypts or decrypts single
// integers with them. All numbers are hexadecimal.
//
//	rsa -k                      prints "N E D"
//	rsa -e E N PLAINTEXT        prints the ciphertext
//	rsa -d D N CIPHERTEXT       prints the plaintext
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/signal"

	"github.com/bob11/textbook-rsa/internal/cliconfig"
	"github.com/bob11/textbook-rsa/internal/hexnum"
	"github.com/bob11/textbook-rsa/pkg/rsacore"
	"github.com/bob11/textbook-rsa/pkg/rsacore/logging"
	"github.com/bob11/textbook-rsa/pkg/rsacore/rsa"
)

const usage = "usage: rsa [flags] -k | -e E N PLAINTEXT | -d D N CIPHERTEXT"

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errUsage = errors.New(usage)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	keygen, encrypt, decrypt bool
	bits, rounds             int
	exponent, profile        string
	verbose, version         bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rsa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.BoolVar(&o.keygen, "k", false, "generate a key pair and print N E D")
	fs.BoolVar(&o.encrypt, "e", false, "encrypt PLAINTEXT with exponent E and modulus N")
	fs.BoolVar(&o.decrypt, "d", false, "decrypt CIPHERTEXT with exponent D and modulus N")
	fs.IntVar(&o.bits, "bits", 0, "modulus size in bits (default 1024)")
	fs.IntVar(&o.rounds, "rounds", 0, "Miller-Rabin rounds per candidate (default 10)")
	fs.StringVar(&o.exponent, "exponent", "", "public exponent in hex (default 10C69)")
	fs.StringVar(&o.profile, "config", "", "JSON key-generation profile")
	fs.BoolVar(&o.verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if o.version {
		fmt.Fprintln(stdout, rsacore.LibraryVersion())
		return exitOK
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	out, err := dispatch(ctx, o, fs.Args(), logger)
	if err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return exitUsage
		}
		logger.Error(ctx, "rsa failed", "error", err)
		return exitFail
	}
	fmt.Fprintln(stdout, out)
	return exitOK
}

func dispatch(ctx context.Context, o options, rest []string, logger logging.Logger) (string, error) {
	modes := 0
	for _, m := range []bool{o.keygen, o.encrypt, o.decrypt} {
		if m {
			modes++
		}
	}
	if modes != 1 {
		return "", errUsage
	}

	switch {
	case o.keygen:
		if len(rest) != 0 {
			return "", errUsage
		}
		return generate(ctx, o, logger)
	case o.encrypt:
		return transform(rest, func(x, exp, n *big.Int) (*big.Int, error) {
			return rsa.Encrypt(x, rsa.PublicKey{N: n, E: exp})
		})
	default:
		return transform(rest, func(x, exp, n *big.Int) (*big.Int, error) {
			return rsa.Decrypt(x, rsa.PrivateKey{N: n, D: exp})
		})
	}
}

func generate(ctx context.Context, o options, logger logging.Logger) (string, error) {
	bits := rsa.DefaultKeyBits
	var cfg rsacore.Config
	if o.profile != "" {
		p, err := cliconfig.LoadProfile(o.profile)
		if err != nil {
			return "", fmt.Errorf("load profile: %w", err)
		}
		if cfg, err = p.Config(); err != nil {
			return "", err
		}
		if p.Bits != 0 {
			bits = p.Bits
		}
	}
	if o.bits != 0 {
		bits = o.bits
	}
	if o.rounds != 0 {
		cfg.Rounds = o.rounds
	}
	if o.exponent != "" {
		e, err := hexnum.Parse(o.exponent)
		if err != nil {
			return "", fmt.Errorf("exponent: %w", err)
		}
		cfg.PublicExponent = e
	}
	cfg.Logger = logger

	key, err := rsa.GenerateKey(ctx, bits, cfg)
	if err != nil {
		return "", err
	}
	return hexnum.Format(key.N) + " " + hexnum.Format(key.E) + " " + hexnum.Format(key.D), nil
}

// transform parses "EXP N X" and applies op.
func transform(rest []string, op func(x, exp, n *big.Int) (*big.Int, error)) (string, error) {
	if len(rest) != 3 {
		return "", errUsage
	}
	var nums [3]*big.Int
	for i, s := range rest {
		v, err := hexnum.Parse(s)
		if err != nil {
			return "", err
		}
		nums[i] = v
	}
	r, err := op(nums[2], nums[0], nums[1])
	if err != nil {
		return "", err
	}
	return hexnum.Format(r), nil
}
