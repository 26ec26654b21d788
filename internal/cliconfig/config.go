// Package cliconfig loads key-generation profiles for the rsa command.
package cliconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bob11/textbook-rsa/internal/hexnum"
	"github.com/bob11/textbook-rsa/pkg/rsacore"
)

// Profile is the on-disk form of a key-generation setup. Zero fields fall
// back to library defaults.
type Profile struct {
	Bits           int    `json:"bits"`
	Rounds         int    `json:"rounds"`
	PublicExponent string `json:"public_exponent"`
	MaxAttempts    int    `json:"max_attempts"`
}

// LoadProfile reads and validates a JSON profile.
func LoadProfile(path string) (*Profile, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var p Profile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if err := ValidateProfile(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}

// ValidateProfile performs sanity checks without touching the filesystem.
func ValidateProfile(p *Profile) error {
	if p == nil {
		return errors.New("nil profile")
	}
	if p.Bits < 0 || p.Rounds < 0 || p.MaxAttempts < 0 {
		return errors.New("bits, rounds and max_attempts must not be negative")
	}
	if p.PublicExponent != "" {
		if _, err := hexnum.Parse(p.PublicExponent); err != nil {
			return fmt.Errorf("public_exponent: %w", err)
		}
	}
	cfg, err := p.Config()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// Config converts p into an rsacore.Config. Random and Logger are left for
// the caller to fill.
func (p *Profile) Config() (rsacore.Config, error) {
	cfg := rsacore.Config{
		Rounds:      p.Rounds,
		MaxAttempts: p.MaxAttempts,
	}
	if p.PublicExponent != "" {
		e, err := hexnum.Parse(p.PublicExponent)
		if err != nil {
			return rsacore.Config{}, fmt.Errorf("public_exponent: %w", err)
		}
		cfg.PublicExponent = e
	}
	return cfg, nil
}
