// Package hexnum converts between big integers and the hexadecimal text used
// on the rsa command line: uppercase, no prefix, no leading zeros.
package hexnum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrSyntax is returned for text that is not a non-negative hex number.
var ErrSyntax = errors.New("hexnum: invalid hexadecimal number")

// Parse reads a non-negative hexadecimal number. An optional 0x or 0X prefix
// is accepted and case is ignored.
func Parse(s string) (*big.Int, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	if t == "" || strings.HasPrefix(t, "-") || strings.HasPrefix(t, "+") {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	v, ok := new(big.Int).SetString(t, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return v, nil
}

// Format renders x as uppercase hexadecimal. Negative values keep their sign.
func Format(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return strings.ToUpper(x.Text(16))
}
