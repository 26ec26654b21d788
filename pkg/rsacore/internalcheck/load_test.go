package internalcheck

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const corePattern = "github.com/bob11/textbook-rsa/pkg/rsacore/..."

func loadCore(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, corePattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %s", corePattern)
	}
	var errs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
	})
	if len(errs) > 0 {
		t.Fatalf("package errors:\n%s", strings.Join(errs, "\n"))
	}
	return pkgs
}
