// Package internalcheck holds policy tests over the core packages.
//
// The tests load pkg/rsacore and its subpackages with golang.org/x/tools and
// fail on constructs the core must not contain: library shortcuts for
// exponentiation, inversion or primality, and hex formatting of values that
// may be secret. The package has no non-test code and is not meant to be
// imported.
package internalcheck
