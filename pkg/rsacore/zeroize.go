package rsacore

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}

// ZeroizeInt clears the limbs backing x and sets it to zero. Earlier copies
// made by math/big during arithmetic are out of reach; this only scrubs the
// value the caller still holds. Nil is ignored.
func ZeroizeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
	runtime.KeepAlive(words)
}

// ZeroizeInts calls ZeroizeInt on each argument.
func ZeroizeInts(xs ...*big.Int) {
	for _, x := range xs {
		ZeroizeInt(x)
	}
}
