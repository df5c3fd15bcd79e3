//go:build debug

package brkalloc

import "fmt"

// assertTail panics unless off is the directory tail.
// Only enabled with -tags debug.
func assertTail(method string, off, tail int) {
	if off != tail {
		panic(fmt.Sprintf("%s: offset %d is not the tail %d", method, off, tail))
	}
}

// assertAligned panics if off is off the alignment boundary.
// Only enabled with -tags debug.
func assertAligned(method string, off int) {
	if off%Alignment != 0 {
		panic(fmt.Sprintf("%s: offset %d is not %d-byte aligned", method, off, Alignment))
	}
}
