//go:build !debug

package brkalloc

// assertTail is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertTail(string, int, int) {}

// assertAligned is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertAligned(string, int) {}
