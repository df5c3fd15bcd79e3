// Package brkalloc implements a dynamic memory allocator over a single
// growable region, in the manner of a classic sbrk-backed malloc.
//
// An Allocator services Malloc, Calloc, Realloc and Free from blocks carved
// out of a Region. Every block is prefixed by a header recording its size
// and free state; freed blocks are reused first-fit, and only the trailing
// block is ever returned to the region.
package brkalloc

// Region is the growable memory range an Allocator carves blocks from -
// the analogue of the process break in an sbrk allocator.
//
// A Region is not synchronized on its own; the Allocator's lock serializes
// every call it makes.
//
// The mem and vmem packages provide implementations.
type Region interface {
	// Break returns the current size of the region in bytes.
	Break() int

	// Grow extends the region by exactly n bytes and returns the offset
	// of the start of the new range. It fails with ErrOutOfMemory when
	// the backing store cannot satisfy the request.
	Grow(n int) (int, error)

	// Shrink contracts the region by exactly n bytes from the end.
	// n must not exceed Break().
	Shrink(n int)

	// Bytes returns the live bytes [off, off+n) of the region. The
	// returned slice stays valid across Grow and Shrink as long as the
	// range itself stays within the region.
	Bytes(off, n int) []byte

	// Offset reports the offset of p's first byte within the live part
	// of the region, or false if p is not backed by the region.
	Offset(p []byte) (int, bool)

	// Close releases the backing store.
	Close() error
}
