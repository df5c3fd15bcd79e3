// Package mem provides an in-memory implementation of the brkalloc.Region
// interface.
package mem

import (
	"unsafe"

	"github.com/dacapoday/brkalloc"
)

// DefaultCapacity is the reservation used by a zero-value Region.
const DefaultCapacity = 1 << 26

// Region is an in-memory implementation of the brkalloc.Region interface.
// The whole reservation is allocated up front as a single fixed-capacity
// buffer, so payloads never move while the region grows and shrinks.
//
// Region requires no initialization - just declare and use:
//
//	var r mem.Region
//	alloc := brkalloc.New(&r)
type Region struct {
	buf    []byte // len is the break, cap the reservation
	closed bool
}

var _ brkalloc.Region = new(Region)

// NewRegion returns a Region able to grow up to capacity bytes.
func NewRegion(capacity int) *Region {
	return &Region{buf: make([]byte, 0, capacity)}
}

// Break returns the current size of the region in bytes.
func (r *Region) Break() int { return len(r.buf) }

// Grow extends the region by n bytes and returns the offset of the start
// of the new range. Growing past the reservation fails with ErrOutOfMemory.
func (r *Region) Grow(n int) (int, error) {
	if r.closed {
		return 0, brkalloc.ErrClosed
	}
	if r.buf == nil {
		r.buf = make([]byte, 0, DefaultCapacity)
	}
	off := len(r.buf)
	if n < 0 || off+n > cap(r.buf) {
		return 0, brkalloc.ErrOutOfMemory
	}
	r.buf = r.buf[:off+n]
	return off, nil
}

// Shrink contracts the region by n bytes from the end. The dropped bytes
// are zeroed so a later Grow hands out fresh memory, as the OS would.
func (r *Region) Shrink(n int) {
	end := len(r.buf)
	clear(r.buf[end-n : end])
	r.buf = r.buf[:end-n]
}

// Bytes returns the live bytes [off, off+n) of the region.
func (r *Region) Bytes(off, n int) []byte {
	return r.buf[off : off+n : off+n]
}

// Offset reports the offset of p's first byte within the live part of the
// region, or false if p is not backed by the region.
func (r *Region) Offset(p []byte) (int, bool) {
	if cap(r.buf) == 0 || cap(p) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if addr < base || addr >= base+uintptr(len(r.buf)) {
		return 0, false
	}
	return int(addr - base), true
}

// Close releases the buffer. The region cannot be grown again.
func (r *Region) Close() error {
	r.buf = nil
	r.closed = true
	return nil
}
