//go:build linux || darwin

// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package vmem

import (
	"unsafe"

	"github.com/dacapoday/brkalloc"
	"golang.org/x/sys/unix"
)

// Region is a virtual-memory implementation of the brkalloc.Region
// interface. The whole reservation is mapped up front, so the region grows
// without moving and every payload keeps its address. Shrinking releases
// the dropped pages back to the OS with MADV_DONTNEED; Close unmaps the
// reservation.
type Region struct {
	buf []byte // whole reservation
	brk int
}

var _ brkalloc.Region = new(Region)

// NewRegion reserves capacity bytes of address space, rounded up to the
// page size, and returns a Region growable within it.
func NewRegion(capacity int) (*Region, error) {
	page := unix.Getpagesize()
	capacity = (capacity + page - 1) &^ (page - 1)
	buf, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return &Region{buf: buf}, nil
}

// Break returns the current size of the region in bytes.
func (r *Region) Break() int { return r.brk }

// Grow extends the region by n bytes and returns the offset of the start
// of the new range. Growing past the reservation fails with ErrOutOfMemory.
func (r *Region) Grow(n int) (int, error) {
	if r.buf == nil {
		return 0, brkalloc.ErrClosed
	}
	if n < 0 || r.brk+n > len(r.buf) {
		return 0, brkalloc.ErrOutOfMemory
	}
	off := r.brk
	r.brk += n
	return off, nil
}

// Shrink contracts the region by n bytes from the end. The dropped bytes
// are zeroed and whole pages above the new break are returned to the OS.
func (r *Region) Shrink(n int) {
	end := r.brk
	r.brk -= n
	clear(r.buf[r.brk:end])

	page := unix.Getpagesize()
	lo := (r.brk + page - 1) &^ (page - 1)
	hi := (end + page - 1) &^ (page - 1)
	if lo < hi {
		// Advisory only; the pages read back as zero either way.
		unix.Madvise(r.buf[lo:hi], unix.MADV_DONTNEED)
	}
}

// Bytes returns the live bytes [off, off+n) of the region.
func (r *Region) Bytes(off, n int) []byte {
	return r.buf[off : off+n : off+n]
}

// Offset reports the offset of p's first byte within the live part of the
// region, or false if p is not backed by the region.
func (r *Region) Offset(p []byte) (int, bool) {
	if r.buf == nil || cap(p) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if addr < base || addr >= base+uintptr(r.brk) {
		return 0, false
	}
	return int(addr - base), true
}

// Close unmaps the reservation. The region cannot be grown again.
func (r *Region) Close() error {
	if r.buf == nil {
		return nil
	}
	buf := r.buf
	r.buf = nil
	r.brk = 0
	return unix.Munmap(buf)
}
