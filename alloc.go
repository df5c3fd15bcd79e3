// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package brkalloc

import (
	"fmt"
	"sync"
)

// Allocator services Malloc, Calloc, Realloc and Free from a Region.
//
// One mutex guards the region, the block directory and the break as a
// single unit; every operation holds it for its full duration. The lock is
// not reentrant: calling back into the Allocator from code running under
// it deadlocks.
type Allocator struct {
	mutex  sync.Mutex
	region Region
	blocks list
}

// New returns an Allocator carving blocks out of region. The region must
// be empty (Break() == 0) and must not be mutated directly while the
// Allocator owns it.
func New(region Region) *Allocator {
	return &Allocator{
		region: region,
		blocks: list{region: region, head: -1, tail: -1},
	}
}

// Malloc allocates size bytes and returns the payload, aligned to
// Alignment. The first free block large enough is reused without
// shrinking; otherwise the region grows by one block. A size of zero or
// less fails with ErrInvalidSize.
func (a *Allocator) Malloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.malloc(size)
}

func (a *Allocator) malloc(size int) ([]byte, error) {
	if off := a.blocks.first(size); off >= 0 {
		a.blocks.header(off).setFree(false)
		return a.region.Bytes(off+HeaderSize, size), nil
	}

	off, err := a.region.Grow(stride(size))
	if err != nil {
		return nil, fmt.Errorf("malloc: %w", err)
	}
	assertAligned("malloc", off)

	h := a.blocks.header(off)
	h.setSize(size)
	h.setNext(-1)
	h.setFree(false)
	a.blocks.push(off)
	return a.region.Bytes(off+HeaderSize, size), nil
}

// Calloc allocates count*elemSize bytes and returns the payload with every
// byte zeroed. A multiplication overflow fails with ErrOverflow before
// anything is allocated.
func (a *Allocator) Calloc(count, elemSize int) ([]byte, error) {
	if count <= 0 || elemSize <= 0 {
		return nil, ErrInvalidSize
	}
	total := count * elemSize
	if total/count != elemSize {
		return nil, ErrOverflow
	}

	a.mutex.Lock()
	p, err := a.malloc(total)
	a.mutex.Unlock()
	if err != nil {
		return nil, err
	}

	// The payload is not reachable by any other caller yet, so the fill
	// needs no lock.
	clear(p)
	return p, nil
}

// Realloc resizes the payload p to size bytes. A nil p behaves exactly as
// Malloc(size), including the ErrInvalidSize failure for size <= 0. When
// the block already holds size bytes the same address is returned and the
// region does not grow; otherwise the contents move to a fresh block and
// the old one is freed. On failure the old block is left intact.
func (a *Allocator) Realloc(p []byte, size int) ([]byte, error) {
	if p == nil {
		return a.Malloc(size)
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	off := a.payload(p)
	h := a.blocks.header(off)
	if h.size() >= size {
		return a.region.Bytes(off+HeaderSize, size), nil
	}

	q, err := a.malloc(size)
	if err != nil {
		return nil, err
	}
	copy(q, a.region.Bytes(off+HeaderSize, h.size()))
	a.free(off)
	return q, nil
}

// Free releases the payload p. Freeing nil is a no-op. The trailing block
// is returned to the region; any other block stays in the directory and is
// marked free for reuse. At most one block is returned per call, even when
// the new trailing block is also free. Freeing a slice that is not a live
// payload of this Allocator panics.
func (a *Allocator) Free(p []byte) {
	if p == nil {
		return
	}
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.free(a.payload(p))
}

func (a *Allocator) free(off int) {
	h := a.blocks.header(off)
	if off+stride(h.size()) == a.region.Break() {
		a.blocks.pop(off)
		a.region.Shrink(stride(h.size()))
		return
	}
	h.setFree(true)
}

// payload recovers the header offset of a live payload slice.
func (a *Allocator) payload(p []byte) int {
	off, ok := a.region.Offset(p)
	if !ok || off < HeaderSize {
		panic("brkalloc: not a payload of this region")
	}
	return off - HeaderSize
}

// Blocks returns the number of blocks in the directory, free or in use.
func (a *Allocator) Blocks() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	n := 0
	for off := a.blocks.head; off >= 0; off = a.blocks.header(off).next() {
		n++
	}
	return n
}

// Close releases the region. Later allocations fail with ErrClosed.
func (a *Allocator) Close() error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.blocks.head = -1
	a.blocks.tail = -1
	return a.region.Close()
}
