// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package brkalloc

import "encoding/binary"

// Alignment is the boundary every header and payload offset is aligned to.
// The absolute address alignment of a payload follows the alignment of the
// region's base; an mmap-backed region starts page-aligned.
const Alignment = 16

// HeaderSize is the fixed stride between a header and its payload: the
// natural header size rounded up to a multiple of Alignment.
const HeaderSize = 32

// header is a HeaderSize-byte view into the region, immediately ahead of a
// payload. Layout, little-endian: payload size uint64, next header offset
// int64 (-1 when none), free flag byte, padding.
type header []byte

func (h header) size() int { return int(binary.LittleEndian.Uint64(h)) }

func (h header) setSize(n int) { binary.LittleEndian.PutUint64(h, uint64(n)) }

func (h header) next() int { return int(int64(binary.LittleEndian.Uint64(h[8:]))) }

func (h header) setNext(off int) { binary.LittleEndian.PutUint64(h[8:], uint64(int64(off))) }

func (h header) free() bool { return h[16] != 0 }

func (h header) setFree(free bool) {
	if free {
		h[16] = 1
	} else {
		h[16] = 0
	}
}

// stride is the number of region bytes a block of payload size n occupies:
// the header plus the payload rounded up to the alignment boundary.
// The region grows and shrinks in whole strides, which keeps every header
// and payload offset aligned.
func stride(n int) int {
	return HeaderSize + (n+Alignment-1)&^(Alignment-1)
}
