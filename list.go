// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package brkalloc

// list is the block directory: a singly linked list of headers threaded
// through the region in allocation order. head and tail are header
// offsets, -1 when the list is empty.
type list struct {
	region Region
	head   int
	tail   int
}

func (l *list) header(off int) header {
	return header(l.region.Bytes(off, HeaderSize))
}

// first returns the offset of the first free header with size >= n,
// scanning in allocation order, or -1 when no block fits.
func (l *list) first(n int) int {
	for off := l.head; off >= 0; off = l.header(off).next() {
		if h := l.header(off); h.free() && h.size() >= n {
			return off
		}
	}
	return -1
}

// push links the header at off after the current tail.
func (l *list) push(off int) {
	if l.tail < 0 {
		l.head = off
		l.tail = off
		return
	}
	l.header(l.tail).setNext(off)
	l.tail = off
}

// pop unlinks the header at off, which must be the current tail.
// The predecessor walk from head is O(n) in live blocks; it only runs
// when the trailing block is returned to the region.
func (l *list) pop(off int) {
	assertTail("list.pop", off, l.tail)
	if l.head == off {
		l.head = -1
		l.tail = -1
		return
	}
	prev := l.head
	for l.header(prev).next() != off {
		prev = l.header(prev).next()
	}
	l.header(prev).setNext(-1)
	l.tail = prev
}
