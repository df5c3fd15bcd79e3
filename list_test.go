package brkalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// testRegion is a minimal Region over a fixed buffer.
type testRegion struct {
	buf []byte
	brk int
}

var _ Region = new(testRegion)

func (r *testRegion) Break() int { return r.brk }

func (r *testRegion) Grow(n int) (int, error) {
	if n < 0 || r.brk+n > len(r.buf) {
		return 0, ErrOutOfMemory
	}
	off := r.brk
	r.brk += n
	return off, nil
}

func (r *testRegion) Shrink(n int) { r.brk -= n }

func (r *testRegion) Bytes(off, n int) []byte { return r.buf[off : off+n : off+n] }

func (r *testRegion) Offset(p []byte) (int, bool) {
	if cap(p) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if addr < base || addr >= base+uintptr(r.brk) {
		return 0, false
	}
	return int(addr - base), true
}

func (r *testRegion) Close() error {
	r.buf = nil
	r.brk = 0
	return nil
}

func newTestList(t *testing.T, capacity int) *list {
	t.Helper()
	region := &testRegion{buf: make([]byte, capacity)}
	return &list{region: region, head: -1, tail: -1}
}

// grow appends a fresh block of payload size n and returns its header offset.
func grow(t *testing.T, l *list, n int) int {
	t.Helper()
	off, err := l.region.Grow(stride(n))
	require.NoError(t, err, "region.Grow")
	h := l.header(off)
	h.setSize(n)
	h.setNext(-1)
	h.setFree(false)
	l.push(off)
	return off
}

func TestListEmpty(t *testing.T) {
	l := newTestList(t, 1024)
	require.Equal(t, -1, l.head)
	require.Equal(t, -1, l.tail)
	require.Equal(t, -1, l.first(1))
}

func TestListPush(t *testing.T) {
	l := newTestList(t, 1024)

	a := grow(t, l, 64)
	require.Equal(t, a, l.head)
	require.Equal(t, a, l.tail)

	b := grow(t, l, 32)
	c := grow(t, l, 16)
	require.Equal(t, a, l.head)
	require.Equal(t, c, l.tail)
	require.Equal(t, b, l.header(a).next())
	require.Equal(t, c, l.header(b).next())
	require.Equal(t, -1, l.header(c).next())
}

func TestListFirstFit(t *testing.T) {
	l := newTestList(t, 1024)

	a := grow(t, l, 64)
	b := grow(t, l, 32)
	c := grow(t, l, 64)
	require.Equal(t, a, l.head)

	// nothing free yet
	require.Equal(t, -1, l.first(1))

	l.header(b).setFree(true)
	l.header(c).setFree(true)

	// first fit scans in allocation order and skips blocks too small
	require.Equal(t, b, l.first(16))
	require.Equal(t, b, l.first(32))
	require.Equal(t, c, l.first(33))
	require.Equal(t, -1, l.first(65))

	// an in-use block is never a candidate
	l.header(b).setFree(false)
	require.Equal(t, c, l.first(16))
}

func TestListPop(t *testing.T) {
	l := newTestList(t, 1024)

	a := grow(t, l, 64)
	b := grow(t, l, 32)
	c := grow(t, l, 16)

	l.pop(c)
	require.Equal(t, b, l.tail)
	require.Equal(t, -1, l.header(b).next())

	l.pop(b)
	require.Equal(t, a, l.tail)
	require.Equal(t, a, l.head)

	l.pop(a)
	require.Equal(t, -1, l.head)
	require.Equal(t, -1, l.tail)
}
