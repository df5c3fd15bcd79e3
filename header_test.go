package brkalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderLayout(t *testing.T) {
	require.Zero(t, HeaderSize%Alignment, "header must keep payloads aligned")

	h := header(make([]byte, HeaderSize))
	h.setSize(1234)
	h.setNext(-1)
	h.setFree(true)

	require.Equal(t, 1234, h.size())
	require.Equal(t, -1, h.next())
	require.True(t, h.free())

	h.setNext(4096)
	h.setFree(false)
	require.Equal(t, 4096, h.next())
	require.False(t, h.free())
}

func TestStride(t *testing.T) {
	require.Equal(t, HeaderSize+16, stride(1))
	require.Equal(t, HeaderSize+16, stride(16))
	require.Equal(t, HeaderSize+32, stride(17))

	for n := 1; n < 100; n++ {
		require.Zero(t, stride(n)%Alignment, "stride must stay aligned")
		require.GreaterOrEqual(t, stride(n), HeaderSize+n)
	}
}
