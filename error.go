package brkalloc

import "errors"

var (
	ErrClosed      = errors.New("closed")
	ErrInvalidSize = errors.New("invalid size")
	ErrOverflow    = errors.New("size overflow")
	ErrOutOfMemory = errors.New("out of memory")
)
