//go:build !(linux || darwin)

package main

import (
	"errors"

	"github.com/dacapoday/brkalloc"
	"github.com/dacapoday/brkalloc/mem"
)

func newRegion(mmap bool, capacity int) (brkalloc.Region, error) {
	if mmap {
		return nil, errors.New("mmap region is not supported on this platform")
	}
	return mem.NewRegion(capacity), nil
}
