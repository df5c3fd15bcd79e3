//go:build linux || darwin

package main

import (
	"github.com/dacapoday/brkalloc"
	"github.com/dacapoday/brkalloc/mem"
	"github.com/dacapoday/brkalloc/vmem"
)

func newRegion(mmap bool, capacity int) (brkalloc.Region, error) {
	if mmap {
		return vmem.NewRegion(capacity)
	}
	return mem.NewRegion(capacity), nil
}
