package brkalloc_test

import (
	"fmt"

	"github.com/dacapoday/brkalloc"
	"github.com/dacapoday/brkalloc/mem"
)

func Example() {
	region := mem.NewRegion(1 << 20)
	alloc := brkalloc.New(region)
	defer alloc.Close()

	p, _ := alloc.Malloc(11)
	copy(p, "hello world")
	fmt.Printf("%s\n", p)
	fmt.Printf("break: %d\n", region.Break())

	// freeing the trailing block returns its memory to the region
	alloc.Free(p)
	fmt.Printf("break: %d\n", region.Break())

	// Output:
	// hello world
	// break: 48
	// break: 0
}
