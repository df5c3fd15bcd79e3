// brkbench exercises a brkalloc.Allocator with a randomized
// malloc/realloc/free workload and reports break movement.
//
// Usage:
//
//	brkbench                  # in-memory region, default workload
//	brkbench -n 100000        # number of operations
//	brkbench -max 4096        # largest request size
//	brkbench -seed 7          # workload seed
//	brkbench -mmap            # anonymous-mapping region (linux/darwin)
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dacapoday/brkalloc"
)

func main() {
	opsFlag := flag.Int("n", 100000, "number of operations")
	maxFlag := flag.Int("max", 4096, "largest request size in bytes")
	seedFlag := flag.Uint64("seed", 1, "workload seed")
	capFlag := flag.Int("cap", 1<<28, "region reservation in bytes")
	mmapFlag := flag.Bool("mmap", false, "use an anonymous-mapping region")
	flag.Parse()

	region, err := newRegion(*mmapFlag, *capFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	alloc := brkalloc.New(region)
	defer alloc.Close()

	rng := rand.New(rand.NewPCG(*seedFlag, 0))
	live := make([][]byte, 0, 1024)
	peak, failed := 0, 0

	start := time.Now()
	for i := 0; i < *opsFlag; i++ {
		switch {
		case len(live) == 0 || rng.IntN(3) > 0:
			p, err := alloc.Malloc(1 + rng.IntN(*maxFlag))
			if err != nil {
				failed++
				continue
			}
			live = append(live, p)
		case rng.IntN(4) == 0:
			j := rng.IntN(len(live))
			p, err := alloc.Realloc(live[j], 1+rng.IntN(*maxFlag))
			if err != nil {
				failed++
				continue
			}
			live[j] = p
		default:
			j := rng.IntN(len(live))
			alloc.Free(live[j])
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		}
		if brk := region.Break(); brk > peak {
			peak = brk
		}
	}
	for _, p := range live {
		alloc.Free(p)
	}
	elapsed := time.Since(start)

	fmt.Printf("ops:    %d in %v (%d failed)\n", *opsFlag, elapsed, failed)
	fmt.Printf("peak:   %d bytes\n", peak)
	fmt.Printf("break:  %d bytes\n", region.Break())
	fmt.Printf("blocks: %d\n", alloc.Blocks())
}
