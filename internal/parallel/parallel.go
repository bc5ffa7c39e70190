// Package parallel partitions data-parallel grid work across worker
// goroutines.
//
// Grid cells are independent, so work is split along the outermost grid
// axis into contiguous chunks, one goroutine per chunk. Chunking keeps
// scheduling overhead negligible relative to per-cell evaluation cost and
// gives each worker a disjoint slice of the output buffer.
package parallel

import (
	"runtime"
	"sync"
)

// Chunks splits the index range [0, n) into at most workers contiguous
// chunks and runs fn on each chunk in its own goroutine, blocking until all
// complete. Chunk sizes differ by at most one unit.
//
// If workers is 0 or negative, GOMAXPROCS is used. With one worker (or
// n == 1) fn runs on the calling goroutine; results are identical either
// way since fn must only touch state owned by its range.
func Chunks(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	// Remainder split: the first n%workers chunks take one extra unit, so
	// sizes differ by at most one.
	size := n / workers
	rem := n % workers

	var wg sync.WaitGroup
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
		lo = hi
	}
	wg.Wait()
}
