package parallel

import (
	"sort"
	"sync"
	"testing"
)

func TestChunks_CoversEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"even split", 16, 4},
		{"uneven split", 10, 4},
		{"more workers than work", 3, 8},
		{"single worker", 9, 1},
		{"gomaxprocs default", 25, 0},
		{"negative workers", 7, -1},
		{"single unit", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits := make([]int, tt.n)
			Chunks(tt.n, tt.workers, func(lo, hi int) {
				// Chunks are disjoint, so no locking is needed.
				for i := lo; i < hi; i++ {
					visits[i]++
				}
			})
			for i, v := range visits {
				if v != 1 {
					t.Errorf("index %d visited %d times, want 1", i, v)
				}
			}
		})
	}
}

func TestChunks_RangesAreContiguousAndBalanced(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"remainder two", 22, 5},
		{"remainder one", 7, 3},
		{"remainder near full", 11, 4},
		{"no remainder", 16, 4},
		{"one unit each", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				mu     sync.Mutex
				ranges [][2]int
			)
			Chunks(tt.n, tt.workers, func(lo, hi int) {
				mu.Lock()
				ranges = append(ranges, [2]int{lo, hi})
				mu.Unlock()
			})

			sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })

			next := 0
			minSize, maxSize := tt.n, 0
			for _, r := range ranges {
				if r[0] != next {
					t.Fatalf("ranges not contiguous: got start %d, want %d", r[0], next)
				}
				size := r[1] - r[0]
				if size < minSize {
					minSize = size
				}
				if size > maxSize {
					maxSize = size
				}
				next = r[1]
			}
			if next != tt.n {
				t.Fatalf("ranges end at %d, want %d", next, tt.n)
			}
			if maxSize-minSize > 1 {
				t.Errorf("chunk sizes differ by more than one: min %d, max %d", minSize, maxSize)
			}
		})
	}
}

func TestChunks_NoWork(t *testing.T) {
	called := false
	Chunks(0, 4, func(lo, hi int) { called = true })
	if called {
		t.Error("fn invoked for n = 0")
	}
}
