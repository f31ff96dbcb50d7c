// Package parallel provides CPU-bound work splitting for the estimation
// loops. The kriging location loop is embarrassingly parallel once a variable
// is fitted: each location writes to a disjoint output index and reads only
// the immutable fitted state, so the loop can be partitioned freely.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across up to runtime.NumCPU() workers and calls
// fn with the half-open range [start, end) each worker owns.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item lands in exactly one chunk.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below
// threshold, in parallel otherwise. Small kriging domains are cheaper to
// traverse on one goroutine than to fan out.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ForEachIndex applies fn to every element of indices, partitioning the slice
// across workers. Used for path-ordered location traversal: the path fixes
// which locations are visited, the partitioning only decides by whom.
func ForEachIndex(indices []int, fn func(idx int)) {
	Parallelize(len(indices), func(start, end int) {
		for _, idx := range indices[start:end] {
			fn(idx)
		}
	})
}
