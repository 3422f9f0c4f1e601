// Package parallel runs independent jobs on a bounded number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// For executes f(i) for i in [0, n) and returns once every call finished.
//
// Jobs are handed out one index at a time, so uneven job durations do not
// leave workers idle. Falls back to sequential execution, in index order,
// if parallelism is disabled or there is a single job or worker.
func For(n int, f func(i int), cfg Config) {
	workers := min(cfg.NumWorkers, n)
	if !cfg.Enabled || workers < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				f(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
