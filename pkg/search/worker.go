// Package search parallelizes prime discovery across a worker pool, adapted
// from the teacher's sequence-search worker pool (pkg/search/worker.go) to
// shard a numeric range across goroutines instead of an instruction-sequence
// space.
package search

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/mpint/pkg/mp"
	"github.com/oisee/mpint/pkg/prime"
	"github.com/oisee/mpint/pkg/result"
)

// WorkerPool manages parallel range-scan workers.
type WorkerPool struct {
	NumWorkers int
	Results    *result.Table
	checked    atomic.Int64
	found      atomic.Int64
	completed  atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers: numWorkers,
		Results:    result.NewTable(),
	}
}

// ScanTask represents a contiguous odd-candidate sub-range [Start, End) to
// test for primality.
type ScanTask struct {
	Start  *mp.Int
	End    *mp.Int
	Rounds int
}

// Stats returns search statistics.
func (wp *WorkerPool) Stats() (checked, found int64) {
	return wp.checked.Load(), wp.found.Load()
}

// RunTasks distributes scan tasks across workers, reporting progress on a
// ticker the same way the teacher's RunTasks does.
func (wp *WorkerPool) RunTasks(tasks []ScanTask, verbose bool) {
	totalTasks := int64(len(tasks))

	ch := make(chan ScanTask, len(tasks))
	for _, t := range tasks {
		ch <- t
	}
	close(ch)

	done := make(chan struct{})
	startTime := time.Now()
	if verbose {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			var lastChecked int64
			lastTime := startTime
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					now := time.Now()
					comp := wp.completed.Load()
					checked := wp.checked.Load()
					found := wp.found.Load()
					dt := now.Sub(lastTime).Seconds()
					dc := checked - lastChecked
					rate := float64(dc) / dt
					lastChecked, lastTime = checked, now

					pct := float64(comp) / float64(totalTasks) * 100
					fmt.Printf("  [%s] %d/%d ranges (%.1f%%) | %d found | %.1fK checks/s\n",
						now.Sub(startTime).Round(time.Second), comp, totalTasks, pct, found, rate/1e3)
				}
			}
		}()
	}

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range ch {
				wp.processTask(task)
				wp.completed.Add(1)
			}
		}()
	}
	wg.Wait()
	close(done)
}

// processTask scans odd candidates in [task.Start, task.End) for primality.
func (wp *WorkerPool) processTask(task ScanTask) {
	c := mp.New()
	c.CopyFrom(task.Start)
	if lsb, _ := mp.Bit(c, 0); lsb == 0 {
		mp.Add(c, c, oneWord())
	}
	for mp.CmpMag(c, task.End) == mp.Less {
		wp.checked.Add(1)
		v, err := prime.IsPrime(c, task.Rounds, nil)
		if err == nil && v == prime.ProbablyPrime {
			wp.found.Add(1)
			wp.Results.Add(result.Hit{
				Value:  mp.NewCopy(c),
				Bits:   mp.BitLen(c),
				Rounds: task.Rounds,
			})
		}
		mp.Add(c, c, twoWord())
	}
}

func oneWord() *mp.Int {
	o := mp.New()
	o.SetInt64(1)
	return o
}

func twoWord() *mp.Int {
	o := mp.New()
	o.SetInt64(2)
	return o
}
