package search

import (
	"runtime"

	"github.com/oisee/mpint/pkg/mp"
	"github.com/oisee/mpint/pkg/result"
)

// Config holds range-scan configuration.
type Config struct {
	Start      *mp.Int
	End        *mp.Int
	Rounds     int  // Miller-Rabin rounds passed to IsPrime per candidate
	NumWorkers int  // defaults to NumCPU
	Verbose    bool // print progress
}

// Run shards [cfg.Start, cfg.End) into one sub-range per worker and scans
// each for primes, mirroring the teacher's Run (pkg/search/search.go).
func Run(cfg Config) *result.Table {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}

	pool := NewWorkerPool(cfg.NumWorkers)
	tasks := shard(cfg.Start, cfg.End, cfg.NumWorkers, cfg.Rounds)
	pool.RunTasks(tasks, cfg.Verbose)
	return pool.Results
}

// shard splits [start, end) into n contiguous sub-ranges.
func shard(start, end *mp.Int, n, rounds int) []ScanTask {
	span := mp.New()
	mp.Sub(span, end, start)
	chunk := mp.New()
	if err := mp.Div(chunk, nil, span, sizeInt(n)); err != nil || chunk.IsZero() {
		chunk.SetInt64(1)
	}

	var tasks []ScanTask
	cur := mp.NewCopy(start)
	for i := 0; i < n; i++ {
		next := mp.New()
		if i == n-1 {
			next.CopyFrom(end)
		} else {
			mp.Add(next, cur, chunk)
			if mp.CmpMag(next, end) == mp.Greater {
				next.CopyFrom(end)
			}
		}
		tasks = append(tasks, ScanTask{Start: mp.NewCopy(cur), End: next, Rounds: rounds})
		cur = next
		if mp.CmpMag(cur, end) != mp.Less {
			break
		}
	}
	return tasks
}

func sizeInt(n int) *mp.Int {
	z := mp.New()
	z.SetInt64(int64(n))
	return z
}
