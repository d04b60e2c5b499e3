package search

import (
	"testing"

	"github.com/oisee/mpint/pkg/mp"
)

func mustInt64(v int64) *mp.Int {
	z := mp.New()
	z.SetInt64(v)
	return z
}

func TestRunFindsKnownPrimesInRange(t *testing.T) {
	tbl := Run(Config{
		Start:      mustInt64(100),
		End:        mustInt64(130),
		Rounds:     8,
		NumWorkers: 2,
	})

	found := make(map[int64]bool)
	for _, h := range tbl.Hits() {
		found[h.Value.Int64()] = true
	}
	// primes in [100,130): 101,103,107,109,113,127
	for _, p := range []int64{101, 103, 107, 109, 113, 127} {
		if !found[p] {
			t.Fatalf("expected to find prime %d in range, hits=%v", p, found)
		}
	}
	for v := range found {
		if v < 100 || v >= 130 {
			t.Fatalf("found out-of-range value %d", v)
		}
	}
}

func TestShardCoversWholeRange(t *testing.T) {
	tasks := shard(mustInt64(0), mustInt64(1000), 4, 8)
	if len(tasks) == 0 {
		t.Fatal("expected at least one task")
	}
	if mp.Cmp(tasks[0].Start, mustInt64(0)) != mp.Equal {
		t.Fatal("first task should start at range start")
	}
	if mp.Cmp(tasks[len(tasks)-1].End, mustInt64(1000)) != mp.Equal {
		t.Fatal("last task should end at range end")
	}
	for i := 1; i < len(tasks); i++ {
		if mp.Cmp(tasks[i].Start, tasks[i-1].End) != mp.Equal {
			t.Fatal("tasks should be contiguous")
		}
	}
}
