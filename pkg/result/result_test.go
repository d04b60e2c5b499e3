package result

import (
	"path/filepath"
	"testing"

	"github.com/oisee/mpint/pkg/mp"
)

func mustInt64(v int64) *mp.Int {
	z := mp.New()
	z.SetInt64(v)
	return z
}

func TestTableAddAndSort(t *testing.T) {
	tbl := NewTable()
	tbl.Add(Hit{Value: mustInt64(97), Bits: 7, Rounds: 8})
	tbl.Add(Hit{Value: mustInt64(2), Bits: 2, Rounds: 8})
	tbl.Add(Hit{Value: mustInt64(31), Bits: 5, Rounds: 8})

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	hits := tbl.Hits()
	for i := 1; i < len(hits); i++ {
		if hits[i-1].Bits > hits[i].Bits {
			t.Fatal("hits not sorted by bit length")
		}
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	ckpt := &Checkpoint{
		Hits: []Hit{
			{Value: mustInt64(97), Bits: 7, Rounds: 8},
			{Value: mustInt64(101), Bits: 7, Rounds: 8},
		},
		LastChecked: mustInt64(200),
		RangeEnd:    mustInt64(1000),
	}

	path := filepath.Join(t.TempDir(), "checkpoint.gob")
	if err := SaveCheckpoint(path, ckpt); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Hits) != 2 {
		t.Fatalf("loaded %d hits, want 2", len(loaded.Hits))
	}
	if mp.Cmp(loaded.LastChecked, ckpt.LastChecked) != mp.Equal {
		t.Fatal("LastChecked did not round-trip")
	}
	if mp.Cmp(loaded.RangeEnd, ckpt.RangeEnd) != mp.Equal {
		t.Fatal("RangeEnd did not round-trip")
	}
	for i, h := range loaded.Hits {
		if mp.Cmp(h.Value, ckpt.Hits[i].Value) != mp.Equal {
			t.Fatalf("hit %d value did not round-trip", i)
		}
	}
}
