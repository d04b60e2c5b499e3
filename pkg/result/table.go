// Package result stores and checkpoints the primes a pkg/search run finds,
// adapted from the teacher's optimization-rule table to hold prime hits
// instead.
package result

import (
	"sort"
	"sync"

	"github.com/oisee/mpint/pkg/mp"
)

// Hit records one prime found during a search run.
type Hit struct {
	Value  *mp.Int
	Bits   int
	Rounds int // Miller-Rabin rounds (t) used to certify it
}

// Table stores discovered prime hits.
type Table struct {
	mu   sync.Mutex
	hits []Hit
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a hit into the table.
func (t *Table) Add(h Hit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hits = append(t.hits, h)
}

// Hits returns a copy of all hits, sorted by bit length ascending.
func (t *Table) Hits() []Hit {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Hit, len(t.hits))
	copy(out, t.hits)
	sort.Slice(out, func(i, j int) bool { return out[i].Bits < out[j].Bits })
	return out
}

// Len returns the number of hits.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.hits)
}
