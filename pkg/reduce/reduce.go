// Package reduce implements the modular reduction family: Barrett,
// Montgomery, Diminished-Radix and 2^k reductions (spec.md §4.F). Each has
// a setup phase (precomputation against a fixed modulus) and a Reduce phase
// applied repeatedly — the shape spec.md §3 calls a "context".
package reduce

import "github.com/oisee/mpint/pkg/mp"

// Reducer is the common interface every reduction context satisfies; it is
// what pkg/modexp dispatches against (spec.md §4.H step 1).
type Reducer interface {
	// Reduce sets z = x mod m, where m is the context's modulus, under the
	// context's precondition on x's range (documented per implementation).
	Reduce(z, x *mp.Int) error
	// Modulus returns the fixed modulus this context was set up against.
	Modulus() *mp.Int
}

func one() *mp.Int {
	o := mp.New()
	o.SetInt64(1)
	return o
}

func errInvalid(op string) error {
	return &mp.Error{Op: op, Kind: mp.InvalidInput}
}
