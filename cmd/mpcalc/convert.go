package main

import (
	"fmt"
	"math/big"

	"github.com/oisee/mpint/pkg/mp"
)

// parseArg turns a decimal command-line argument into an *mp.Int. Decimal
// parsing is deliberately kept out of pkg/mp (radix-conversion I/O is an
// external-collaborator concern, spec.md §1) — this is the one place in the
// whole module that needs it, so it leans on math/big rather than growing a
// parser inside the core.
func parseArg(s string) (*mp.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", s)
	}
	return fromBig(b), nil
}

// formatInt renders z as a decimal string via the same big.Int bridge.
func formatInt(z *mp.Int) string {
	return toBig(z).String()
}

func toBig(x *mp.Int) *big.Int {
	r := new(big.Int)
	bl := mp.BitLen(x)
	for i := bl - 1; i >= 0; i-- {
		r.Lsh(r, 1)
		bit, _ := mp.Bit(x, i)
		if bit == 1 {
			r.Or(r, big.NewInt(1))
		}
	}
	if x.SignOf() == mp.Negative {
		r.Neg(r)
	}
	return r
}

func fromBig(b *big.Int) *mp.Int {
	z := mp.New()
	neg := b.Sign() < 0
	abs := new(big.Int).Abs(b)
	bl := abs.BitLen()
	for i := bl - 1; i >= 0; i-- {
		mp.ShiftLeftBits(z, z, 1)
		if abs.Bit(i) == 1 {
			mp.SetBit(z, z, 0, 1)
		}
	}
	if neg {
		z.SetSign(mp.Negative)
	}
	return z
}
