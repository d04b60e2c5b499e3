// Package modexp implements modular exponentiation: a sliding-window ladder
// that dispatches to pkg/reduce for the actual reduction work (spec.md §4.H).
package modexp

import (
	"github.com/oisee/mpint/pkg/mp"
	"github.com/oisee/mpint/pkg/reduce"
)

// windowSize picks the sliding-window width from the exponent's bit length,
// following the breakpoints spec.md §4.H step 2 lists. The window caps at 7
// for the sizes this table covers and steps to 8 only far beyond any
// practical RSA/DH modulus.
func windowSize(bits int) int {
	switch {
	case bits <= 7:
		return 2
	case bits <= 23:
		return 3
	case bits <= 69:
		return 4
	case bits <= 196:
		return 5
	case bits <= 539:
		return 6
	case bits <= 1305:
		return 7
	case bits <= 3529:
		return 7
	default:
		return 8
	}
}

func errInvalid(op string) error {
	return &mp.Error{Op: op, Kind: mp.InvalidInput}
}

// pickReducer chooses among Montgomery/DR/2^k/2^k-large/Barrett per
// spec.md §4.H step 1: Montgomery whenever P is odd, else the cheapest
// special-form reduction P qualifies for, else Barrett as the fallback that
// always applies.
func pickReducer(p *mp.Int) (reduce.Reducer, error) {
	if lsb, _ := mp.Bit(p, 0); lsb == 1 {
		return reduce.NewMontgomery(p)
	}
	if reduce.IsDRModulus(p) {
		return reduce.NewDR(p)
	}
	if reduce.Is2k(p) {
		return reduce.NewPow2(p)
	}
	if reduce.Is2kLarge(p) {
		return reduce.NewPow2Large(p)
	}
	return reduce.NewBarrett(p)
}

// ExptMod sets z = g^x mod p. Negative x is rejected with InvalidInput
// (spec.md §4.H step 5's optional inverse extension is not implemented).
func ExptMod(z, g, x, p *mp.Int) error {
	if x.SignOf() == mp.Negative {
		return errInvalid("modexp.ExptMod")
	}
	if p.IsZero() || p.SignOf() == mp.Negative {
		return errInvalid("modexp.ExptMod")
	}

	if p.Used() == 1 && p.LimbAt(0) == 1 {
		z.SetInt64(0)
		return nil
	}
	if x.IsZero() {
		z.SetInt64(1)
		return mp.Mod(z, z, p)
	}

	red, err := pickReducer(p)
	if err != nil {
		return err
	}
	mont, isMontgomery := red.(*reduce.Montgomery)

	gr := mp.New()
	if err := mp.Mod(gr, g, p); err != nil {
		return err
	}

	if isMontgomery {
		r := mp.New()
		mont.Normalize(r)
		mp.Mul(gr, gr, r)
		if err := mp.Mod(gr, gr, p); err != nil {
			return err
		}
	}

	w := windowSize(mp.BitLen(x))
	tableSize := 1 << (w - 1)
	table := make([]*mp.Int, tableSize)
	table[0] = mp.NewCopy(gr)

	gSquared := mp.New()
	mp.Mul(gSquared, gr, gr)
	if err := red.Reduce(gSquared, gSquared); err != nil {
		return err
	}
	for i := 1; i < tableSize; i++ {
		t := mp.New()
		mp.Mul(t, table[i-1], gSquared)
		if err := red.Reduce(t, t); err != nil {
			return err
		}
		table[i] = t
	}

	result := mp.New()
	if isMontgomery {
		mont.Normalize(result)
	} else {
		result.SetInt64(1)
	}

	bitLen := mp.BitLen(x)
	for i := bitLen - 1; i >= 0; {
		bit, _ := mp.Bit(x, i)
		if bit == 0 {
			mp.Mul(result, result, result)
			if err := red.Reduce(result, result); err != nil {
				return err
			}
			i--
			continue
		}

		wlen := w
		if i+1 < wlen {
			wlen = i + 1
		}
		for wlen > 1 {
			lowBit, _ := mp.Bit(x, i-wlen+1)
			if lowBit == 1 {
				break
			}
			wlen--
		}

		value := 0
		for k := 0; k < wlen; k++ {
			mp.Mul(result, result, result)
			if err := red.Reduce(result, result); err != nil {
				return err
			}
			b, _ := mp.Bit(x, i-k)
			value = (value << 1) | int(b)
		}
		idx := (value - 1) / 2
		mp.Mul(result, result, table[idx])
		if err := red.Reduce(result, result); err != nil {
			return err
		}
		i -= wlen
	}

	if isMontgomery {
		final := mp.New()
		if err := red.Reduce(final, result); err != nil {
			return err
		}
		mp.Exchange(z, final)
	} else {
		mp.Exchange(z, result)
	}
	return nil
}
