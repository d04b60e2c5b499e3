package prime

import (
	"github.com/oisee/mpint/pkg/modexp"
	"github.com/oisee/mpint/pkg/mp"
)

// MillerRabin tests a against base b. It decomposes a-1 = d*2^s with d odd,
// computes x = b^d mod a, and accepts as probably-prime if x ≡ 1 or x ≡ -1
// (mod a), or if any repeated squaring of x hits -1 before s rounds run out
// (spec.md §4.I).
func MillerRabin(a, b *mp.Int) (Verdict, error) {
	if mp.CmpDigit(a, 3) != mp.Greater {
		return errDecide(a)
	}

	am1 := mp.New()
	mp.Sub(am1, a, one())
	s := mp.TrailingZeros(am1)
	d := mp.New()
	mp.ShiftRightBits(d, am1, uint(s), nil)

	x := mp.New()
	if err := modexp.ExptMod(x, b, d, a); err != nil {
		return Composite, err
	}
	if mp.CmpDigit(x, 1) == mp.Equal || mp.CmpMag(x, am1) == mp.Equal {
		return ProbablyPrime, nil
	}

	for r := 1; r < s; r++ {
		mp.Mul(x, x, x)
		if err := mp.Mod(x, x, a); err != nil {
			return Composite, err
		}
		if mp.CmpMag(x, am1) == mp.Equal {
			return ProbablyPrime, nil
		}
		if mp.CmpDigit(x, 1) == mp.Equal {
			return Composite, nil
		}
	}
	return Composite, nil
}
