package prime

import (
	"github.com/oisee/mpint/pkg/modexp"
	"github.com/oisee/mpint/pkg/mp"
)

// Fermat tests a against base b: probably-prime when b^(a-1) ≡ 1 (mod a).
func Fermat(a, b *mp.Int) (Verdict, error) {
	if mp.CmpDigit(a, 3) != mp.Greater {
		return errDecide(a)
	}
	exp := mp.New()
	mp.Sub(exp, a, one())
	r := mp.New()
	if err := modexp.ExptMod(r, b, exp, a); err != nil {
		return Composite, err
	}
	if mp.CmpDigit(r, 1) == mp.Equal {
		return ProbablyPrime, nil
	}
	return Composite, nil
}

func one() *mp.Int {
	o := mp.New()
	o.SetInt64(1)
	return o
}

func errDecide(a *mp.Int) (Verdict, error) {
	if mp.CmpDigit(a, 2) == mp.Equal || mp.CmpDigit(a, 3) == mp.Equal {
		return ProbablyPrime, nil
	}
	return Composite, nil
}
