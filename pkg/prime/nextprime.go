package prime

import "github.com/oisee/mpint/pkg/mp"

// NextPrime increments a by 2 (after first forcing it odd) until IsPrime
// accepts the candidate; in bbs mode it also requires a ≡ 3 (mod 4)
// (spec.md §4.I).
func NextPrime(z, a *mp.Int, t int, bbs bool) error {
	c := mp.New()
	c.CopyFrom(a)
	if lsb, _ := mp.Bit(c, 0); lsb == 0 {
		mp.Add(c, c, one())
	}
	for {
		ok := true
		if bbs {
			r4 := mp.New()
			mp.ModPow2(r4, c, 2)
			if mp.CmpDigit(r4, 3) != mp.Equal {
				ok = false
			}
		}
		if ok {
			v, err := IsPrime(c, t, nil)
			if err != nil {
				return err
			}
			if v == ProbablyPrime {
				mp.Exchange(z, c)
				return nil
			}
		}
		mp.Add(c, c, modD(2))
	}
}
