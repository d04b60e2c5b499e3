package prime

import (
	"github.com/oisee/mpint/pkg/mp"
	"github.com/oisee/mpint/pkg/numtheory"
)

// Frobenius runs the Frobenius (Underwood) test on a (spec.md §4.I). It
// works in the ring Z_a[x]/(x^2 - p*x + 1) for the smallest p >= 0 with
// Jacobi(p^2-4, a) = -1: when a is prime that ring is the field F_{a^2}, the
// two roots of x^2-px+1 are conjugate under the Frobenius automorphism
// y -> y^a, their product is 1 and their sum is p, so
// (x+2)^(a+1) = (x+2)(x^-1+2) collapses to the constant 2p+5.
// a is declared composite whenever it does not.
func Frobenius(a *mp.Int) (Verdict, error) {
	if mp.CmpDigit(a, 3) != mp.Greater {
		return errDecide(a)
	}

	var p int64
	found := false
	for p = 0; p < 0x7fff; p++ {
		d := mp.New()
		mp.Mul(d, modD(p), modD(p))
		mp.Sub(d, d, modD(4))
		j, err := numtheory.Jacobi(d, a)
		if err != nil {
			return Composite, err
		}
		if j == 0 {
			g := mp.New()
			if err := numtheory.GCD(g, d, a); err != nil {
				return Composite, err
			}
			if mp.CmpMag(g, a) != mp.Equal && mp.CmpDigit(g, 1) != mp.Equal {
				return Composite, nil
			}
			continue
		}
		if j == -1 {
			found = true
			break
		}
	}
	if !found {
		return Composite, errIterationLimit("prime.Frobenius")
	}

	pInt := modD(p)

	// c0,c1 represents c0 + c1*x; start from x+2 itself, which accounts for
	// the top bit of the exponent.
	c0 := mp.New()
	c0.SetInt64(2)
	c1 := mp.New()
	c1.SetInt64(1)

	exp := mp.New()
	mp.Add(exp, a, one())
	bitLen := mp.BitLen(exp)
	for i := bitLen - 2; i >= 0; i-- {
		nc0, nc1, err := polyMulMod(c0, c1, c0, c1, pInt, a)
		if err != nil {
			return Composite, err
		}
		c0, c1 = nc0, nc1
		bit, _ := mp.Bit(exp, i)
		if bit == 1 {
			nc0, nc1, err = polyMulMod(c0, c1, modD(2), modD(1), pInt, a)
			if err != nil {
				return Composite, err
			}
			c0, c1 = nc0, nc1
		}
	}

	target := mp.New()
	if err := mp.Mod(target, modD(2*p+5), a); err != nil {
		return Composite, err
	}
	if mp.Cmp(c0, target) == mp.Equal && c1.IsZero() {
		return ProbablyPrime, nil
	}
	return Composite, nil
}

// polyMulMod multiplies (c0+c1 x)(d0+d1 x) mod a in the ring
// Z_a[x]/(x^2 - p x + 1), using x^2 = p*x - 1.
func polyMulMod(c0, c1, d0, d1, p, a *mp.Int) (r0, r1 *mp.Int, err error) {
	t0 := mp.New()
	mp.Mul(t0, c0, d0)
	cross := mp.New()
	c0d1 := mp.New()
	mp.Mul(c0d1, c0, d1)
	c1d0 := mp.New()
	mp.Mul(c1d0, c1, d0)
	mp.Add(cross, c0d1, c1d0)
	t1 := mp.New()
	mp.Mul(t1, c1, d1)

	pt1 := mp.New()
	mp.Mul(pt1, p, t1)
	mp.Add(cross, cross, pt1)

	mp.Sub(t0, t0, t1)

	r0 = mp.New()
	if err = mp.Mod(r0, t0, a); err != nil {
		return
	}
	r1 = mp.New()
	if err = mp.Mod(r1, cross, a); err != nil {
		return
	}
	return r0, r1, nil
}
