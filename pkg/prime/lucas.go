package prime

import (
	"github.com/oisee/mpint/pkg/mp"
	"github.com/oisee/mpint/pkg/numtheory"
)

// selfridgeD finds the first D in the sequence 5, -7, 9, -11, 13, ... with
// Jacobi(D, n) = -1, the standard parameter selection for the strong
// Lucas-Selfridge test. A perfect square n (for which no such D exists) is
// rejected up front with InvalidInput; otherwise it gives up with
// IterationLimit after 1000 candidates.
func selfridgeD(n *mp.Int) (*mp.Int, error) {
	sqrt := mp.New()
	if err := numtheory.ISqrt(sqrt, n); err != nil {
		return nil, err
	}
	sq := mp.New()
	mp.Mul(sq, sqrt, sqrt)
	if mp.CmpMag(sq, n) == mp.Equal {
		return nil, errInvalid("prime.selfridgeD")
	}

	d := int64(5)
	for i := 0; i < 1000; i++ {
		D := mp.New()
		D.SetInt64(d)
		j, err := numtheory.Jacobi(D, n)
		if err != nil {
			return nil, err
		}
		if j == -1 {
			return D, nil
		}
		if d > 0 {
			d = -(d + 2)
		} else {
			d = -d + 2
		}
	}
	return nil, errIterationLimit("prime.selfridgeD")
}

func modD(d int64) *mp.Int {
	z := mp.New()
	z.SetInt64(d)
	return z
}

// lucasUV computes (U_k, V_k, Q^k mod n) for the Lucas sequence with
// parameters P, Q, discriminant D = P^2 - 4Q, via the standard
// double-and-add ladder that avoids division by working the halving step
// through n (odd) instead of a modular inverse of 2. k is walked bit by bit
// via mp.BitLen/mp.Bit (as Frobenius does for its own exponent) since it is a
// full BigInt, not a machine int — for a modulus beyond ~64 bits, (a+1)/2^s
// routinely does not fit in one.
func lucasUV(P, Q, D *mp.Int, k, n *mp.Int) (U, V, Qk *mp.Int, err error) {
	U = mp.New()
	V = mp.New()
	V.SetInt64(2)
	Qk = mp.New()
	Qk.SetInt64(1)

	bitLen := mp.BitLen(k)
	for i := bitLen - 1; i >= 0; i-- {
		// Double: (U,V,Q^k) -> (U_2k, V_2k, Q^2k).
		nu := mp.New()
		mp.Mul(nu, U, V)
		if err = mp.Mod(nu, nu, n); err != nil {
			return
		}
		nv := mp.New()
		mp.Mul(nv, V, V)
		twoQk := mp.New()
		mp.Mul(twoQk, Qk, modD(2))
		mp.Sub(nv, nv, twoQk)
		if err = mp.Mod(nv, nv, n); err != nil {
			return
		}
		nq := mp.New()
		mp.Mul(nq, Qk, Qk)
		if err = mp.Mod(nq, nq, n); err != nil {
			return
		}
		U, V, Qk = nu, nv, nq

		if bit, _ := mp.Bit(k, i); bit == 1 {
			u2 := mp.New()
			mp.Mul(u2, P, U)
			mp.Add(u2, u2, V)
			v2 := mp.New()
			mp.Mul(v2, D, U)
			pv := mp.New()
			mp.Mul(pv, P, V)
			mp.Add(v2, v2, pv)

			if isOdd(u2) {
				mp.Add(u2, u2, n)
			}
			if isOdd(v2) {
				mp.Add(v2, v2, n)
			}
			mp.DivByTwo(u2, u2)
			mp.DivByTwo(v2, v2)
			if err = mp.Mod(u2, u2, n); err != nil {
				return
			}
			if err = mp.Mod(v2, v2, n); err != nil {
				return
			}
			U, V = u2, v2

			nq2 := mp.New()
			mp.Mul(nq2, Qk, Q)
			if err = mp.Mod(nq2, nq2, n); err != nil {
				return
			}
			Qk = nq2
		}
	}
	return U, V, Qk, nil
}

func isOdd(x *mp.Int) bool {
	b, _ := mp.Bit(x, 0)
	return b == 1
}

// LucasSelfridge runs the strong Lucas-Selfridge test on a (spec.md §4.I).
func LucasSelfridge(a *mp.Int) (Verdict, error) {
	if mp.CmpDigit(a, 3) != mp.Greater {
		return errDecide(a)
	}

	D, err := selfridgeD(a)
	if err != nil {
		if mp.KindOf(err) == mp.InvalidInput {
			return Composite, nil
		}
		return Composite, err
	}

	P := one()
	// Q = (1 - D) / 4.
	oneMinusD := mp.New()
	mp.Sub(oneMinusD, one(), D)
	Q := mp.New()
	qq, _, derr := mp.DivByDigit(absIfNeeded(oneMinusD), 4)
	if derr != nil {
		return Composite, derr
	}
	if oneMinusD.SignOf() == mp.Negative {
		mp.Neg(Q, qq)
	} else {
		Q.CopyFrom(qq)
	}

	ap1 := mp.New()
	mp.Add(ap1, a, one())
	s := mp.TrailingZeros(ap1)
	d := mp.New()
	mp.ShiftRightBits(d, ap1, uint(s), nil)

	U, V, Qk, err := lucasUV(P, Q, D, d, a)
	if err != nil {
		return Composite, err
	}
	if U.IsZero() {
		return ProbablyPrime, nil
	}
	for r := 0; r < s; r++ {
		if V.IsZero() {
			return ProbablyPrime, nil
		}
		if r == s-1 {
			break
		}
		mp.Mul(V, V, V)
		twoQk := mp.New()
		mp.Mul(twoQk, Qk, modD(2))
		mp.Sub(V, V, twoQk)
		if err := mp.Mod(V, V, a); err != nil {
			return Composite, err
		}
		mp.Mul(Qk, Qk, Qk)
		if err := mp.Mod(Qk, Qk, a); err != nil {
			return Composite, err
		}
	}
	return Composite, nil
}

func absIfNeeded(x *mp.Int) *mp.Int {
	t := mp.New()
	mp.Abs(t, x)
	return t
}
