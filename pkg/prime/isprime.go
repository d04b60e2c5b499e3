package prime

import "github.com/oisee/mpint/pkg/mp"

// RandSource is the injected randomness callback rand_prime and the t > 13
// branch of IsPrime read from. A short read (n less than len(buf)) is
// reported to the caller as InvalidInput.
type RandSource func(buf []byte) (int, error)

// deterministicBases are sufficient Miller-Rabin bases to certify primality
// for any a below 3.317e24, comfortably past the documented bound of
// 318,665,857,834,031,151,167,461 (spec.md §4.I step 6).
var deterministicBases = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// IsPrime runs the composite decision procedure of spec.md §4.I: trial
// division, Miller-Rabin with bases {2,3}, then strong Lucas-Selfridge,
// then t extra rounds (t > 0), or a fixed deterministic base set (t < 0).
func IsPrime(a *mp.Int, t int, rnd RandSource) (Verdict, error) {
	if mp.CmpDigit(a, 2) == mp.Less {
		return Composite, nil
	}
	if mp.CmpDigit(a, 4) == mp.Less {
		return ProbablyPrime, nil
	}

	if v, decided := TrialDivide(a); decided {
		if v == Composite {
			return Composite, nil
		}
		return ProbablyPrime, nil
	}

	for _, b := range []int64{2, 3} {
		v, err := MillerRabin(a, modD(b))
		if err != nil {
			return Composite, err
		}
		if v == Composite {
			return Composite, nil
		}
	}

	v, err := LucasSelfridge(a)
	if err != nil {
		return Composite, err
	}
	if v == Composite {
		return Composite, nil
	}

	if t > 0 {
		bases, err := extraBases(t, rnd)
		if err != nil {
			return Composite, err
		}
		for _, b := range bases {
			v, err := MillerRabin(a, b)
			if err != nil {
				return Composite, err
			}
			if v == Composite {
				return Composite, nil
			}
		}
	} else if t < 0 {
		for _, b := range deterministicBases {
			v, err := MillerRabin(a, modD(b))
			if err != nil {
				return Composite, err
			}
			if v == Composite {
				return Composite, nil
			}
		}
	}

	return ProbablyPrime, nil
}

// extraBases builds the t additional Miller-Rabin bases: the small-prime
// table starting at 5 while there is room, else random odd bases starting
// conceptually at 43 (spec.md §4.I step 5).
func extraBases(t int, rnd RandSource) ([]*mp.Int, error) {
	out := make([]*mp.Int, 0, t)
	if t <= 13 {
		for i := 0; i < t; i++ {
			out = append(out, modD(int64(smallPrimes[i+1])))
		}
		return out, nil
	}
	for i := 0; i < 13; i++ {
		out = append(out, modD(int64(smallPrimes[i+1])))
	}
	if rnd == nil {
		return nil, errInvalid("prime.extraBases")
	}
	for i := 13; i < t; i++ {
		buf := make([]byte, 8)
		n, err := rnd(buf)
		if err != nil {
			return nil, err
		}
		if n != len(buf) {
			return nil, errInvalid("prime.extraBases")
		}
		var v uint64
		for _, b := range buf {
			v = v<<8 | uint64(b)
		}
		v |= 1
		if v < 43 {
			v += 43
		}
		base := mp.New()
		base.SetUint64(v)
		out = append(out, base)
	}
	return out, nil
}
