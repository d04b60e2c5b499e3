package prime

import "github.com/oisee/mpint/pkg/mp"

// RandFlags controls rand_prime candidate shaping (spec.md §4.I).
type RandFlags int

const (
	Rand2MSB RandFlags = 1 << iota
	RandBBS
	RandSafe
)

// RandPrime builds a random candidate of the given bit length — top bit and
// low bit forced on, shaped by flags — and returns the first one that
// passes IsPrime with t Miller-Rabin rounds. bits < 2 reports InvalidInput.
func RandPrime(bits int, flags RandFlags, t int, rnd RandSource) (*mp.Int, error) {
	if bits < 2 {
		return nil, errInvalid("prime.RandPrime")
	}
	if rnd == nil {
		return nil, errInvalid("prime.RandPrime")
	}

	nbytes := (bits + 7) / 8
	for {
		buf := make([]byte, nbytes)
		n, err := rnd(buf)
		if err != nil {
			return nil, err
		}
		if n != nbytes {
			return nil, errInvalid("prime.RandPrime")
		}

		cand := mp.New()
		for i, b := range buf {
			for bitpos := 0; bitpos < 8; bitpos++ {
				globalBit := (len(buf)-1-i)*8 + bitpos
				if globalBit >= bits {
					continue
				}
				if (b>>uint(bitpos))&1 == 1 {
					mp.SetBit(cand, cand, globalBit, 1)
				}
			}
		}

		mp.SetBit(cand, cand, bits-1, 1)
		mp.SetBit(cand, cand, 0, 1)
		if flags&Rand2MSB != 0 && bits >= 2 {
			mp.SetBit(cand, cand, bits-2, 1)
		}
		if flags&RandBBS != 0 {
			r4 := mp.New()
			mp.ModPow2(r4, cand, 2)
			if mp.CmpDigit(r4, 3) != mp.Equal {
				need := mp.New()
				need.SetInt64(3)
				diff := mp.New()
				mp.Sub(diff, need, r4)
				if diff.SignOf() == mp.Negative {
					mp.Add(diff, diff, modD(4))
				}
				mp.Add(cand, cand, diff)
			}
		}

		v, err := IsPrime(cand, t, rnd)
		if err != nil {
			return nil, err
		}
		if v != ProbablyPrime {
			continue
		}
		if flags&RandSafe != 0 {
			half := mp.New()
			mp.Sub(half, cand, one())
			mp.DivByTwo(half, half)
			hv, err := IsPrime(half, t, rnd)
			if err != nil {
				return nil, err
			}
			if hv != ProbablyPrime {
				continue
			}
		}
		return cand, nil
	}
}
