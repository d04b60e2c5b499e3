// Package fuzz randomly generates independent single operations over pkg/mp
// and cross-checks each result against math/big, hunting for invariant
// violations and wrong answers. It is adapted from the teacher's stoke
// package: where stoke mutates instruction sequences under a
// Metropolis-Hastings chain searching for a shorter equivalent, this package
// has no cost landscape to climb — it just samples uniformly and reports
// every disagreement —
// so it keeps stoke's rand/v2 PCG seeding idiom but drops the MCMC
// acceptance machinery entirely.
package fuzz

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/oisee/mpint/pkg/mp"
)

// Finding records one disagreement between pkg/mp and math/big, or an
// invariant violation caught on an operation's result.
type Finding struct {
	Op      Op
	A, B    *mp.Int
	Want    *mp.Int
	Got     *mp.Int
	Problem string
}

// Run generates n random operations drawn uniformly from Op, seeded
// deterministically from seed, with operands up to maxBits wide. It returns
// every disagreement found, continuing past failures to collect as many as
// exist rather than stopping at the first.
func Run(n int, seed uint64, maxBits int) []Finding {
	rng := rand.New(rand.NewPCG(seed, seed^0xB16B00B5))
	var findings []Finding

	for i := 0; i < n; i++ {
		op := Op(rng.IntN(int(opCount)))
		a := randomInt(rng, maxBits)
		b := randomInt(rng, maxBits)

		if f := checkOne(op, a, b); f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

func checkOne(op Op, a, b *mp.Int) *Finding {
	bigA, bigB := toBig(a), toBig(b)

	var gotMP *mp.Int
	var wantBig *big.Int

	switch op {
	case OpAdd:
		gotMP = mp.New()
		mp.Add(gotMP, a, b)
		wantBig = new(big.Int).Add(bigA, bigB)
	case OpSub:
		gotMP = mp.New()
		mp.Sub(gotMP, a, b)
		wantBig = new(big.Int).Sub(bigA, bigB)
	case OpMul:
		gotMP = mp.New()
		mp.Mul(gotMP, a, b)
		wantBig = new(big.Int).Mul(bigA, bigB)
	case OpSquare:
		gotMP = mp.New()
		mp.Square(gotMP, a)
		wantBig = new(big.Int).Mul(bigA, bigA)
	case OpDiv:
		if b.IsZero() {
			return nil
		}
		gotMP = mp.New()
		if err := mp.Div(gotMP, nil, a, b); err != nil {
			return &Finding{Op: op, A: a, B: b, Problem: fmt.Sprintf("Div error: %v", err)}
		}
		wantBig = new(big.Int).Quo(bigA, bigB)
	case OpMod:
		if b.IsZero() {
			return nil
		}
		gotMP = mp.New()
		if err := mp.Mod(gotMP, a, b); err != nil {
			return &Finding{Op: op, A: a, B: b, Problem: fmt.Sprintf("Mod error: %v", err)}
		}
		wantBig = new(big.Int).Mod(bigA, bigB)
		if wantBig.Sign() < 0 {
			wantBig.Add(wantBig, new(big.Int).Abs(bigB))
		}
	default:
		return nil
	}

	if err := mp.CheckInvariants(gotMP); err != nil {
		return &Finding{Op: op, A: a, B: b, Got: gotMP, Problem: err.Error()}
	}

	wantMP := fromBig(wantBig)
	if mp.Cmp(gotMP, wantMP) != mp.Equal {
		return &Finding{Op: op, A: a, B: b, Want: wantMP, Got: gotMP, Problem: "result mismatch"}
	}
	return nil
}

func randomInt(rng *rand.Rand, maxBits int) *mp.Int {
	bits := 0
	if maxBits > 0 {
		bits = rng.IntN(maxBits + 1)
	}
	z := mp.New()
	for i := 0; i < bits; i++ {
		if rng.IntN(2) == 1 {
			mp.SetBit(z, z, i, 1)
		}
	}
	if rng.IntN(2) == 1 && !z.IsZero() {
		z.SetSign(mp.Negative)
	}
	return z
}

func toBig(x *mp.Int) *big.Int {
	r := new(big.Int)
	bl := mp.BitLen(x)
	for i := bl - 1; i >= 0; i-- {
		r.Lsh(r, 1)
		b, _ := mp.Bit(x, i)
		if b == 1 {
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
