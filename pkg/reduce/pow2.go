package reduce

import "github.com/oisee/mpint/pkg/mp"

// Pow2 reduces modulo m = 2^p - k where k fits in a single limb
// (spec.md §4.F "2^k (single limb)").
type Pow2 struct {
	m *mp.Int
	p uint
	k mp.Word
}

// Is2k reports whether m = 2^p - k for a k that fits a single limb.
func Is2k(m *mp.Int) bool {
	if m.IsZero() {
		return false
	}
	p := uint(mp.BitLen(m))
	full := mp.New()
	mp.ShiftLeftBits(full, one(), p)
	k := mp.New()
	mp.Sub(k, full, m)
	return k.SignOf() == mp.NonNegative && !k.IsZero() && k.Used() <= 1
}

// NewPow2 sets up a Pow2 context; reports InvalidInput if m is not eligible.
func NewPow2(m *mp.Int) (*Pow2, error) {
	if !Is2k(m) {
		return nil, errInvalid("reduce.NewPow2")
	}
	p := uint(mp.BitLen(m))
	full := mp.New()
	mp.ShiftLeftBits(full, one(), p)
	k := mp.New()
	mp.Sub(k, full, m)
	var kw mp.Word
	if k.Used() == 1 {
		kw = k.LimbAt(0)
	}
	return &Pow2{m: mp.NewCopy(m), p: p, k: kw}, nil
}

// Modulus implements Reducer.
func (pc *Pow2) Modulus() *mp.Int { return pc.m }

// Reduce sets z = x mod m by splitting x into high/low halves at bit p and
// accumulating low + k*high until the high half is empty (spec.md §4.F).
func (pc *Pow2) Reduce(z, x *mp.Int) error {
	t := mp.NewCopy(x)
	for mp.BitLen(t) > int(pc.p) {
		low := mp.New()
		mp.ModPow2(low, t, pc.p)
		high := mp.New()
		mp.ShiftRightBits(high, t, pc.p, nil)
		kh := mp.New()
		mp.MulByWord(kh, high, pc.k)
		mp.Add(t, low, kh)
	}
	if mp.CmpMag(t, pc.m) >= 0 {
		mp.Sub(t, t, pc.m)
	}
	if mp.CmpMag(t, pc.m) >= 0 {
		mp.Sub(t, t, pc.m)
	}
	mp.Exchange(z, t)
	return nil
}

// Pow2Large is Pow2's counterpart where k is itself a BigInt
// (spec.md §4.F "2^k large").
type Pow2Large struct {
	m *mp.Int
	p uint
	k *mp.Int
}

// Is2kLarge reports whether m = 2^p - k, with p = BitLen(m), for a positive
// k that has fewer limbs than m. A k of a single limb also qualifies.
func Is2kLarge(m *mp.Int) bool {
	if m.IsZero() {
		return false
	}
	p := uint(mp.BitLen(m))
	full := mp.New()
	mp.ShiftLeftBits(full, one(), p)
	k := mp.New()
	mp.Sub(k, full, m)
	return k.SignOf() == mp.NonNegative && !k.IsZero() && k.Used() < m.Used()
}

// NewPow2Large sets up a Pow2Large context.
func NewPow2Large(m *mp.Int) (*Pow2Large, error) {
	if !Is2kLarge(m) {
		return nil, errInvalid("reduce.NewPow2Large")
	}
	p := uint(mp.BitLen(m))
	full := mp.New()
	mp.ShiftLeftBits(full, one(), p)
	k := mp.New()
	mp.Sub(k, full, m)
	return &Pow2Large{m: mp.NewCopy(m), p: p, k: k}, nil
}

// Modulus implements Reducer.
func (pc *Pow2Large) Modulus() *mp.Int { return pc.m }

// Reduce is Pow2.Reduce with a general multiply in place of the
// single-limb fast path.
func (pc *Pow2Large) Reduce(z, x *mp.Int) error {
	t := mp.NewCopy(x)
	for mp.BitLen(t) > int(pc.p) {
		low := mp.New()
		mp.ModPow2(low, t, pc.p)
		high := mp.New()
		mp.ShiftRightBits(high, t, pc.p, nil)
		kh := mp.New()
		mp.Mul(kh, high, pc.k)
		mp.Add(t, low, kh)
	}
	if mp.CmpMag(t, pc.m) >= 0 {
		mp.Sub(t, t, pc.m)
	}
	if mp.CmpMag(t, pc.m) >= 0 {
		mp.Sub(t, t, pc.m)
	}
	mp.Exchange(z, t)
	return nil
}
