package reduce

import "github.com/oisee/mpint/pkg/mp"

// DR reduces modulo a Diminished-Radix modulus m = B^k - c with small c
// (spec.md §4.F).
type DR struct {
	m *mp.Int
	c mp.Word
	k int
}

// IsDRModulus reports whether m = B^k - c for some k and a c that fits in a
// single limb (spec.md §4.F's eligibility predicate).
func IsDRModulus(m *mp.Int) bool {
	if m.IsZero() {
		return false
	}
	k := m.Used()
	bk := mp.New()
	mp.ShiftLeftDigits(bk, one(), k)
	c := mp.New()
	mp.Sub(c, bk, m)
	return c.SignOf() == mp.NonNegative && !c.IsZero() && c.Used() <= 1
}

// NewDR sets up a DR context; reports InvalidInput if m is not DR-eligible.
func NewDR(m *mp.Int) (*DR, error) {
	if !IsDRModulus(m) {
		return nil, errInvalid("reduce.NewDR")
	}
	k := m.Used()
	bk := mp.New()
	mp.ShiftLeftDigits(bk, one(), k)
	c := mp.New()
	mp.Sub(c, bk, m)
	var cw mp.Word
	if c.Used() == 1 {
		cw = c.LimbAt(0)
	}
	return &DR{m: mp.NewCopy(m), c: cw, k: k}, nil
}

// Modulus implements Reducer.
func (d *DR) Modulus() *mp.Int { return d.m }

// Reduce sets z = x mod m by repeatedly folding the high half (above limb
// k) back in, scaled by c, until the high half is empty, then at most two
// conditional subtracts (spec.md §4.F).
func (d *DR) Reduce(z, x *mp.Int) error {
	t := mp.NewCopy(x)
	for t.Used() > d.k {
		low, high := splitAt(t, d.k)
		ch := mp.New()
		mp.MulByWord(ch, high, d.c)
		mp.Add(t, low, ch)
	}
	if mp.CmpMag(t, d.m) >= 0 {
		mp.Sub(t, t, d.m)
	}
	if mp.CmpMag(t, d.m) >= 0 {
		mp.Sub(t, t, d.m)
	}
	mp.Exchange(z, t)
	return nil
}

// splitAt splits the magnitude of x at limb m into (low, high) such that
// x == high*B^m + low, via shift primitives exported by pkg/mp.
func splitAt(x *mp.Int, m int) (low, high *mp.Int) {
	low, high = mp.New(), mp.New()
	mp.ModPow2(low, x, uint(m)*mp.LimbBits)
	mp.ShiftRightDigits(high, x, m)
	return
}
