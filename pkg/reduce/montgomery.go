package reduce

import "github.com/oisee/mpint/pkg/mp"

// Montgomery reduces modulo an odd m in the domain where elements carry an
// implicit factor of R = B^k (spec.md §3, §4.F).
type Montgomery struct {
	m   *mp.Int
	rho mp.Word // -m^-1 mod B
	k   int
}

// NewMontgomery sets up a Montgomery context; m must be odd.
func NewMontgomery(m *mp.Int) (*Montgomery, error) {
	if m.IsZero() {
		return nil, errInvalid("reduce.NewMontgomery")
	}
	lsb, _ := mp.Bit(m, 0)
	if lsb == 0 {
		return nil, errInvalid("reduce.NewMontgomery")
	}
	return &Montgomery{m: mp.NewCopy(m), rho: montgomerySetup(m), k: m.Used()}, nil
}

// montgomerySetup computes rho = -m^-1 mod B by iterating the Hensel lift
// on the lowest limb (spec.md §4.F): Newton's iteration x := x*(2-m0*x)
// doubles the number of correct bits each round, so 5 rounds comfortably
// produces a full 32-bit inverse, which is then negated and masked to
// LimbBits.
func montgomerySetup(m *mp.Int) mp.Word {
	b := uint32(montgomeryLowLimb(m)) | 1
	x := uint32(1)
	for i := 0; i < 5; i++ {
		x = x * (2 - b*x)
	}
	inv := mp.Word(x) & mp.LimbMask
	return (mp.Word(1)<<mp.LimbBits - inv) & mp.LimbMask
}

// montgomeryLowLimb returns m's least significant limb, mod 2^LimbBits.
func montgomeryLowLimb(m *mp.Int) mp.Word {
	lowBits := mp.New()
	mp.ModPow2(lowBits, m, mp.LimbBits)
	return mp.Word(lowBits.Uint64())
}

// Modulus implements Reducer.
func (mc *Montgomery) Modulus() *mp.Int { return mc.m }

// Reduce sets z = x / R mod m, requiring 0 <= x < m*R (spec.md §4.F): for
// each limb i of the working value, multiply-add a multiple of m chosen so
// limb i becomes zero, then shift the whole thing right by k limbs.
func (mc *Montgomery) Reduce(z, x *mp.Int) error {
	t := mp.NewCopy(x)
	for i := 0; i < mc.k; i++ {
		ti := t.LimbAt(i)
		mu := (mp.Accumulator(ti) * mp.Accumulator(mc.rho)) & mp.Accumulator(mp.LimbMask)
		addend := mp.New()
		mp.MulByWord(addend, mc.m, mp.Word(mu))
		mp.ShiftLeftDigits(addend, addend, i)
		mp.Add(t, t, addend)
	}
	mp.ShiftRightDigits(t, t, mc.k)
	if mp.CmpMag(t, mc.m) >= 0 {
		mp.Sub(t, t, mc.m)
	}
	mp.Exchange(z, t)
	return nil
}

// Normalize sets z = R mod m (the factor applied to convert a value into
// the Montgomery domain), computed by repeated doubling and conditional
// subtraction (spec.md §4.F).
func (mc *Montgomery) Normalize(z *mp.Int) {
	r := mp.New()
	r.SetInt64(1)
	for i := 0; i < mc.k*mp.LimbBits; i++ {
		mp.ShiftLeftBits(r, r, 1)
		if mp.CmpMag(r, mc.m) >= 0 {
			mp.Sub(r, r, mc.m)
		}
	}
	mp.Exchange(z, r)
}
