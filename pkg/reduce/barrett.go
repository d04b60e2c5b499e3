package reduce

import "github.com/oisee/mpint/pkg/mp"

// Barrett is a division-free reduction context using a precomputed
// reciprocal approximation mu = floor(B^2k / m), valid only while m does
// not change (spec.md §3, §4.F).
type Barrett struct {
	m  *mp.Int
	mu *mp.Int
	k  int
}

// NewBarrett sets up a Barrett context for modulus m (m must be non-zero).
func NewBarrett(m *mp.Int) (*Barrett, error) {
	if m.IsZero() {
		return nil, errInvalid("reduce.NewBarrett")
	}
	k := m.Used()
	b2k := mp.New()
	mp.ShiftLeftDigits(b2k, one(), 2*k)
	mu := mp.New()
	if err := mp.Div(mu, nil, b2k, m); err != nil {
		return nil, err
	}
	return &Barrett{m: mp.NewCopy(m), mu: mu, k: k}, nil
}

// Modulus implements Reducer.
func (b *Barrett) Modulus() *mp.Int { return b.m }

// Reduce sets z = x mod m, requiring 0 <= x <= m^2 (spec.md §4.F).
func (b *Barrett) Reduce(z, x *mp.Int) error {
	q := mp.New()
	mp.ShiftRightDigits(q, x, b.k-1)
	mp.Mul(q, q, b.mu)
	mp.ShiftRightDigits(q, q, b.k+1)

	r := mp.New()
	mp.Mul(r, q, b.m)
	mp.Sub(r, x, r)

	if r.SignOf() == mp.Negative {
		mp.Add(r, r, b.m)
	}
	for mp.CmpMag(r, b.m) >= 0 {
		mp.Sub(r, r, b.m)
	}
	mp.Exchange(z, r)
	return nil
}
