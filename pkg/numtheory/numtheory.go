// Package numtheory implements GCD/LCM, extended Euclid, modular inverse,
// integer roots, and the Jacobi/Kronecker symbols and Tonelli-Shanks square
// root used by pkg/prime (spec.md §4.G).
package numtheory

import "github.com/oisee/mpint/pkg/mp"

func errInvalid(op string) error {
	return &mp.Error{Op: op, Kind: mp.InvalidInput}
}

// GCD sets z = gcd(|a|, |b|) using the binary algorithm: strip common
// factors of two, then repeatedly subtract the smaller from the larger and
// halve away any resulting factor of two (spec.md §4.G).
func GCD(z, a, b *mp.Int) error {
	if a.IsZero() && b.IsZero() {
		z.SetInt64(0)
		return nil
	}
	if a.IsZero() {
		mp.Abs(z, b)
		return nil
	}
	if b.IsZero() {
		mp.Abs(z, a)
		return nil
	}

	u := mp.New()
	mp.Abs(u, a)
	v := mp.New()
	mp.Abs(v, b)

	shift := 0
	for mp.TrailingZeros(u) > 0 && mp.TrailingZeros(v) > 0 {
		mp.DivByTwo(u, u)
		mp.DivByTwo(v, v)
		shift++
	}
	for mp.TrailingZeros(u) > 0 {
		mp.DivByTwo(u, u)
	}

	for !v.IsZero() {
		for mp.TrailingZeros(v) > 0 {
			mp.DivByTwo(v, v)
		}
		if mp.CmpMag(u, v) == mp.Greater {
			mp.Exchange(u, v)
		}
		mp.Sub(v, v, u)
	}

	mp.ShiftLeftBits(z, u, uint(shift))
	return nil
}

// LCM sets z = lcm(|a|, |b|), computed as |a*b| / gcd(a,b) (spec.md §4.G).
func LCM(z, a, b *mp.Int) error {
	if a.IsZero() || b.IsZero() {
		z.SetInt64(0)
		return nil
	}
	g := mp.New()
	if err := GCD(g, a, b); err != nil {
		return err
	}
	prod := mp.New()
	mp.Mul(prod, a, b)
	mp.Abs(prod, prod)
	q := mp.New()
	if err := mp.Div(q, nil, prod, g); err != nil {
		return err
	}
	mp.Exchange(z, q)
	return nil
}

// ExtEuclid computes u1, u2, u3 such that u1*a + u2*b = u3 = gcd(a, b), via
// the standard iterative extended Euclidean recurrence (spec.md §4.G).
func ExtEuclid(a, b *mp.Int) (u1, u2, u3 *mp.Int, err error) {
	if a.IsZero() && b.IsZero() {
		return mp.New(), mp.New(), mp.New(), nil
	}

	oldR, r := mp.NewCopy(a), mp.NewCopy(b)
	oldS, s := mp.New(), mp.New()
	oldS.SetInt64(1)
	oldT, t := mp.New(), mp.New()
	t.SetInt64(1)

	for !r.IsZero() {
		q := mp.New()
		rem := mp.New()
		if err := mp.Div(q, rem, oldR, r); err != nil {
			return nil, nil, nil, err
		}

		oldR, r = r, rem

		qs := mp.New()
		mp.Mul(qs, q, s)
		ns := mp.New()
		mp.Sub(ns, oldS, qs)
		oldS, s = s, ns

		qt := mp.New()
		mp.Mul(qt, q, t)
		nt := mp.New()
		mp.Sub(nt, oldT, qt)
		oldT, t = t, nt
	}

	if oldR.SignOf() == mp.Negative {
		mp.Neg(oldR, oldR)
		mp.Neg(oldS, oldS)
		mp.Neg(oldT, oldT)
	}
	return oldS, oldT, oldR, nil
}

// InvMod sets z = a^-1 mod m. It reports InvalidInput if gcd(a, m) != 1, or
// if m is not positive.
func InvMod(z, a, m *mp.Int) error {
	if m.IsZero() || m.SignOf() == mp.Negative {
		return errInvalid("numtheory.InvMod")
	}
	if mp.CmpDigit(m, 1) == mp.Equal {
		z.SetInt64(0)
		return nil
	}

	if lsb, _ := mp.Bit(m, 0); lsb == 1 {
		return invModOdd(z, a, m)
	}

	u1, _, u3, err := ExtEuclid(a, m)
	if err != nil {
		return err
	}
	if mp.CmpDigit(u3, 1) != mp.Equal {
		return errInvalid("numtheory.InvMod")
	}
	return mp.Mod(z, u1, m)
}

// invModOdd is the binary extended-GCD fast path for an odd modulus
// (spec.md §4.G), avoiding general division inside the loop.
func invModOdd(z, a, m *mp.Int) error {
	x := mp.New()
	if err := mp.Mod(x, a, m); err != nil {
		return err
	}
	if x.IsZero() {
		return errInvalid("numtheory.InvMod")
	}

	u, v := mp.NewCopy(m), mp.NewCopy(x)
	A, B := mp.New(), mp.New()
	A.SetInt64(1)
	C, D := mp.New(), mp.New()
	D.SetInt64(1)

	for !u.IsZero() {
		for lsb, _ := mp.Bit(u, 0); lsb == 0 && !u.IsZero(); lsb, _ = mp.Bit(u, 0) {
			mp.DivByTwo(u, u)
			aEven, _ := mp.Bit(A, 0)
			bEven, _ := mp.Bit(B, 0)
			if aEven == 0 && bEven == 0 {
				mp.DivByTwo(A, A)
				mp.DivByTwo(B, B)
			} else {
				mp.Add(A, A, x)
				mp.DivByTwo(A, A)
				mp.Sub(B, B, m)
				mp.DivByTwo(B, B)
			}
		}
		for lsb, _ := mp.Bit(v, 0); lsb == 0 && !v.IsZero(); lsb, _ = mp.Bit(v, 0) {
			mp.DivByTwo(v, v)
			cEven, _ := mp.Bit(C, 0)
			dEven, _ := mp.Bit(D, 0)
			if cEven == 0 && dEven == 0 {
				mp.DivByTwo(C, C)
				mp.DivByTwo(D, D)
			} else {
				mp.Add(C, C, x)
				mp.DivByTwo(C, C)
				mp.Sub(D, D, m)
				mp.DivByTwo(D, D)
			}
		}
		if mp.CmpMag(u, v) != mp.Less {
			mp.Sub(u, u, v)
			mp.Sub(A, A, C)
			mp.Sub(B, B, D)
		} else {
			mp.Sub(v, v, u)
			mp.Sub(C, C, A)
			mp.Sub(D, D, B)
		}
	}

	if mp.CmpDigit(v, 1) != mp.Equal {
		return errInvalid("numtheory.InvMod")
	}
	return mp.Mod(z, D, m)
}

// ISqrt sets z to floor(sqrt(x)) for x >= 0 via Newton's method, seeded from
// x's bit length (spec.md §4.G). A negative x is rejected with InvalidInput.
func ISqrt(z, x *mp.Int) error {
	if x.SignOf() == mp.Negative {
		return errInvalid("numtheory.ISqrt")
	}
	if x.IsZero() {
		z.SetInt64(0)
		return nil
	}
	bitLen := mp.BitLen(x)
	t := mp.New()
	mp.ShiftLeftBits(t, oneInt(), uint(bitLen/2+1))

	for {
		q := mp.New()
		if err := mp.Div(q, nil, x, t); err != nil {
			return err
		}
		sum := mp.New()
		mp.Add(sum, t, q)
		next := mp.New()
		mp.DivByTwo(next, sum)
		if mp.CmpMag(next, t) != mp.Less {
			break
		}
		t = next
	}
	for {
		sq := mp.New()
		mp.Mul(sq, t, t)
		if mp.CmpMag(sq, x) != mp.Greater {
			break
		}
		mp.Sub(t, t, oneInt())
	}
	mp.Exchange(z, t)
	return nil
}

// NthRoot sets z to floor(x^(1/n)) for n >= 1, via Newton's method on
// f(t) = t^n - x (spec.md §4.G).
func NthRoot(z, x *mp.Int, n int) error {
	if n <= 0 {
		return errInvalid("numtheory.NthRoot")
	}
	if x.SignOf() == mp.Negative {
		return errInvalid("numtheory.NthRoot")
	}
	if x.IsZero() {
		z.SetInt64(0)
		return nil
	}
	if n == 1 {
		mp.Abs(z, x)
		return nil
	}

	bitLen := mp.BitLen(x)
	t := mp.New()
	mp.ShiftLeftBits(t, oneInt(), uint(bitLen/n+1))

	for iter := 0; iter < 1000; iter++ {
		tn1 := powInt(t, n-1)
		num := mp.New()
		mp.Mul(num, tn1, t)
		mp.Sub(num, num, x)

		denom := mp.New()
		mp.Mul(denom, intFromInt64(int64(n)), tn1)

		delta := mp.New()
		if err := mp.Div(delta, nil, num, denom); err != nil {
			return err
		}
		next := mp.New()
		mp.Sub(next, t, delta)
		if next.SignOf() == mp.Negative || next.IsZero() {
			next.SetInt64(1)
		}
		if mp.CmpMag(next, t) == mp.Equal {
			t = next
			break
		}
		t = next
	}
	for {
		p := powInt(t, n)
		if mp.CmpMag(p, x) != mp.Greater {
			break
		}
		mp.Sub(t, t, oneInt())
	}
	mp.Exchange(z, t)
	return nil
}

func powInt(base *mp.Int, n int) *mp.Int {
	r := mp.New()
	r.SetInt64(1)
	for i := 0; i < n; i++ {
		mp.Mul(r, r, base)
	}
	return r
}

func oneInt() *mp.Int {
	o := mp.New()
	o.SetInt64(1)
	return o
}

func intFromInt64(v int64) *mp.Int {
	o := mp.New()
	o.SetInt64(v)
	return o
}

// Jacobi computes the Jacobi symbol (a/n) for odd positive n (spec.md §4.G),
// via the quadratic-reciprocity recursion.
func Jacobi(a, n *mp.Int) (int, error) {
	if n.SignOf() == mp.Negative || n.IsZero() {
		return 0, errInvalid("numtheory.Jacobi")
	}
	if lsb, _ := mp.Bit(n, 0); lsb == 0 {
		return 0, errInvalid("numtheory.Jacobi")
	}

	x := mp.New()
	if err := mp.Mod(x, a, n); err != nil {
		return 0, err
	}
	y := mp.NewCopy(n)
	result := 1

	for !x.IsZero() {
		for tz := mp.TrailingZeros(x); tz > 0; tz = mp.TrailingZeros(x) {
			mp.ShiftRightBits(x, x, uint(tz), nil)
			r8 := limbMod8(y)
			if tz%2 == 1 && (r8 == 3 || r8 == 5) {
				result = -result
			}
		}
		x, y = y, x
		if limbMod8(x)%4 == 3 && limbMod8(y)%4 == 3 {
			result = -result
		}
		if err := mp.Mod(x, x, y); err != nil {
			return 0, err
		}
	}
	if mp.CmpDigit(y, 1) == mp.Equal {
		return result, nil
	}
	return 0, nil
}

func limbMod8(x *mp.Int) mp.Word {
	t := mp.New()
	mp.ModPow2(t, x, 3)
	return mp.Word(t.Uint64())
}

// Kronecker extends Jacobi to allow n = 0, negative, or even (spec.md §4.G).
func Kronecker(a, n *mp.Int) (int, error) {
	if n.IsZero() {
		if mp.CmpDigit(absCopy(a), 1) == mp.Equal {
			return 1, nil
		}
		return 0, nil
	}
	nn := absCopy(n)
	result := 1
	if n.SignOf() == mp.Negative && a.SignOf() == mp.Negative {
		result = -1
	}

	tz := mp.TrailingZeros(nn)
	if tz > 0 {
		mp.ShiftRightBits(nn, nn, uint(tz), nil)
		alow := limbMod8(absCopy(a))
		if alow == 3 || alow == 5 {
			if tz%2 == 1 {
				result = -result
			}
		} else if alow%2 == 0 {
			return 0, nil
		}
	}
	if mp.CmpDigit(nn, 1) == mp.Equal {
		return result, nil
	}
	j, err := Jacobi(a, nn)
	if err != nil {
		return 0, err
	}
	return result * j, nil
}

func absCopy(x *mp.Int) *mp.Int {
	t := mp.New()
	mp.Abs(t, x)
	return t
}

// SqrtModPrime sets z to a square root of a modulo the prime p (one of two
// roots; the other is p - z), using the p ≡ 3 (mod 4) shortcut when it
// applies and Tonelli-Shanks otherwise (spec.md §4.G). Reports InvalidInput
// if a is not a quadratic residue mod p.
func SqrtModPrime(z, a, p *mp.Int) error {
	amod := mp.New()
	if err := mp.Mod(amod, a, p); err != nil {
		return err
	}
	if amod.IsZero() {
		z.SetInt64(0)
		return nil
	}

	j, err := Jacobi(amod, p)
	if err != nil {
		return err
	}
	if j != 1 {
		return errInvalid("numtheory.SqrtModPrime")
	}

	r4 := limbMod4(p)
	if r4 == 3 {
		exp := mp.New()
		mp.Add(exp, p, oneInt())
		mp.DivByTwo(exp, exp)
		mp.DivByTwo(exp, exp)
		return modPow(z, amod, exp, p)
	}

	// Tonelli-Shanks: write p-1 = q*2^s with q odd.
	pm1 := mp.New()
	mp.Sub(pm1, p, oneInt())
	s := mp.TrailingZeros(pm1)
	q := mp.New()
	mp.ShiftRightBits(q, pm1, uint(s), nil)

	nonResidue := mp.New()
	nonResidue.SetInt64(2)
	for {
		jz, err := Jacobi(nonResidue, p)
		if err != nil {
			return err
		}
		if jz == -1 {
			break
		}
		mp.Add(nonResidue, nonResidue, oneInt())
	}

	c := mp.New()
	if err := modPow(c, nonResidue, q, p); err != nil {
		return err
	}
	qp1h := mp.New()
	mp.Add(qp1h, q, oneInt())
	mp.DivByTwo(qp1h, qp1h)
	rr := mp.New()
	if err := modPow(rr, amod, qp1h, p); err != nil {
		return err
	}
	t := mp.New()
	if err := modPow(t, amod, q, p); err != nil {
		return err
	}
	m := s

	for {
		if mp.CmpDigit(t, 1) == mp.Equal {
			mp.Exchange(z, rr)
			return nil
		}
		i := 0
		tt := mp.NewCopy(t)
		for mp.CmpDigit(tt, 1) != mp.Equal {
			mp.Mul(tt, tt, tt)
			if err := mp.Mod(tt, tt, p); err != nil {
				return err
			}
			i++
			if i >= m {
				return errInvalid("numtheory.SqrtModPrime")
			}
		}
		b := mp.NewCopy(c)
		for k := 0; k < m-i-1; k++ {
			mp.Mul(b, b, b)
			if err := mp.Mod(b, b, p); err != nil {
				return err
			}
		}
		mp.Mul(rr, rr, b)
		if err := mp.Mod(rr, rr, p); err != nil {
			return err
		}
		mp.Mul(c, b, b)
		if err := mp.Mod(c, c, p); err != nil {
			return err
		}
		mp.Mul(t, t, c)
		if err := mp.Mod(t, t, p); err != nil {
			return err
		}
		m = i
	}
}

func limbMod4(x *mp.Int) mp.Word {
	t := mp.New()
	mp.ModPow2(t, x, 2)
	return mp.Word(t.Uint64())
}

// modPow is a plain binary-exponentiation helper local to this package,
// used only to bootstrap SqrtModPrime; this package does not import
// pkg/modexp.
func modPow(z, base, exp, m *mp.Int) error {
	result := mp.New()
	result.SetInt64(1)
	b := mp.New()
	if err := mp.Mod(b, base, m); err != nil {
		return err
	}
	bl := mp.BitLen(exp)
	for i := 0; i < bl; i++ {
		bit, _ := mp.Bit(exp, i)
		if bit == 1 {
			mp.Mul(result, result, b)
			if err := mp.Mod(result, result, m); err != nil {
				return err
			}
		}
		mp.Mul(b, b, b)
		if err := mp.Mod(b, b, m); err != nil {
			return err
		}
	}
	mp.Exchange(z, result)
	return nil
}
