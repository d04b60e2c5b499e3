package mp

// Mul sets z = a * b, dispatching among schoolbook, Comba, Karatsuba and
// Toom-Cook 3-way by operand size (spec.md §4.D). Sign is the XOR of the
// operand signs; the result is clamped, which naturally yields zero when
// either operand is zero.
func Mul(z, a, b *Int) *Int {
	if a.used == 0 || b.used == 0 {
		t := New()
		Exchange(z, t)
		return z
	}
	t := New()
	mulMag(t, a, b)
	if a.sign != b.sign {
		t.sign = Negative
	} else {
		t.sign = NonNegative
	}
	t.clamp()
	Exchange(z, t)
	return z
}

// mulMag computes |a|*|b| into z, picking the algorithm per spec.md §4.D's
// dispatch table. Toom and Karatsuba recurse back through Mul (via their
// own Int-level calls) so nested calls can themselves pick the right
// algorithm at every depth, as spec.md §4.D requires.
func mulMag(z, a, b *Int) {
	m := minInt(a.used, b.used)
	tn := GetTuning()
	switch {
	case m >= tn.ToomMulCutoff:
		toomCook3Mul(z, a, b)
	case m >= tn.KaratsubaMulCutoff:
		karatsubaMul(z, a, b)
	case m <= WarrayLimit/2:
		combaMul(z, a, b)
	default:
		schoolbookMul(z, a, b)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// schoolbookMul is the row-by-row O(n*m) multiply: each row's carry is
// propagated into the destination immediately, so unlike Comba it never
// risks accumulator overflow regardless of operand size.
func schoolbookMul(z, a, b *Int) {
	n := a.used + b.used
	out := make([]Word, n)
	for i := 0; i < a.used; i++ {
		ai := Accumulator(a.digits[i])
		if ai == 0 {
			continue
		}
		var carry Accumulator
		j := 0
		for ; j < b.used; j++ {
			s := ai*Accumulator(b.digits[j]) + Accumulator(out[i+j]) + carry
			out[i+j] = Word(s) & LimbMask
			carry = s >> LimbBits
		}
		addCarryAt(out, i+j, carry)
	}
	setFromLimbs(z, out)
}

// addCarryAt ripples carry into out starting at idx.
func addCarryAt(out []Word, idx int, carry Accumulator) {
	for carry != 0 {
		s := Accumulator(out[idx]) + carry
		out[idx] = Word(s) & LimbMask
		carry = s >> LimbBits
		idx++
	}
}

// combaMul accumulates each output column in a full-width Accumulator
// before a single carry-propagation pass, deferring carries the way
// spec.md §4.D describes. Only called when m <= WarrayLimit/2, which
// guarantees no column can overflow Accumulator.
func combaMul(z, a, b *Int) {
	n := a.used + b.used
	w := make([]Accumulator, n)
	for i := 0; i < a.used; i++ {
		ai := Accumulator(a.digits[i])
		if ai == 0 {
			continue
		}
		for j := 0; j < b.used; j++ {
			w[i+j] += ai * Accumulator(b.digits[j])
		}
	}
	out := make([]Word, n)
	var carry Accumulator
	for i := 0; i < n; i++ {
		s := w[i] + carry
		out[i] = Word(s) & LimbMask
		carry = s >> LimbBits
	}
	setFromLimbs(z, out)
}

// setFromLimbs installs a freshly computed little-endian magnitude into z.
func setFromLimbs(z *Int, limbs []Word) {
	_ = z.grow(len(limbs))
	copy(z.digits, limbs)
	for i := len(limbs); i < len(z.digits); i++ {
		z.digits[i] = 0
	}
	z.used = len(limbs)
	z.sign = NonNegative
	z.clamp()
}

// splitAt splits the magnitude of x at limb m into (low, high) such that
// x == high*B^m + low, both non-negative.
func splitAt(x *Int, m int) (low, high *Int) {
	low, high = New(), New()
	if m > x.used {
		m = x.used
	}
	_ = low.grow(m)
	copy(low.digits[:m], x.digits[:m])
	low.used = m
	low.clamp()

	hn := x.used - m
	if hn < 0 {
		hn = 0
	}
	_ = high.grow(hn)
	if hn > 0 {
		copy(high.digits[:hn], x.digits[m:x.used])
	}
	high.used = hn
	high.clamp()
	return
}

// karatsubaMul implements the 3-recursive-multiply Karatsuba split
// (spec.md §4.D): a = a1*B^m + a0, b = b1*B^m + b0, with m = min(|a|,|b|)/2.
func karatsubaMul(z, a, b *Int) {
	m := minInt(a.used, b.used) / 2
	if m == 0 {
		schoolbookMul(z, a, b)
		return
	}
	a0, a1 := splitAt(a, m)
	b0, b1 := splitAt(b, m)

	z0, z2, mid := New(), New(), New()
	Mul(z0, a0, b0)
	Mul(z2, a1, b1)

	sa, sb := New(), New()
	Add(sa, a0, a1)
	Add(sb, b0, b1)
	Mul(mid, sa, sb)

	// mid = (a0+a1)(b0+b1) = z0 + z1 + z2  =>  z1 = mid - z0 - z2
	Sub(mid, mid, z0)
	Sub(mid, mid, z2)

	out := New()
	out.zero()
	addShifted(out, z2, 2*m)
	addShifted(out, mid, m)
	addShifted(out, z0, 0)
	Exchange(z, out)
}

// addShifted adds part*B^limbShift into t (signed add; part may be negative,
// which the Toom-3 interpolation in toom.go relies on).
func addShifted(t, part *Int, limbShift int) {
	if part.used == 0 {
		return
	}
	tmp := New()
	ShiftLeftDigits(tmp, part, limbShift)
	Add(t, t, tmp)
}

// MulByWord multiplies x by a single limb w into z, the small-scalar
// fast path used throughout the reduction family in pkg/reduce.
func MulByWord(z, x *Int, w Word) *Int {
	if w == 0 || x.used == 0 {
		t := New()
		Exchange(z, t)
		return z
	}
	out := make([]Word, x.used+1)
	var carry Accumulator
	wa := Accumulator(w & LimbMask)
	for i := 0; i < x.used; i++ {
		s := Accumulator(x.digits[i])*wa + carry
		out[i] = Word(s) & LimbMask
		carry = s >> LimbBits
	}
	out[x.used] = Word(carry)
	sign := x.sign
	setFromLimbs(z, out)
	z.sign = sign
	z.clamp()
	return z
}
