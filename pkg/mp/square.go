package mp

// Square sets z = x*x, dispatching the same way Mul does but using the
// doubling identity 2*ai*aj + ai^2 to roughly halve the column-accumulation
// work (spec.md §4.D). The result is always non-negative.
func Square(z, x *Int) *Int {
	if x.used == 0 {
		t := New()
		Exchange(z, t)
		return z
	}
	t := New()
	n := x.used
	tn := GetTuning()
	switch {
	case n >= tn.ToomSqrCutoff:
		toomCook3Mul(t, x, x)
	case n >= tn.KaratsubaSqrCutoff:
		karatsubaMul(t, x, x)
	case n < WarrayLimit/2:
		combaSquare(t, x)
	default:
		schoolbookSquare(t, x)
	}
	t.sign = NonNegative
	t.clamp()
	Exchange(z, t)
	return z
}

// schoolbookSquare uses the doubling identity with immediate per-row carry
// propagation, the squaring analogue of schoolbookMul.
func schoolbookSquare(z, x *Int) {
	n := x.used
	out := make([]Word, 2*n)
	for i := 0; i < n; i++ {
		ai := Accumulator(x.digits[i])
		if ai == 0 {
			continue
		}
		// ai^2 term at column 2i
		sq := ai * ai
		s := Accumulator(out[2*i]) + (sq & Accumulator(LimbMask))
		out[2*i] = Word(s) & LimbMask
		carry := (s >> LimbBits) + (sq >> LimbBits)

		// cross terms 2*ai*aj for j > i, doubled on the fly
		for j := i + 1; j < n; j++ {
			p := ai * Accumulator(x.digits[j])
			// 2*p contributes to column i+j; split into low/high to avoid
			// overflow when p's top bit is set.
			lo := (p & Accumulator(LimbMask)) << 1
			hi := (p >> LimbBits) << 1
			s := Accumulator(out[i+j]) + (lo & Accumulator(LimbMask)) + carry
			out[i+j] = Word(s) & LimbMask
			carry = (s >> LimbBits) + hi + (lo >> LimbBits)
		}
		addCarryAt(out, i+n, carry)
	}
	setFromLimbs(z, out)
}

// combaSquare is schoolbookSquare's column-deferred counterpart: every
// cross product is accumulated twice into a wide column before a single
// carry-propagation pass. Only used when 2*n stays under WarrayLimit so no
// column can overflow Accumulator.
func combaSquare(z, x *Int) {
	n := x.used
	w := make([]Accumulator, 2*n)
	for i := 0; i < n; i++ {
		ai := Accumulator(x.digits[i])
		if ai == 0 {
			continue
		}
		w[2*i] += ai * ai
		for j := i + 1; j < n; j++ {
			w[i+j] += 2 * ai * Accumulator(x.digits[j])
		}
	}
	out := make([]Word, 2*n)
	var carry Accumulator
	for i := range w {
		s := w[i] + carry
		out[i] = Word(s) & LimbMask
		carry = s >> LimbBits
	}
	setFromLimbs(z, out)
}
