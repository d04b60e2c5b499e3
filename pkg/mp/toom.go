package mp

// toomCook3Mul implements Toom-Cook 3-way multiplication (spec.md §4.D).
//
// Each operand is split into three limb-parts a0,a1,a2 (a = a2*B^2k + a1*B^k
// + a0) and evaluated as a degree-2 polynomial at five points:
//
//	0, 1, -1, 2, infinity
//
// (spec.md §4.D permits "{0, 1, −1, −2, ∞} (or equivalent)"; this
// implementation uses 2 in place of -2, the classical Toom-3 point set,
// because its elimination-based interpolation below is simpler to state
// correctly — see DESIGN.md.)
//
// The two evaluated sequences are multiplied pointwise (5 recursive
// multiplies through Mul, so nested calls still pick the right algorithm at
// every depth), then the product polynomial's 5 coefficients are recovered
// by exact integer elimination:
//
//	c0 = w(0)
//	c4 = w(inf)
//	A  = w(1)  - c0 - c4
//	B  = w(-1) - c0 - c4
//	C  = w(2)  - c0 - 16*c4
//	c2 = (A + B) / 2
//	D  = (A - B) / 2
//	c3 = (C - 2*D - 4*c2) / 6
//	c1 = D - c3
//
// and recombined as c0 + c1*B^k + c2*B^2k + c3*B^3k + c4*B^4k. All divisions
// above are exact (zero remainder) by construction of Toom-Cook.
func toomCook3Mul(z, a, b *Int) {
	n := maxInt(a.used, b.used)
	k := (n + 2) / 3
	if minInt(a.used, b.used) < 3 {
		schoolbookMul(z, a, b)
		return
	}

	a0, a1, a2 := splitThree(a, k)
	b0, b1, b2 := splitThree(b, k)

	at1, atm1, at2 := evalToomPoints(a0, a1, a2)
	bt1, btm1, bt2 := evalToomPoints(b0, b1, b2)

	w0, w1, wm1, w2, winf := New(), New(), New(), New(), New()
	Mul(w0, a0, b0)
	Mul(w1, at1, bt1)
	Mul(wm1, atm1, btm1)
	Mul(w2, at2, bt2)
	Mul(winf, a2, b2)

	c0 := NewCopy(w0)
	c4 := NewCopy(winf)

	A := New()
	Sub(A, w1, c0)
	Sub(A, A, c4)

	B := New()
	Sub(B, wm1, c0)
	Sub(B, B, c4)

	c16 := New()
	ShiftLeftBits(c16, c4, 4)
	C := New()
	Sub(C, w2, c0)
	Sub(C, C, c16)

	c2 := New()
	Add(c2, A, B)
	exactDivSmall(c2, c2, 2)

	D := New()
	Sub(D, A, B)
	exactDivSmall(D, D, 2)

	twoD := New()
	ShiftLeftBits(twoD, D, 1)
	fourC2 := New()
	ShiftLeftBits(fourC2, c2, 2)
	c3 := New()
	Sub(c3, C, twoD)
	Sub(c3, c3, fourC2)
	exactDivSmall(c3, c3, 6)

	c1 := New()
	Sub(c1, D, c3)

	out := New()
	out.zero()
	addShifted(out, c4, 4*k)
	addShifted(out, c3, 3*k)
	addShifted(out, c2, 2*k)
	addShifted(out, c1, k)
	addShifted(out, c0, 0)
	Exchange(z, out)
}

// splitThree splits the magnitude of x into three non-negative parts of at
// most k limbs each: x == p2*B^2k + p1*B^k + p0.
func splitThree(x *Int, k int) (p0, p1, p2 *Int) {
	p0, rest := splitAt(x, k)
	p1, p2 = splitAt(rest, k)
	return
}

// evalToomPoints evaluates p(t) = p0 + p1*t + p2*t^2 at t = 1, -1, 2.
func evalToomPoints(p0, p1, p2 *Int) (v1, vm1, v2 *Int) {
	v1 = New()
	Add(v1, p0, p1)
	Add(v1, v1, p2)

	vm1 = New()
	Add(vm1, p0, p2)
	Sub(vm1, vm1, p1)

	v2 = New()
	twoP1 := New()
	ShiftLeftBits(twoP1, p1, 1)
	fourP2 := New()
	ShiftLeftBits(fourP2, p2, 2)
	Add(v2, p0, twoP1)
	Add(v2, v2, fourP2)
	return
}

// exactDivSmall sets z = x / d for a small positive d, assuming the division
// is exact (used only where Toom-Cook's algebra guarantees a zero remainder).
func exactDivSmall(z, x *Int, d Word) {
	q, _, err := DivByDigit(x, d)
	if err != nil {
		// d is a compile-time non-zero constant here; this path is
		// unreachable in practice.
		z.zero()
		return
	}
	Exchange(z, q)
}
