package mp

import "math/bits"

// Div computes a / b with normalized long division (spec.md §4.E): if q is
// non-nil it receives the quotient, if r is non-nil it receives the
// remainder. Either may be nil when the caller only wants the other. On
// success sign(q) = sign(a) XOR sign(b) and sign(r) = sign(a), with
// 0 <= |r| < |b|.
func Div(q, r, a, b *Int) error {
	if b.used == 0 {
		return newError("mp.Div", InvalidInput)
	}
	if CmpMag(a, b) == Less {
		if q != nil {
			q.zero()
		}
		if r != nil {
			r.CopyFrom(a)
		}
		return nil
	}

	qm, rm := divMagnitude(a, b)

	if q != nil {
		q.CopyFrom(qm)
		if a.sign != b.sign {
			q.sign = Negative
		} else {
			q.sign = NonNegative
		}
		q.clamp()
	}
	if r != nil {
		r.CopyFrom(rm)
		r.sign = a.sign
		r.clamp()
	}
	return nil
}

// Mod is Div's wrapper that always returns 0 <= r < |b|, adding |b| to the
// remainder when it is non-zero and negative, i.e. when a is negative
// (spec.md §4.E step 6).
func Mod(z, a, b *Int) error {
	if b.used == 0 {
		return newError("mp.Mod", InvalidInput)
	}
	r := New()
	if err := Div(nil, r, a, b); err != nil {
		return err
	}
	if r.used != 0 && r.sign == Negative {
		Add(r, r, absInt(b))
	}
	Exchange(z, r)
	return nil
}

func absInt(x *Int) *Int {
	t := NewCopy(x)
	t.sign = NonNegative
	return t
}

// divMagnitude computes |a| / |b| -> (quotient, remainder), both
// non-negative, via Knuth's Algorithm D: estimate each quotient limb from
// the top two limbs of the working remainder and the divisor's top limb,
// correcting by at most two subtractions (spec.md §4.E).
func divMagnitude(a, b *Int) (qm, rm *Int) {
	n := a.used
	m := b.used

	if m == 1 {
		qm = New()
		_ = qm.grow(n)
		var rem Accumulator
		d := Accumulator(b.digits[0])
		for i := n - 1; i >= 0; i-- {
			cur := rem<<LimbBits | Accumulator(a.digits[i])
			qm.digits[i] = Word(cur / d)
			rem = cur % d
		}
		qm.used = n
		qm.clamp()
		rm = New()
		rm.SetUint64(uint64(rem))
		return
	}

	shift := uint(LimbBits - bits.Len32(uint32(b.digits[m-1])))

	un := New()
	ShiftLeftBits(un, a, shift)
	_ = un.grow(n + 1)
	for i := un.used; i < n+1; i++ {
		un.digits[i] = 0
	}
	unDigits := un.digits

	vn := New()
	ShiftLeftBits(vn, b, shift)
	_ = vn.grow(m)
	vnDigits := vn.digits[:m]

	qlen := n - m + 1
	qm = New()
	_ = qm.grow(qlen)

	vTop := Accumulator(vnDigits[m-1])
	vTop2 := Accumulator(vnDigits[m-2])
	maxDigit := Accumulator(LimbMask)

	for j := qlen - 1; j >= 0; j-- {
		num := Accumulator(unDigits[j+m])<<LimbBits | Accumulator(unDigits[j+m-1])
		qhat := num / vTop
		rhat := num % vTop

		for {
			over := qhat > maxDigit
			if !over {
				over = qhat*vTop2 > (rhat<<LimbBits | Accumulator(unDigits[j+m-2]))
			}
			if !over {
				break
			}
			qhat--
			rhat += vTop
			if rhat > maxDigit {
				break
			}
		}

		var borrow, carry Accumulator
		for i := 0; i < m; i++ {
			p := qhat*Accumulator(vnDigits[i]) + carry
			carry = p >> LimbBits
			sub := Accumulator(unDigits[j+i]) - (p & maxDigit) - borrow
			if sub>>63 != 0 {
				unDigits[j+i] = Word(sub+maxDigit+1) & LimbMask
				borrow = 1
			} else {
				unDigits[j+i] = Word(sub) & LimbMask
				borrow = 0
			}
		}
		top := Accumulator(unDigits[j+m]) - carry - borrow
		if top>>63 != 0 {
			// qhat was one too large: add the divisor back.
			qhat--
			var addCarry Accumulator
			for i := 0; i < m; i++ {
				s := Accumulator(unDigits[j+i]) + Accumulator(vnDigits[i]) + addCarry
				unDigits[j+i] = Word(s) & LimbMask
				addCarry = s >> LimbBits
			}
			unDigits[j+m] = Word((top+maxDigit+1+addCarry)&Accumulator(LimbMask)) & LimbMask
		} else {
			unDigits[j+m] = Word(top) & LimbMask
		}
		qm.digits[j] = Word(qhat) & LimbMask
	}
	qm.used = qlen
	qm.clamp()

	remRaw := New()
	_ = remRaw.grow(m)
	copy(remRaw.digits[:m], unDigits[:m])
	remRaw.used = m
	remRaw.clamp()
	rm = New()
	ShiftRightBits(rm, remRaw, shift, nil)
	return
}

// DivByDigit divides x by a single-limb scalar d, a specialized one-pass
// long division (spec.md §4.E). Sign follows x; d must be non-zero.
func DivByDigit(x *Int, d Word) (q *Int, r Word, err error) {
	if d == 0 {
		return nil, 0, newError("mp.DivByDigit", InvalidInput)
	}
	q = New()
	_ = q.grow(x.used)
	var rem Accumulator
	dd := Accumulator(d & LimbMask)
	for i := x.used - 1; i >= 0; i-- {
		cur := rem<<LimbBits | Accumulator(x.digits[i])
		q.digits[i] = Word(cur / dd)
		rem = cur % dd
	}
	q.used = x.used
	q.sign = x.sign
	q.clamp()
	return q, Word(rem), nil
}
