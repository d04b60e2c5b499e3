package mp

// ShiftLeftDigits sets z = x * B^n by prepending n zero limbs to x's
// magnitude. For n <= 0 it copies x into z.
func ShiftLeftDigits(z, x *Int, n int) *Int {
	if n <= 0 {
		z.CopyFrom(x)
		return z
	}
	t := New()
	_ = t.grow(x.used + n)
	for i := 0; i < n; i++ {
		t.digits[i] = 0
	}
	for i := 0; i < x.used; i++ {
		t.digits[n+i] = x.digits[i]
	}
	t.used = x.used + n
	t.sign = x.sign
	t.clamp()
	Exchange(z, t)
	return z
}

// ShiftRightDigits sets z = x / B^n (truncating) by dropping the n
// least-significant limbs of x's magnitude. For n <= 0 it copies x into z.
func ShiftRightDigits(z, x *Int, n int) *Int {
	if n <= 0 {
		z.CopyFrom(x)
		return z
	}
	t := New()
	if n >= x.used {
		t.zero()
		Exchange(z, t)
		return z
	}
	nu := x.used - n
	_ = t.grow(nu)
	for i := 0; i < nu; i++ {
		t.digits[i] = x.digits[n+i]
	}
	t.used = nu
	t.sign = x.sign
	t.clamp()
	Exchange(z, t)
	return z
}

// ShiftLeftBits sets z = x << b (bit shift, b >= 0), with intra-limb carry.
func ShiftLeftBits(z, x *Int, b uint) *Int {
	if x.used == 0 || b == 0 {
		z.CopyFrom(x)
		return z
	}
	digitShift := int(b / LimbBits)
	bitShift := b % LimbBits

	t := New()
	_ = t.grow(x.used + digitShift + 1)
	for i := 0; i < digitShift; i++ {
		t.digits[i] = 0
	}
	if bitShift == 0 {
		for i := 0; i < x.used; i++ {
			t.digits[digitShift+i] = x.digits[i]
		}
		t.used = x.used + digitShift
	} else {
		var carry Word
		i := 0
		for ; i < x.used; i++ {
			v := x.digits[i]
			t.digits[digitShift+i] = ((v << bitShift) | carry) & LimbMask
			carry = v >> (LimbBits - bitShift)
		}
		t.digits[digitShift+i] = carry
		t.used = x.used + digitShift + 1
	}
	t.sign = x.sign
	t.clamp()
	Exchange(z, t)
	return z
}

// ShiftRightBits sets z = x >> b (bit shift, b >= 0, truncating toward zero
// in magnitude). If rem is non-nil, it receives the bits shifted out, as
// computed by ModPow2(rem, x, b): the low b bits of |x|, carrying x's sign.
// This matches the optional second output spec.md §4.C requires.
func ShiftRightBits(z, x *Int, b uint, rem *Int) *Int {
	if rem != nil {
		ModPow2(rem, x, b)
	}
	if x.used == 0 || b == 0 {
		z.CopyFrom(x)
		return z
	}
	digitShift := int(b / LimbBits)
	bitShift := b % LimbBits

	t := New()
	if digitShift >= x.used {
		t.zero()
		Exchange(z, t)
		return z
	}
	nu := x.used - digitShift
	_ = t.grow(nu)
	if bitShift == 0 {
		for i := 0; i < nu; i++ {
			t.digits[i] = x.digits[digitShift+i]
		}
	} else {
		for i := 0; i < nu; i++ {
			lo := x.digits[digitShift+i] >> bitShift
			var hi Word
			if digitShift+i+1 < x.used {
				hi = x.digits[digitShift+i+1] << (LimbBits - bitShift)
			}
			t.digits[i] = (lo | hi) & LimbMask
		}
	}
	t.used = nu
	t.sign = x.sign
	t.clamp()
	Exchange(z, t)
	return z
}

// ModPow2 sets z to the low k bits of |x|, with x's sign (so a non-zero
// result for negative x is negative). It is the mask used internally by
// ShiftRightBits and externally as the mod-2^k small-integer op (spec.md §4.E).
func ModPow2(z, x *Int, k uint) *Int {
	if k == 0 || x.used == 0 {
		z.zero()
		return z
	}
	fullLimbs := int(k / LimbBits)
	remBits := k % LimbBits
	n := fullLimbs
	if remBits != 0 {
		n++
	}
	if n > x.used {
		n = x.used
	}
	t := New()
	_ = t.grow(n)
	for i := 0; i < n; i++ {
		t.digits[i] = x.digits[i]
	}
	if remBits != 0 && fullLimbs < n {
		t.digits[fullLimbs] &= (Word(1) << remBits) - 1
	}
	t.used = n
	t.sign = x.sign
	t.clamp()
	Exchange(z, t)
	return z
}
