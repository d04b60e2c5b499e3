package mp

// Ordering mirrors the three-way result of a comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// CmpMag compares |a| and |b|: by limb count first, then limb-by-limb from
// the most significant limb down (spec.md §4.B).
func CmpMag(a, b *Int) Ordering {
	if a.used != b.used {
		if a.used < b.used {
			return Less
		}
		return Greater
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.digits[i] != b.digits[i] {
			if a.digits[i] < b.digits[i] {
				return Less
			}
			return Greater
		}
	}
	return Equal
}

// Cmp compares a and b as signed values.
func Cmp(a, b *Int) Ordering {
	if a.sign != b.sign {
		if a.sign == Negative {
			return Less
		}
		return Greater
	}
	c := CmpMag(a, b)
	if a.sign == Negative {
		return -c
	}
	return c
}

// CmpDigit compares a against a small non-negative scalar d. It takes a
// fixed path independent of a's magnitude whenever a does not fit in one
// limb, which is the constant-time shortcut spec.md §4.B calls for.
func CmpDigit(a *Int, d Word) Ordering {
	if a.sign == Negative {
		return Less
	}
	if a.used > 1 {
		return Greater
	}
	if a.used == 0 {
		if d == 0 {
			return Equal
		}
		return Less
	}
	av := a.digits[0]
	switch {
	case av < d:
		return Less
	case av > d:
		return Greater
	default:
		return Equal
	}
}
