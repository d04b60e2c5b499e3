package mp

import "testing"

func TestDivModBasic(t *testing.T) {
	q, r := New(), New()
	if err := Div(q, r, mustInt64(17), mustInt64(5)); err != nil {
		t.Fatal(err)
	}
	checkEqInt64(t, q, 3)
	checkEqInt64(t, r, 2)
}

func TestDivSignRules(t *testing.T) {
	cases := []struct{ a, b, q, r int64 }{
		{17, 5, 3, 2},
		{-17, 5, -3, -2},
		{17, -5, -3, 2},
		{-17, -5, 3, -2},
	}
	for _, c := range cases {
		q, r := New(), New()
		if err := Div(q, r, mustInt64(c.a), mustInt64(c.b)); err != nil {
			t.Fatal(err)
		}
		checkEqInt64(t, q, c.q)
		checkEqInt64(t, r, c.r)
	}
}

func TestModAlwaysNonNegative(t *testing.T) {
	z := New()
	if err := Mod(z, mustInt64(-17), mustInt64(5)); err != nil {
		t.Fatal(err)
	}
	checkEqInt64(t, z, 3)

	if err := Mod(z, mustInt64(17), mustInt64(-5)); err != nil {
		t.Fatal(err)
	}
	checkEqInt64(t, z, 2)
}

func TestDivByZero(t *testing.T) {
	q := New()
	err := Div(q, nil, mustInt64(1), New())
	if err == nil {
		t.Fatal("expected error dividing by zero")
	}
	if KindOf(err) != InvalidInput {
		t.Fatalf("expected InvalidInput, got %v", KindOf(err))
	}
}

func TestDivLargeMultiLimb(t *testing.T) {
	a := New()
	ShiftLeftBits(a, mustInt64(1), 300)
	b := New()
	ShiftLeftBits(b, mustInt64(1), 150)
	Sub(b, b, mustInt64(1))

	q, r := New(), New()
	if err := Div(q, r, a, b); err != nil {
		t.Fatal(err)
	}
	// verify q*b + r == a
	check := New()
	Mul(check, q, b)
	Add(check, check, r)
	if Cmp(check, a) != Equal {
		t.Fatal("q*b + r != a")
	}
	if CmpMag(r, b) != Less {
		t.Fatal("|r| >= |b|")
	}
}

func TestDivByDigit(t *testing.T) {
	a := New()
	ShiftLeftBits(a, mustInt64(1), 200)
	q, r, err := DivByDigit(a, 3)
	if err != nil {
		t.Fatal(err)
	}
	check := New()
	MulByWord(check, q, 3)
	Add(check, check, mustInt64(int64(r)))
	if Cmp(check, a) != Equal {
		t.Fatal("q*3 + r != a")
	}
}
