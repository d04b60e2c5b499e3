package reduce

import (
	"testing"

	"github.com/oisee/mpint/pkg/mp"
)

func mustInt64(v int64) *mp.Int {
	z := mp.New()
	z.SetInt64(v)
	return z
}

func modPowNaive(base, exp, mod *mp.Int) *mp.Int {
	result := mustInt64(1)
	b := mp.New()
	mp.Mod(b, base, mod)
	e := mp.NewCopy(exp)
	two := mustInt64(2)
	zero := mp.New()
	for mp.Cmp(e, zero) != mp.Equal {
		bit := mp.New()
		mp.Mod(bit, e, two)
		if bit.Uint64() == 1 {
			mp.Mul(result, result, b)
			mp.Mod(result, result, mod)
		}
		mp.Mul(b, b, b)
		mp.Mod(b, b, mod)
		mp.Div(e, nil, e, two)
	}
	return result
}

func TestBarrettReduce(t *testing.T) {
	m := mustInt64(1000000007)
	ctx, err := NewBarrett(m)
	if err != nil {
		t.Fatal(err)
	}
	x := mustInt64(0)
	mp.Mul(x, mustInt64(999999999), mustInt64(999999999))
	z := mp.New()
	if err := ctx.Reduce(z, x); err != nil {
		t.Fatal(err)
	}
	want := mp.New()
	mp.Mod(want, x, m)
	if mp.Cmp(z, want) != mp.Equal {
		t.Fatalf("barrett reduce mismatch: got %v want %v", z.Uint64(), want.Uint64())
	}
}

func TestMontgomeryReduceRoundTrip(t *testing.T) {
	m := mustInt64(1000000007)
	ctx, err := NewMontgomery(m)
	if err != nil {
		t.Fatal(err)
	}
	r := mp.New()
	ctx.Normalize(r)

	x := mustInt64(12345)
	// move x into the Montgomery domain: xR mod m, via reduction of x*R*R.
	xr := mp.New()
	mp.Mul(xr, x, r)
	mp.Mul(xr, xr, r)
	mont := mp.New()
	if err := ctx.Reduce(mont, xr); err != nil {
		t.Fatal(err)
	}
	back := mp.New()
	if err := ctx.Reduce(back, mont); err != nil {
		t.Fatal(err)
	}
	if mp.Cmp(back, x) != mp.Equal {
		t.Fatalf("montgomery round trip mismatch: got %v want %v", back.Uint64(), x.Uint64())
	}
}

func TestDRReduce(t *testing.T) {
	// m = B^2 - 1 (B = 2^LimbBits) is DR-eligible with c=1.
	m := mp.New()
	mp.ShiftLeftBits(m, mustInt64(1), 2*mp.LimbBits)
	mp.Sub(m, m, mustInt64(1))
	if !IsDRModulus(m) {
		t.Fatal("B^2 - 1 should be DR-eligible")
	}
	ctx, err := NewDR(m)
	if err != nil {
		t.Fatal(err)
	}
	x := mp.New()
	mp.Mul(x, m, m)
	mp.Add(x, x, mustInt64(12345))
	z := mp.New()
	if err := ctx.Reduce(z, x); err != nil {
		t.Fatal(err)
	}
	want := mp.New()
	mp.Mod(want, x, m)
	if mp.Cmp(z, want) != mp.Equal {
		t.Fatalf("DR reduce mismatch: got %v want %v", z.Uint64(), want.Uint64())
	}
}

func TestPow2Reduce(t *testing.T) {
	// m = 2^32 - 5.
	m := mp.New()
	mp.ShiftLeftBits(m, mustInt64(1), 32)
	mp.Sub(m, m, mustInt64(5))
	if !Is2k(m) {
		t.Fatal("2^32 - 5 should be Pow2-eligible")
	}
	ctx, err := NewPow2(m)
	if err != nil {
		t.Fatal(err)
	}
	x := mp.New()
	mp.Mul(x, m, mustInt64(7))
	mp.Add(x, x, mustInt64(999))
	z := mp.New()
	if err := ctx.Reduce(z, x); err != nil {
		t.Fatal(err)
	}
	want := mp.New()
	mp.Mod(want, x, m)
	if mp.Cmp(z, want) != mp.Equal {
		t.Fatalf("pow2 reduce mismatch: got %v want %v", z.Uint64(), want.Uint64())
	}
}

func TestPow2LargeReduce(t *testing.T) {
	// m = 2^64 - 2^40 - 1: k = 2^40 + 1 does not fit a single limb but is
	// small relative to m.
	m := mp.New()
	mp.ShiftLeftBits(m, mustInt64(1), 64)
	sub := mp.New()
	mp.ShiftLeftBits(sub, mustInt64(1), 40)
	mp.Add(sub, sub, mustInt64(1))
	mp.Sub(m, m, sub)
	if !Is2kLarge(m) {
		t.Fatal("m should be Pow2Large-eligible")
	}
	ctx, err := NewPow2Large(m)
	if err != nil {
		t.Fatal(err)
	}
	x := mp.New()
	mp.Mul(x, m, mustInt64(3))
	mp.Add(x, x, mustInt64(42))
	z := mp.New()
	if err := ctx.Reduce(z, x); err != nil {
		t.Fatal(err)
	}
	want := mp.New()
	mp.Mod(want, x, m)
	if mp.Cmp(z, want) != mp.Equal {
		t.Fatalf("pow2large reduce mismatch: got %v want %v", z.Uint64(), want.Uint64())
	}
}
