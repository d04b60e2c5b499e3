package numtheory

import (
	"testing"

	"github.com/oisee/mpint/pkg/mp"
)

func mustInt64(v int64) *mp.Int {
	z := mp.New()
	z.SetInt64(v)
	return z
}

func TestGCDSpecExample(t *testing.T) {
	z := mp.New()
	if err := GCD(z, mustInt64(462), mustInt64(1071)); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 21 {
		t.Fatalf("gcd(462,1071) = %d, want 21", z.Int64())
	}
}

func TestGCDWithZero(t *testing.T) {
	z := mp.New()
	GCD(z, mustInt64(0), mustInt64(42))
	if z.Int64() != 42 {
		t.Fatalf("gcd(0,42) = %d, want 42", z.Int64())
	}
	GCD(z, mustInt64(0), mustInt64(0))
	if !z.IsZero() {
		t.Fatal("gcd(0,0) should be 0")
	}
}

func TestLCM(t *testing.T) {
	z := mp.New()
	if err := LCM(z, mustInt64(4), mustInt64(6)); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 12 {
		t.Fatalf("lcm(4,6) = %d, want 12", z.Int64())
	}
}

func TestExtEuclidBezout(t *testing.T) {
	a, b := mustInt64(462), mustInt64(1071)
	u1, u2, u3, err := ExtEuclid(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u3.Int64() != 21 {
		t.Fatalf("gcd via exteuclid = %d, want 21", u3.Int64())
	}
	// check u1*a + u2*b == u3
	check := mp.New()
	t1 := mp.New()
	mp.Mul(t1, u1, a)
	t2 := mp.New()
	mp.Mul(t2, u2, b)
	mp.Add(check, t1, t2)
	if mp.Cmp(check, u3) != mp.Equal {
		t.Fatalf("bezout identity failed: u1*a+u2*b = %d, want %d", check.Int64(), u3.Int64())
	}
}

func TestInvModGeneric(t *testing.T) {
	// 3 * 4 = 12 = 1 mod 11
	z := mp.New()
	if err := InvMod(z, mustInt64(3), mustInt64(11)); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 4 {
		t.Fatalf("invmod(3,11) = %d, want 4", z.Int64())
	}
}

func TestInvModOddFastPath(t *testing.T) {
	m := mustInt64(1000000007)
	a := mustInt64(123456789)
	z := mp.New()
	if err := InvMod(z, a, m); err != nil {
		t.Fatal(err)
	}
	check := mp.New()
	mp.Mul(check, a, z)
	mp.Mod(check, check, m)
	if check.Int64() != 1 {
		t.Fatalf("a * invmod(a,m) mod m = %d, want 1", check.Int64())
	}
}

func TestInvModNoInverse(t *testing.T) {
	z := mp.New()
	err := InvMod(z, mustInt64(4), mustInt64(8))
	if err == nil {
		t.Fatal("expected error: gcd(4,8) != 1")
	}
}

func TestISqrt(t *testing.T) {
	cases := []struct{ x, want int64 }{
		{0, 0},
		{1, 1},
		{15, 3},
		{16, 4},
		{1000000, 1000},
	}
	z := mp.New()
	for _, c := range cases {
		if err := ISqrt(z, mustInt64(c.x)); err != nil {
			t.Fatal(err)
		}
		if z.Int64() != c.want {
			t.Fatalf("isqrt(%d) = %d, want %d", c.x, z.Int64(), c.want)
		}
	}
}

func TestISqrtLarge(t *testing.T) {
	x := mp.New()
	mp.ShiftLeftBits(x, mustInt64(1), 200)
	z := mp.New()
	if err := ISqrt(z, x); err != nil {
		t.Fatal(err)
	}
	sq := mp.New()
	mp.Mul(sq, z, z)
	if mp.CmpMag(sq, x) == mp.Greater {
		t.Fatal("isqrt result squared exceeds x")
	}
	next := mp.New()
	mp.Add(next, z, mustInt64(1))
	mp.Mul(next, next, next)
	if mp.CmpMag(next, x) != mp.Greater {
		t.Fatal("isqrt result is not the floor")
	}
}

func TestNthRoot(t *testing.T) {
	z := mp.New()
	if err := NthRoot(z, mustInt64(1000), 3); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 10 {
		t.Fatalf("nthroot(1000,3) = %d, want 10", z.Int64())
	}
	if err := NthRoot(z, mustInt64(1001), 3); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 10 {
		t.Fatalf("nthroot(1001,3) = %d, want 10 (floor)", z.Int64())
	}
}

func TestJacobiKnownValues(t *testing.T) {
	cases := []struct{ a, n int64; want int }{
		{1, 1, 1},
		{2, 1, 1},
		{5, 21, 1},
		{6, 21, 0},
		{17, 21, 1},
	}
	for _, c := range cases {
		got, err := Jacobi(mustInt64(c.a), mustInt64(c.n))
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("jacobi(%d,%d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}

func TestKroneckerMatchesJacobiForOddPositive(t *testing.T) {
	j, err := Jacobi(mustInt64(5), mustInt64(21))
	if err != nil {
		t.Fatal(err)
	}
	k, err := Kronecker(mustInt64(5), mustInt64(21))
	if err != nil {
		t.Fatal(err)
	}
	if j != k {
		t.Fatalf("kronecker(5,21)=%d disagrees with jacobi=%d", k, j)
	}
}

func TestSqrtModPrimeSpecExample(t *testing.T) {
	z := mp.New()
	if err := SqrtModPrime(z, mustInt64(10), mustInt64(13)); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 6 && z.Int64() != 7 {
		t.Fatalf("sqrtmod_prime(10,13) = %d, want 6 or 7", z.Int64())
	}
	// verify z*z == 10 mod 13
	check := mp.New()
	mp.Mul(check, z, z)
	mp.Mod(check, check, mustInt64(13))
	if check.Int64() != 10 {
		t.Fatalf("sqrt check failed: z^2 mod 13 = %d, want 10", check.Int64())
	}
}

func TestSqrtModPrimeNonResidue(t *testing.T) {
	z := mp.New()
	err := SqrtModPrime(z, mustInt64(2), mustInt64(13))
	if err == nil {
		t.Fatal("2 is not a QR mod 13, expected error")
	}
}

func TestSqrtModPrimePEquals1Mod4(t *testing.T) {
	// p=13, 13 mod 4 == 1, so this exercises the full Tonelli-Shanks path.
	z := mp.New()
	p := mustInt64(13)
	for a := int64(1); a < 13; a++ {
		j, _ := Jacobi(mustInt64(a), p)
		if j != 1 {
			continue
		}
		if err := SqrtModPrime(z, mustInt64(a), p); err != nil {
			t.Fatalf("sqrtmod_prime(%d,13) failed: %v", a, err)
		}
		check := mp.New()
		mp.Mul(check, z, z)
		mp.Mod(check, check, p)
		if check.Int64() != a {
			t.Fatalf("sqrt check failed for a=%d: got z^2 mod 13 = %d", a, check.Int64())
		}
	}
}
