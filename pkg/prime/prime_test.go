package prime

import (
	"math/big"
	"testing"

	"github.com/oisee/mpint/pkg/mp"
)

func mustInt64(v int64) *mp.Int {
	z := mp.New()
	z.SetInt64(v)
	return z
}

// mustDecimal builds an *mp.Int from a decimal literal wider than int64, via
// the same bit-by-bit math/big bridge cmd/mpcalc uses for its own argument
// parsing (pkg/mp deliberately carries no radix conversion, spec.md §1).
func mustDecimal(t *testing.T, s string) *mp.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("not a decimal integer: %q", s)
	}
	z := mp.New()
	for i := b.BitLen() - 1; i >= 0; i-- {
		mp.ShiftLeftBits(z, z, 1)
		if b.Bit(i) == 1 {
			mp.SetBit(z, z, 0, 1)
		}
	}
	return z
}

func TestTrialDivide(t *testing.T) {
	v, decided := TrialDivide(mustInt64(97))
	if !decided || v != ProbablyPrime {
		t.Fatalf("97 should be decided prime by trial division")
	}
	v, decided = TrialDivide(mustInt64(91)) // 7*13
	if !decided || v != Composite {
		t.Fatalf("91 should be decided composite by trial division")
	}
}

func TestFermat(t *testing.T) {
	v, err := Fermat(mustInt64(97), mustInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("fermat(97,2) should be probably-prime")
	}
	v, err = Fermat(mustInt64(91), mustInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("fermat(91,2) should be composite")
	}
}

func TestMillerRabin(t *testing.T) {
	v, err := MillerRabin(mustInt64(97), mustInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("millerrabin(97,2) should be probably-prime")
	}
	// 341 = 11*31 is a Fermat pseudoprime to base 2 but not a strong one.
	v, err = MillerRabin(mustInt64(341), mustInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("millerrabin(341,2) should detect compositeness")
	}
}

func TestLucasSelfridge(t *testing.T) {
	v, err := LucasSelfridge(mustInt64(97))
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("lucas-selfridge(97) should be probably-prime")
	}
	v, err = LucasSelfridge(mustInt64(341))
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("lucas-selfridge(341) should be composite")
	}
}

func TestFrobenius(t *testing.T) {
	v, err := Frobenius(mustInt64(97))
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("frobenius(97) should be probably-prime")
	}
	v, err = Frobenius(mustInt64(341))
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("frobenius(341) should be composite")
	}
}

func TestIsPrimeSmallCases(t *testing.T) {
	cases := []struct {
		n    int64
		want Verdict
	}{
		{0, Composite},
		{1, Composite},
		{2, ProbablyPrime},
		{3, ProbablyPrime},
		{4, Composite},
		{97, ProbablyPrime},
		{1000000007, ProbablyPrime},
		{341, Composite},
		{561, Composite}, // Carmichael number
	}
	for _, c := range cases {
		v, err := IsPrime(mustInt64(c.n), 8, nil)
		if err != nil {
			t.Fatal(err)
		}
		if v != c.want {
			t.Fatalf("is_prime(%d) = %v, want %v", c.n, v, c.want)
		}
	}
}

func TestIsPrimeMersenne89(t *testing.T) {
	x := mp.New()
	mp.ShiftLeftBits(x, mustInt64(1), 89)
	mp.Sub(x, x, mustInt64(1))
	v, err := IsPrime(x, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("2^89-1 should be probably-prime")
	}
}

func TestIsPrimeMersenne67Composite(t *testing.T) {
	x := mp.New()
	mp.ShiftLeftBits(x, mustInt64(1), 67)
	mp.Sub(x, x, mustInt64(1))
	v, err := IsPrime(x, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("2^67-1 should be composite")
	}
}

func TestIsPrimeDeterministicNegativeT(t *testing.T) {
	v, err := IsPrime(mustInt64(97), -1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("deterministic base set should confirm 97 prime")
	}
}

func TestNextPrimeSpecExamples(t *testing.T) {
	z := mp.New()
	if err := NextPrime(z, mustInt64(100), 4, false); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 101 {
		t.Fatalf("next_prime(100,4,false) = %d, want 101", z.Int64())
	}
	if err := NextPrime(z, mustInt64(100), 4, true); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 103 {
		t.Fatalf("next_prime(100,4,true) = %d, want 103", z.Int64())
	}
}

func TestRandPrimeBasic(t *testing.T) {
	seed := byte(1)
	rnd := func(buf []byte) (int, error) {
		for i := range buf {
			seed = seed*29 + 7
			buf[i] = seed
		}
		return len(buf), nil
	}
	for trial := 0; trial < 3; trial++ {
		z, err := RandPrime(64, 0, 8, rnd)
		if err != nil {
			t.Fatal(err)
		}
		if mp.BitLen(z) != 64 {
			t.Fatalf("randprime bit length = %d, want 64", mp.BitLen(z))
		}
		v, err := IsPrime(z, 8, rnd)
		if err != nil {
			t.Fatal(err)
		}
		if v != ProbablyPrime {
			t.Fatal("randprime result did not pass IsPrime")
		}
	}
}

// TestLucasSelfridgeMultiLimb exercises lucasUV past a single 28-bit limb,
// where the Lucas index d = (a+1)/2^s no longer fits in a machine int.
func TestLucasSelfridgeMultiLimb(t *testing.T) {
	p128 := mustDecimal(t, "258985507362441370122387459197868438613")
	if mp.BitLen(p128) <= 64 {
		t.Fatalf("fixture is only %d bits, want >64", mp.BitLen(p128))
	}
	v, err := LucasSelfridge(p128)
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("lucas-selfridge(128-bit prime) should be probably-prime")
	}

	// 318665857834031151167461 = 399165290221 * 798330580441 is the smallest
	// known strong pseudoprime simultaneously to the first 12 prime
	// Miller-Rabin bases (OEIS A014233); it survives MR{2,3} so this is the
	// case that actually requires a correctly-walked Lucas index to catch.
	composite := mustDecimal(t, "318665857834031151167461")
	if mp.BitLen(composite) <= 64 {
		t.Fatalf("fixture is only %d bits, want >64", mp.BitLen(composite))
	}
	v, err = LucasSelfridge(composite)
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("lucas-selfridge(318665857834031151167461) should be composite")
	}
}

// TestIsPrimeMultiLimbSurvivesMRBases confirms IsPrime itself, not just the
// Lucas leg in isolation, rejects a composite past the MR{2,3} stage.
func TestIsPrimeMultiLimbSurvivesMRBases(t *testing.T) {
	composite := mustDecimal(t, "318665857834031151167461")
	for _, base := range []int64{2, 3, 5, 7, 11, 13} {
		v, err := MillerRabin(composite, mustInt64(base))
		if err != nil {
			t.Fatal(err)
		}
		if v != ProbablyPrime {
			t.Fatalf("millerrabin(318665857834031151167461, %d) should not detect compositeness", base)
		}
	}
	v, err := IsPrime(composite, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != Composite {
		t.Fatal("is_prime(318665857834031151167461) should be composite via the Lucas leg")
	}

	p128 := mustDecimal(t, "258985507362441370122387459197868438613")
	v, err = IsPrime(p128, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != ProbablyPrime {
		t.Fatal("is_prime(128-bit prime) should be probably-prime")
	}
}

func TestRandPrimeBBS(t *testing.T) {
	seed := byte(5)
	rnd := func(buf []byte) (int, error) {
		for i := range buf {
			seed = seed*31 + 11
			buf[i] = seed
		}
		return len(buf), nil
	}
	z, err := RandPrime(64, RandBBS, 8, rnd)
	if err != nil {
		t.Fatal(err)
	}
	r4 := mp.New()
	mp.ModPow2(r4, z, 2)
	if r4.Int64() != 3 {
		t.Fatalf("BBS prime should be 3 mod 4, got %d mod 4", r4.Int64())
	}
}
