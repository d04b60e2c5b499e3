// Package prime implements the primality-testing engine: trial division,
// Fermat, Miller-Rabin, strong Lucas-Selfridge, Frobenius (Underwood), and
// the composite BPSW-style IsPrime decision procedure (spec.md §4.I).
package prime

import "github.com/oisee/mpint/pkg/mp"

// Verdict is the ternary result every component subroutine returns.
type Verdict int

const (
	Composite Verdict = iota
	ProbablyPrime
)

func (v Verdict) String() string {
	if v == ProbablyPrime {
		return "probably-prime"
	}
	return "composite"
}

func errInvalid(op string) error {
	return &mp.Error{Op: op, Kind: mp.InvalidInput}
}

func errIterationLimit(op string) error {
	return &mp.Error{Op: op, Kind: mp.IterationLimit}
}

// smallPrimes holds the first 256 odd primes, sieved once at package init
// and used by TrialDivide (spec.md §4.I step 2).
var smallPrimes []mp.Word

func init() {
	const limit = 2000
	sieve := make([]bool, limit+1)
	var primes []int
	for n := 2; n <= limit; n++ {
		if sieve[n] {
			continue
		}
		primes = append(primes, n)
		for m := n * n; m <= limit; m += n {
			sieve[m] = true
		}
	}
	for _, p := range primes {
		if p == 2 {
			continue
		}
		smallPrimes = append(smallPrimes, mp.Word(p))
		if len(smallPrimes) == 256 {
			break
		}
	}
}

// TrialDivide checks a against the first 256 odd primes. It reports
// Composite if some table prime divides a and a is not itself that prime;
// decided is false when no table prime resolves the question either way.
func TrialDivide(a *mp.Int) (verdict Verdict, decided bool) {
	for _, p := range smallPrimes {
		if mp.CmpDigit(a, p) == mp.Equal {
			return ProbablyPrime, true
		}
		_, rem, err := mp.DivByDigit(a, p)
		if err != nil {
			continue
		}
		if rem == 0 {
			return Composite, true
		}
	}
	return Composite, false
}
