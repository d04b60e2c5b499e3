package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/oisee/mpint/pkg/mp"
	"github.com/oisee/mpint/pkg/modexp"
	"github.com/oisee/mpint/pkg/numtheory"
	"github.com/oisee/mpint/pkg/prime"
	"github.com/oisee/mpint/pkg/search"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mpcalc",
		Short: "Multiple-precision arithmetic calculator",
	}

	rootCmd.AddCommand(
		binOpCmd("add", "z = a + b", func(z, a, b *mp.Int) error { mp.Add(z, a, b); return nil }),
		binOpCmd("sub", "z = a - b", func(z, a, b *mp.Int) error { mp.Sub(z, a, b); return nil }),
		binOpCmd("mul", "z = a * b", func(z, a, b *mp.Int) error { mp.Mul(z, a, b); return nil }),
		binOpCmd("div", "z = a / b (truncated)", func(z, a, b *mp.Int) error { return mp.Div(z, nil, a, b) }),
		binOpCmd("mod", "z = a mod b", mp.Mod),
		binOpCmd("gcd", "z = gcd(a, b)", numtheory.GCD),
		binOpCmd("invmod", "z = a^-1 mod b", numtheory.InvMod),
		exptModCmd(),
		isPrimeCmd(),
		nextPrimeCmd(),
		randPrimeCmd(),
		searchCmd(),
		fuzzCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// binOpCmd builds a two-argument subcommand z = f(a, b), the shared shape
// every simple arithmetic op follows.
func binOpCmd(name, short string, f func(z, a, b *mp.Int) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " a b",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			z := mp.New()
			if err := f(z, a, b); err != nil {
				return err
			}
			fmt.Println(formatInt(z))
			return nil
		},
	}
}

func exptModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exptmod g x p",
		Short: "z = g^x mod p",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseArg(args[0])
			if err != nil {
				return err
			}
			x, err := parseArg(args[1])
			if err != nil {
				return err
			}
			p, err := parseArg(args[2])
			if err != nil {
				return err
			}
			z := mp.New()
			if err := modexp.ExptMod(z, g, x, p); err != nil {
				return err
			}
			fmt.Println(formatInt(z))
			return nil
		},
	}
}

func isPrimeCmd() *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "isprime a",
		Short: "Report whether a is probably prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			v, err := prime.IsPrime(a, rounds, cryptoRandSource)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "t", 8, "extra Miller-Rabin rounds (negative = deterministic base set)")
	return cmd
}

func nextPrimeCmd() *cobra.Command {
	var rounds int
	var bbs bool
	cmd := &cobra.Command{
		Use:   "nextprime a",
		Short: "Find the first odd probable prime >= a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			z := mp.New()
			if err := prime.NextPrime(z, a, rounds, bbs); err != nil {
				return err
			}
			fmt.Println(formatInt(z))
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "t", 8, "extra Miller-Rabin rounds")
	cmd.Flags().BoolVar(&bbs, "bbs", false, "require a ≡ 3 mod 4 (Blum-Blum-Shub form)")
	return cmd
}

func randPrimeCmd() *cobra.Command {
	var rounds int
	var flags int
	cmd := &cobra.Command{
		Use:   "randprime bits",
		Short: "Generate a random probable prime of the given bit length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bits int
			if _, err := fmt.Sscanf(args[0], "%d", &bits); err != nil {
				return err
			}
			z, err := prime.RandPrime(bits, prime.RandFlags(flags), rounds, cryptoRandSource)
			if err != nil {
				return err
			}
			fmt.Println(formatInt(z))
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "t", 8, "extra Miller-Rabin rounds")
	cmd.Flags().IntVar(&flags, "flags", 0, "bitmask: 1=2MSB 2=BBS 4=SAFE")
	return cmd
}

func searchCmd() *cobra.Command {
	var rounds, workers int
	var verbose bool
	cmd := &cobra.Command{
		Use:   "search start end",
		Short: "Scan [start, end) for primes across a worker pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseArg(args[0])
			if err != nil {
				return err
			}
			end, err := parseArg(args[1])
			if err != nil {
				return err
			}
			table := search.Run(search.Config{
				Start: start, End: end, Rounds: rounds, NumWorkers: workers, Verbose: verbose,
			})
			for _, h := range table.Hits() {
				fmt.Println(formatInt(h.Value))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "t", 8, "extra Miller-Rabin rounds")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of workers (0 = NumCPU)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	return cmd
}

func cryptoRandSource(buf []byte) (int, error) {
	return rand.Read(buf)
}
