package main

import (
	"fmt"

	"github.com/oisee/mpint/pkg/fuzz"
	"github.com/spf13/cobra"
)

func fuzzCmd() *cobra.Command {
	var iterations, maxBits int
	var seed int64
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Cross-check pkg/mp against math/big over random operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			findings := fuzz.Run(iterations, uint64(seed), maxBits)
			if len(findings) == 0 {
				fmt.Printf("%d iterations, no disagreements\n", iterations)
				return nil
			}
			for _, f := range findings {
				fmt.Printf("FAIL %s: %s\n", f.Op, f.Problem)
			}
			return fmt.Errorf("%d disagreements out of %d iterations", len(findings), iterations)
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "number of random operations to try")
	cmd.Flags().IntVar(&maxBits, "max-bits", 2048, "maximum operand bit length")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PCG seed")
	return cmd
}
