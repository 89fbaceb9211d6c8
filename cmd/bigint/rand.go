package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"bigint"
)

var randCmd = &cobra.Command{
	Use:   "rand [flags] <min> <max>",
	Short: "Draw uniform random integers from a range",
	Long: "Draw uniform random integers from [min, max], bounds included.\n" +
		"The bounds may be given in either order and may be arbitrarily large.",
	Args: cobra.ExactArgs(2),
	RunE: runRand,
}

func init() {
	randCmd.Flags().Int("count", 1, "how many values to draw")
	randCmd.Flags().Uint64("seed", 0, "seed for a reproducible sequence")
}

func runRand(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return fmt.Errorf("failed to get count flag: %w", err)
	}
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return fmt.Errorf("failed to get seed flag: %w", err)
	}
	if _, err := resolveColor(cmd); err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}

	lo, err := bigint.Parse(args[0])
	if err != nil {
		return err
	}
	hi, err := bigint.Parse(args[1])
	if err != nil {
		return err
	}

	draw := bigint.RandBetween
	if cmd.Flags().Changed("seed") {
		rng := rand.New(rand.NewPCG(seed, seed))
		draw = func(min, max bigint.Integer) bigint.Integer {
			return bigint.RandBetweenFrom(rng, min, max)
		}
	}

	out := cmd.OutOrStdout()
	for range count {
		fmt.Fprintln(out, draw(lo, hi))
	}
	return nil
}
