package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bigint"
)

var primeCmd = &cobra.Command{
	Use:   "prime [flags] <value ...>",
	Short: "Test values for primality",
	Long: "Test one or more integers for primality.\n" +
		"Values are checked in parallel and reported in input order.",
	Args: cobra.MinimumNArgs(1),
	RunE: runPrime,
}

func init() {
	primeCmd.Flags().Bool("probable", false, "use randomized Miller-Rabin rounds instead of the fixed schedule")
	primeCmd.Flags().Int("rounds", 0, "rounds for --probable (0 = default of 5)")
	primeCmd.Flags().Bool("strict", false, "raise the witness count to the GRH-sufficient bound")
	primeCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
}

// primeVerdict содержит результат проверки одного значения
type primeVerdict struct {
	value string
	prime bool
	err   error
}

func runPrime(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	probable, err := cmd.Flags().GetBool("probable")
	if err != nil {
		return fmt.Errorf("failed to get probable flag: %w", err)
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		return fmt.Errorf("failed to get rounds flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := isQuiet(cmd)
	if err != nil {
		return err
	}
	if _, err := resolveColor(cmd); err != nil {
		return err
	}
	if !cmd.Flags().Changed("rounds") {
		cfg, ok, err := loadConfig(".")
		if err != nil {
			return err
		}
		if ok && cfg.Prime.Rounds != 0 {
			rounds = cfg.Prime.Rounds
		}
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	verdicts := make([]primeVerdict, len(args))

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))

	for i, arg := range args {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			v, err := bigint.Parse(arg)
			if err != nil {
				verdicts[i] = primeVerdict{value: arg, err: err}
				return nil
			}
			var prime bool
			switch {
			case probable:
				prime = v.IsProbablePrime(rounds)
			case strict:
				prime = v.IsPrimeStrict()
			default:
				prime = v.IsPrime()
			}
			verdicts[i] = primeVerdict{value: arg, prime: prime}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	primeLabel := "prime"
	if probable {
		primeLabel = "probably prime"
	}
	primeText := color.New(color.FgGreen, color.Bold).Sprint(primeLabel)
	compositeText := color.New(color.FgRed).Sprint("composite")

	out := cmd.OutOrStdout()
	bad := 0
	for _, verdict := range verdicts {
		if verdict.err != nil {
			bad++
			fmt.Fprintf(cmd.ErrOrStderr(), "bigint: %s: %v\n", verdict.value, verdict.err)
			continue
		}
		label := compositeText
		if verdict.prime {
			label = primeText
		}
		if quiet {
			fmt.Fprintln(out, label)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", verdict.value, label)
	}
	if bad > 0 {
		return fmt.Errorf("failed to parse %d of %d values", bad, len(args))
	}
	return nil
}
