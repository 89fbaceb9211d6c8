package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigint"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <value>",
	Short: "Convert a value between bases",
	Long: "Convert an integer from one base to another.\n" +
		"Bases may be negative or below two; digits outside 0-9a-z are\n" +
		"written as bracketed decimal values, e.g. <41>12 in base 42.",
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Int64("from", 10, "input base")
	convertCmd.Flags().Int64("to", 10, "output base")
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	from, err := cmd.Flags().GetInt64("from")
	if err != nil {
		return fmt.Errorf("failed to get from flag: %w", err)
	}
	to, err := cmd.Flags().GetInt64("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	if _, err := resolveColor(cmd); err != nil {
		return err
	}

	v, err := bigint.ParseBase(args[0], bigint.FromInt64(from))
	if err != nil {
		return err
	}
	out, err := v.Text(bigint.FromInt64(to))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
