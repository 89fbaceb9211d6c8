package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigint"
)

// resolveColor reads the persistent --color flag, applies it to the
// process-wide color switch, and reports whether output is colorized.
func resolveColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "auto", "on", "off":
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor
	return useColor, nil
}

func isQuiet(cmd *cobra.Command) (bool, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return false, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	return quiet, nil
}

// formatInBase renders v in the requested radix; 0 means decimal.
func formatInBase(v bigint.Integer, base int64) (string, error) {
	if base == 0 || base == 10 {
		return v.String(), nil
	}
	return v.Text(bigint.FromInt64(base))
}
