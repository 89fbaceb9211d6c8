package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bigint/internal/calc"
	"bigint/internal/observ"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <expression ...>",
	Short: "Evaluate an integer expression",
	Long: "Evaluate integer expressions of arbitrary size.\n" +
		"Statements are separated by ';' and the value of the last one is printed.\n" +
		"Put '--' before an expression that starts with a minus sign:\n" +
		"  bigint eval -- -5 + 3",
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Int64("base", 10, "output base (2..36)")
}

func runEval(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	base, err := cmd.Flags().GetInt64("base")
	if err != nil {
		return fmt.Errorf("failed to get base flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if _, err := resolveColor(cmd); err != nil {
		return err
	}
	if !cmd.Flags().Changed("base") {
		cfg, ok, err := loadConfig(".")
		if err != nil {
			return err
		}
		if ok && cfg.Output.Base != 0 {
			base = cfg.Output.Base
		}
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}

	src := strings.Join(args, " ")

	scanIdx := begin("scan")
	toks, err := calc.Scan(src)
	scanNote := ""
	if timer != nil && err == nil {
		scanNote = fmt.Sprintf("tokens=%d", len(toks))
	}
	end(scanIdx, scanNote)
	if err != nil {
		return err
	}

	parseIdx := begin("parse")
	prog, err := calc.Parse(toks)
	parseNote := ""
	if timer != nil && err == nil {
		parseNote = fmt.Sprintf("stmts=%d", len(prog))
	}
	end(parseIdx, parseNote)
	if err != nil {
		return err
	}

	evalIdx := begin("eval")
	res, err := calc.NewEnv().Run(prog)
	end(evalIdx, "")
	if err != nil {
		return err
	}

	formatIdx := begin("format")
	out, err := formatInBase(res, base)
	end(formatIdx, "")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}
