package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bigint"
	"bigint/internal/calc"
	"bigint/internal/session"
	"bigint/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Start an interactive calculator session",
	Long: "Start an interactive session. Variables, the last result, and\n" +
		"input history survive restarts unless persistence is disabled.",
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Int64("base", 10, "output base (2..36)")
	replCmd.Flags().Bool("no-persist", false, "do not load or save session state")
	replCmd.Flags().Bool("reset", false, "discard the saved session before starting")
	replCmd.Flags().String("ui", "auto", "interactive interface (auto|on|off)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	base, err := cmd.Flags().GetInt64("base")
	if err != nil {
		return fmt.Errorf("failed to get base flag: %w", err)
	}
	noPersist, err := cmd.Flags().GetBool("no-persist")
	if err != nil {
		return fmt.Errorf("failed to get no-persist flag: %w", err)
	}
	reset, err := cmd.Flags().GetBool("reset")
	if err != nil {
		return fmt.Errorf("failed to get reset flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	if _, err := resolveColor(cmd); err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cfg, haveCfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	if haveCfg && !cmd.Flags().Changed("base") && cfg.Output.Base != 0 {
		base = cfg.Output.Base
	}
	persist := !noPersist
	if persist && haveCfg && cfg.Repl.Persist != nil {
		persist = *cfg.Repl.Persist
	}
	historyLimit := 500
	if haveCfg && cfg.Repl.History > 0 {
		historyLimit = cfg.Repl.History
	}

	env := calc.NewEnv()
	var store *session.Store
	var history []string
	if persist || reset {
		// Недоступное хранилище не должно ломать сам REPL
		store, err = session.Open("bigint")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "bigint: session store unavailable: %v\n", err)
			store = nil
		}
	}
	if reset {
		if err := store.Drop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "bigint: failed to reset session: %v\n", err)
		}
	}
	if !persist {
		store = nil
	}
	if payload, found, err := store.Load(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "bigint: failed to load session: %v\n", err)
	} else if found {
		restoreSession(env, payload)
		history = payload.History
	}

	if shouldUseTUI(mode) {
		model := ui.NewReplModel(env, ui.ReplOptions{
			OutputBase: base,
			History:    history,
		})
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
		final, err := program.Run()
		if err != nil {
			return err
		}
		if m, ok := final.(*ui.ReplModel); ok {
			history = m.History()
		}
		return saveSession(store, env, history, historyLimit)
	}

	history, err = runPlainRepl(cmd, env, base, history)
	if err != nil {
		return err
	}
	return saveSession(store, env, history, historyLimit)
}

// runPlainRepl reads one statement per line, printing results to
// stdout and errors to stderr. Used for pipes and for --ui off.
func runPlainRepl(cmd *cobra.Command, env *calc.Env, base int64, history []string) ([]string, error) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	interactive := isTerminal(os.Stdin)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		history = append(history, line)
		v, err := env.Eval(line)
		if err != nil {
			fmt.Fprintf(errOut, "bigint: %v\n", err)
			continue
		}
		text, err := formatInBase(v, base)
		if err != nil {
			fmt.Fprintf(errOut, "bigint: %v\n", err)
			continue
		}
		fmt.Fprintln(out, text)
	}
	return history, scanner.Err()
}

// restoreSession seeds env from a saved payload. Unparseable entries
// are skipped so a stale or hand-edited session never blocks startup.
func restoreSession(env *calc.Env, payload *session.Payload) {
	for i, name := range payload.Names {
		if i >= len(payload.Values) {
			break
		}
		v, err := bigint.Parse(payload.Values[i])
		if err != nil {
			continue
		}
		_ = env.Set(name, v)
	}
	if payload.Last != "" {
		if v, err := bigint.Parse(payload.Last); err == nil {
			env.SetLast(v)
		}
	}
}

func saveSession(store *session.Store, env *calc.Env, history []string, limit int) error {
	if store == nil {
		return nil
	}
	payload := session.NewPayload()
	for _, name := range env.Names() {
		v, ok := env.Get(name)
		if !ok {
			continue
		}
		payload.Names = append(payload.Names, name)
		payload.Values = append(payload.Values, v.String())
	}
	if v, ok := env.Last(); ok {
		payload.Last = v.String()
	}
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	payload.History = append(payload.History, history...)
	return store.Save(payload)
}
