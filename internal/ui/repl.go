package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bigint"
	"bigint/internal/calc"
)

// ReplModel is the Bubble Tea model behind the interactive REPL. It
// owns the input line, the scrollback, and an in-flight evaluation.
type ReplModel struct {
	env        *calc.Env
	input      textinput.Model
	spinner    spinner.Model
	lines      []replLine
	history    []string
	histPos    int
	draft      string
	outBase    int64
	width      int
	maxLines   int
	evaluating bool
	quitting   bool
}

type replLine struct {
	text string
	kind lineKind
}

type lineKind uint8

const (
	lineInput lineKind = iota
	lineResult
	lineError
	lineInfo
)

// evalDoneMsg delivers the outcome of one evaluation back to Update.
type evalDoneMsg struct {
	out string
	err error
}

// ReplOptions configures NewReplModel.
type ReplOptions struct {
	OutputBase int64    // output radix, 0 means decimal
	History    []string // restored lines from a previous session
	MaxLines   int      // scrollback cap, 0 picks a default
}

// NewReplModel returns a REPL over env. The env is only touched from
// the update loop and from at most one evaluation at a time.
func NewReplModel(env *calc.Env, opts ReplOptions) *ReplModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "expression"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = 200
	}
	m := &ReplModel{
		env:      env,
		input:    ti,
		spinner:  sp,
		history:  append([]string(nil), opts.History...),
		outBase:  opts.OutputBase,
		width:    80,
		maxLines: maxLines,
	}
	m.histPos = len(m.history)
	return m
}

func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case evalDoneMsg:
		m.evaluating = false
		if msg.err != nil {
			m.push(replLine{text: msg.err.Error(), kind: lineError})
		} else {
			m.push(replLine{text: msg.out, kind: lineResult})
		}
		return m, nil
	case spinner.TickMsg:
		if !m.evaluating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyUp:
		m.recall(-1)
		return m, nil
	case tea.KeyDown:
		m.recall(1)
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) submit() (tea.Model, tea.Cmd) {
	if m.evaluating {
		return m, nil
	}
	src := strings.TrimSpace(m.input.Value())
	if src == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.push(replLine{text: "> " + src, kind: lineInput})
	m.history = append(m.history, src)
	m.histPos = len(m.history)
	m.draft = ""

	switch src {
	case "exit", "quit":
		m.quitting = true
		return m, tea.Quit
	case "help":
		m.push(replLine{text: "functions: " + strings.Join(calc.Builtins(), " "), kind: lineInfo})
		m.push(replLine{text: "operators: + - * / % ^ ( ) = ; and _ for the last result", kind: lineInfo})
		m.push(replLine{text: "commands: vars, help, exit", kind: lineInfo})
		return m, nil
	case "vars":
		names := m.env.Names()
		if len(names) == 0 {
			m.push(replLine{text: "no variables defined", kind: lineInfo})
			return m, nil
		}
		for _, name := range names {
			v, _ := m.env.Get(name)
			m.push(replLine{text: fmt.Sprintf("%s = %s", name, v), kind: lineInfo})
		}
		return m, nil
	}

	m.evaluating = true
	return m, tea.Batch(m.spinner.Tick, m.evalCmd(src))
}

// evalCmd runs the evaluation off the update loop. Enter is gated on
// evaluating, so at most one of these is in flight.
func (m *ReplModel) evalCmd(src string) tea.Cmd {
	env, base := m.env, m.outBase
	return func() tea.Msg {
		v, err := env.Eval(src)
		if err != nil {
			return evalDoneMsg{err: err}
		}
		out, err := formatResult(v, base)
		return evalDoneMsg{out: out, err: err}
	}
}

func formatResult(v bigint.Integer, base int64) (string, error) {
	if base == 0 || base == 10 {
		return v.String(), nil
	}
	return v.Text(bigint.FromInt64(base))
}

// recall moves through entered lines, stashing the live draft so
// walking past the newest entry restores it.
func (m *ReplModel) recall(dir int) {
	if len(m.history) == 0 {
		return
	}
	next := m.histPos + dir
	if next < 0 || next > len(m.history) {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histPos = next
	if next == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[next])
	}
	m.input.CursorEnd()
}

func (m *ReplModel) push(line replLine) {
	m.lines = append(m.lines, line)
	if len(m.lines) > m.maxLines {
		m.lines = m.lines[len(m.lines)-m.maxLines:]
	}
}

// History returns every line entered so far, oldest first, including
// lines restored from a previous session.
func (m *ReplModel) History() []string {
	return append([]string(nil), m.history...)
}

func (m *ReplModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	b.WriteString(titleStyle.Render("bigint repl"))
	b.WriteString("\n")
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	b.WriteString(hintStyle.Render("help for commands, exit to leave"))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(styleLine(line.kind).Render(truncate(line.text, m.width-2)))
		b.WriteString("\n")
	}

	if m.evaluating {
		b.WriteString(m.spinner.View())
		b.WriteString(" evaluating")
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}

func styleLine(kind lineKind) lipgloss.Style {
	switch kind {
	case lineResult:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case lineError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case lineInfo:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
