package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/vfsh/internal/config"
	"github.com/vvka-141/vfsh/internal/shell"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Repl is the bubbletea model for an interactive shell session. It renders
// an accumulated scrollback above a single input line and feeds submitted
// lines through the command engine.
type Repl struct {
	session   *shell.Session
	completer *shell.Completer
	cfg       *config.ShellConfig
	keys      KeyMap
	input     textinput.Model

	lines   []string // scrollback
	history []string // submitted commands, oldest first
	histIdx int      // len(history) while editing a fresh line
	draft   string   // in-progress line saved while cycling history

	quitting bool
}

// NewRepl creates the interactive model over an existing session.
func NewRepl(session *shell.Session, cfg *config.ShellConfig) *Repl {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Focus()

	return &Repl{
		session:   session,
		completer: shell.NewCompleter(session),
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		input:     ti,
		lines:     []string{banner(cfg)},
	}
}

// Run starts the interactive program and blocks until the session exits.
func Run(session *shell.Session, cfg *config.ShellConfig) error {
	_, err := tea.NewProgram(NewRepl(session, cfg)).Run()
	return err
}

// Init implements tea.Model.
func (m *Repl) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Repl) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()

	case key.Matches(keyMsg, m.keys.Complete):
		m.input.SetValue(m.completer.Next(m.input.Value()))
		m.input.CursorEnd()
		return m, nil

	case key.Matches(keyMsg, m.keys.HistoryPrev):
		m.cycleHistory(-1)
		return m, nil

	case key.Matches(keyMsg, m.keys.HistoryNext):
		m.cycleHistory(+1)
		return m, nil
	}

	// Any other key invalidates completion cycling state.
	m.completer.Reset()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m *Repl) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.completer.Reset()
	m.rememberHistory(line)

	m.lines = append(m.lines, m.style(EchoedInputStyle, m.cfg.Prompt+" "+line))

	res, err := m.session.Eval(line)
	if err != nil {
		m.lines = append(m.lines, m.style(ErrorStyle, err.Error()))
		return m, nil
	}

	switch res.Signal {
	case shell.SignalClear:
		m.lines = nil
		return m, tea.ClearScreen
	case shell.SignalExit:
		m.quitting = true
		return m, tea.Quit
	}

	if res.Output != "" {
		m.lines = append(m.lines, m.renderOutput(res.Output))
	}
	return m, nil
}

func (m *Repl) rememberHistory(line string) {
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
		if len(m.history) > m.cfg.HistorySize {
			m.history = m.history[len(m.history)-m.cfg.HistorySize:]
		}
	}
	m.histIdx = len(m.history)
	m.draft = ""
}

// cycleHistory moves through submitted commands; direction is -1 for older,
// +1 for newer. The in-progress line is restored when cycling past the
// newest entry.
func (m *Repl) cycleHistory(direction int) {
	if len(m.history) == 0 {
		return
	}
	if m.histIdx == len(m.history) {
		m.draft = m.input.Value()
	}

	next := m.histIdx + direction
	if next < 0 || next > len(m.history) {
		return
	}
	m.histIdx = next

	if m.histIdx == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histIdx])
	}
	m.input.CursorEnd()
	m.completer.Reset()
}

// renderOutput styles a command's output block. Directory entries (trailing
// separator) get the directory style so listings scan easily.
func (m *Repl) renderOutput(output string) string {
	if m.cfg.NoColor {
		return output
	}
	outLines := strings.Split(output, "\n")
	for i, l := range outLines {
		if strings.HasSuffix(l, vfsh.Separator) {
			outLines[i] = DirEntryStyle.Render(l)
		} else {
			outLines[i] = OutputStyle.Render(l)
		}
	}
	return strings.Join(outLines, "\n")
}

func (m *Repl) style(s lipgloss.Style, text string) string {
	if m.cfg.NoColor {
		return text
	}
	return s.Render(text)
}

// View implements tea.Model.
func (m *Repl) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}

	prompt := m.cfg.Prompt + " "
	if !m.cfg.NoColor {
		prompt = PromptStyle.Render(m.cfg.Prompt) + " "
	}
	b.WriteString(prompt)
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.keys.HelpText()))
	return b.String()
}

// banner is the startup block shown before the first prompt.
func banner(cfg *config.ShellConfig) string {
	title := "vfsh - virtual filesystem shell"
	if !cfg.NoColor {
		title = BannerStyle.Render(title)
	}
	return title + "\nCommands: " + strings.Join(shell.CommandNames(), ", ")
}
