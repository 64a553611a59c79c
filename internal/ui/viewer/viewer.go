// Package viewer provides the full-screen interactive highlighter: a
// viewport over the input text with a live pattern input underneath.
// Every keystroke re-segments the text, so an invalid in-progress pattern
// is an expected state shown in the status bar, never a crash.
package viewer

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/glint"
	"github.com/zjrosen/glint/internal/config"
	"github.com/zjrosen/glint/internal/log"
)

// chromeHeight is the number of rows reserved below the viewport for the
// pattern input and the status line.
const chromeHeight = 2

// Config holds everything the viewer needs to start.
type Config struct {
	Content string
	Path    string // shown in the status bar; empty for stdin
	Pattern string // initial pattern, may be empty
	Theme   config.ThemeConfig

	// Changes delivers follow-mode notifications; nil disables reloading.
	Changes <-chan struct{}
}

// FileChangedMsg signals that the watched file changed on disk.
type FileChangedMsg struct{}

// reloadedMsg carries freshly read file content.
type reloadedMsg struct {
	content string
}

// reloadErrMsg reports a failed reload; the viewer keeps showing the last
// good content.
type reloadErrMsg struct {
	err error
}

// Model is the viewer component state.
type Model struct {
	input    textinput.Model
	viewport viewport.Model

	content string
	path    string
	changes <-chan struct{}

	highlight lipgloss.Style
	errStyle  lipgloss.Style
	subtle    lipgloss.Style

	patternErr error
	matches    int
	ready      bool
}

// New creates a viewer over cfg.Content.
func New(cfg Config) Model {
	input := textinput.New()
	input.Prompt = "pattern: "
	input.Placeholder = `regular expression, e.g. @\w+`
	input.SetValue(cfg.Pattern)
	input.Focus()

	return Model{
		input:     input,
		content:   cfg.Content,
		path:      cfg.Path,
		changes:   cfg.Changes,
		highlight: cfg.Theme.HighlightStyle(),
		errStyle:  cfg.Theme.ErrorStyle(),
		subtle:    cfg.Theme.SubtleStyle(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on the watcher channel and resurfaces as a message.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return FileChangedMsg{}
	}
}

// reloadFile re-reads the watched file off the update loop.
func reloadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return reloadErrMsg{err: err}
		}
		return reloadedMsg{content: string(data)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "down", "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refresh()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		if w := msg.Width - len(m.input.Prompt) - 1; w > 0 {
			m.input.Width = w
		}
		m.refresh()
		return m, nil

	case FileChangedMsg:
		log.Debug(log.CatWatcher, "file changed", "path", m.path)
		return m, tea.Batch(reloadFile(m.path), waitForChange(m.changes))

	case reloadedMsg:
		m.content = msg.content
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case reloadErrMsg:
		log.ErrorErr(log.CatWatcher, "reload failed", msg.err, "path", m.path)
		return m, nil
	}

	return m, nil
}

// refresh re-segments the content against the current pattern and rebuilds
// the viewport. On an invalid pattern the previous render is kept and the
// error is surfaced in the status bar.
func (m *Model) refresh() {
	pattern := m.input.Value()
	if pattern == "" {
		m.patternErr = nil
		m.matches = 0
		m.viewport.SetContent(m.fitLines(strings.Split(m.content, "\n")))
		return
	}

	// Segmenting with a boolean style keeps match identification separate
	// from presentation: true marks a match, styling happens below.
	segmented, err := glint.SegmentText(m.content, glint.NewPattern(pattern), true)
	if err != nil {
		m.patternErr = err
		return
	}
	m.patternErr = nil
	m.matches = 0

	lines := make([]string, 0, len(segmented.Lines))
	for _, line := range segmented.Lines {
		var b strings.Builder
		for _, span := range line.Spans {
			if span.Style {
				m.matches++
				b.WriteString(m.highlight.Render(span.Text))
			} else {
				b.WriteString(span.Text)
			}
		}
		lines = append(lines, b.String())
	}
	m.viewport.SetContent(m.fitLines(lines))
	log.Debug(log.CatUI, "pattern applied", "pattern", pattern, "matches", m.matches)
}

// fitLines truncates each line to the viewport width, ANSI-aware.
func (m *Model) fitLines(lines []string) string {
	if m.viewport.Width <= 0 {
		return strings.Join(lines, "\n")
	}
	fitted := make([]string, 0, len(lines))
	for _, l := range lines {
		fitted = append(fitted, truncate.String(l, uint(m.viewport.Width)))
	}
	return strings.Join(fitted, "\n")
}

// View renders the viewer.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + m.statusView()
}

// statusView renders the bottom status line: pattern errors take priority,
// otherwise the match count and source name.
func (m Model) statusView() string {
	if m.patternErr != nil {
		return m.errStyle.Render(m.patternErr.Error())
	}

	source := m.path
	if source == "" {
		source = "stdin"
	}
	status := fmt.Sprintf("%d matches", m.matches)
	if m.input.Value() == "" {
		status = "type a pattern to highlight"
	}
	return m.subtle.Render(fmt.Sprintf("%s  %s", status, source))
}

// Matches reports the number of highlighted spans in the current render.
func (m Model) Matches() int {
	return m.matches
}

// PatternErr returns the current pattern compile error, if any.
func (m Model) PatternErr() error {
	return m.patternErr
}
