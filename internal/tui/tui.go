// Package tui provides an interactive terminal UI for parsing names.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/nameparts/internal/clipboard"
	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/f3rmion/nameparts/internal/partner"
	"github.com/mattn/go-runewidth"
)

// NameParser is the parsing capability the UI needs.
type NameParser interface {
	Parse(name string) nameparts.NameRecord
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the Bubble Tea model for the name parsing UI.
type Model struct {
	input  textinput.Model
	parser NameParser

	// copy is swapped out in tests.
	copy func(string) error

	split    bool
	results  []nameparts.Result
	selected int

	err    error
	copied bool

	width int
}

// New creates a new TUI model. split sets the initial partner splitting mode.
func New(p NameParser, split bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a full name, e.g. Dr John Q. Public Jr."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		input:  ti,
		parser: p,
		copy:   clipboard.Write,
		split:  split,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.analyzeInput()
			return m, nil
		case "tab":
			m.split = !m.split
			m.analyzeInput()
			return m, nil
		case "left", "shift+tab":
			if len(m.results) > 0 {
				m.selected = (m.selected - 1 + len(m.results)) % len(m.results)
			}
			return m, nil
		case "right":
			if len(m.results) > 0 {
				m.selected = (m.selected + 1) % len(m.results)
			}
			return m, nil
		case "ctrl+y":
			return m.copySelected()
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if m.selected >= len(m.results) {
		return m, nil
	}
	out, err := json.MarshalIndent(m.results[m.selected].Record, "", "  ")
	if err != nil {
		m.err = err
		return m, nil
	}
	if err := m.copy(string(out)); err != nil {
		m.err = fmt.Errorf("copying to clipboard: %w", err)
		return m, nil
	}
	m.err = nil
	m.copied = true
	return m, clearCopiedAfter(2 * time.Second)
}

// analyzeInput parses the current input.
func (m *Model) analyzeInput() {
	input := strings.TrimSpace(m.input.Value())
	m.results = nil
	m.selected = 0
	m.err = nil
	if input == "" {
		return
	}

	names := []string{input}
	if m.split {
		names = partner.SplitJointName(input)
	}
	for _, name := range names {
		m.results = append(m.results, nameparts.Result{Input: name, Record: m.parser.Parse(name)})
	}
}

// Results returns the current parse results.
func (m Model) Results() []nameparts.Result {
	return m.results
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	mode := "off"
	if m.split {
		mode = "on"
	}
	b.WriteString(titleStyle.Render(" nameparts "))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("partner splitting: " + mode))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n  ")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.results) > 0 {
		if len(m.results) > 1 {
			b.WriteString("\n")
			b.WriteString(m.renderTabs())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(renderRecord(m.results[m.selected].Record)))
		b.WriteString("\n")
	}

	if m.copied {
		b.WriteString("\n  ")
		b.WriteString(copiedStyle.Render("Copied JSON to clipboard"))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render("enter parse • tab toggle splitting • ←/→ person • ctrl+y copy JSON • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.results))
	for i, r := range m.results {
		label := runewidth.Truncate(r.Input, 24, "…")
		if i == m.selected {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderRecord(rec nameparts.NameRecord) string {
	lines := make([]string, 0, len(nameparts.Fields))
	for _, f := range nameparts.Fields {
		v := rec.Get(f)
		rendered := valueStyle.Render(v)
		if v == "" {
			rendered = emptyStyle.Render("-")
		}
		lines = append(lines, labelStyle.Render(f.Label())+rendered)
	}
	return strings.Join(lines, "\n")
}
