package tui

import (
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/f3rmion/nameparts/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func newModel(input string, split bool) Model {
	m := New(parser.New(nil), split)
	m.input.SetValue(input)
	return m
}

func TestEnterParses(t *testing.T) {
	t.Parallel()

	m, _ := send(t, newModel("Dr John Q. Public Jr.", false), tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Results(), 1)

	rec := m.Results()[0].Record
	assert.Equal(t, "Dr", rec.Salutation)
	assert.Equal(t, "Public", rec.LastName)
	assert.Contains(t, m.View(), "Public")
}

func TestTabTogglesSplitting(t *testing.T) {
	t.Parallel()

	m := newModel("John and Jane Smith", false)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Results(), 1)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Len(t, m.Results(), 2)
	assert.Equal(t, "John Smith", m.Results()[0].Input)
	assert.Equal(t, "Jane Smith", m.Results()[1].Input)
	assert.Contains(t, m.View(), "partner splitting: on")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.selected)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.selected)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.selected)
}

func TestCopySelected(t *testing.T) {
	t.Parallel()

	var copied string
	m := newModel("Jane Doe", false)
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.True(t, m.copied)

	var rec nameparts.NameRecord
	require.NoError(t, json.Unmarshal([]byte(copied), &rec))
	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "Doe", rec.LastName)

	m, _ = send(t, m, clearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestCopyFailure(t *testing.T) {
	t.Parallel()

	m := newModel("Jane Doe", false)
	m.copy = func(string) error { return errors.New("no clipboard") }

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "no clipboard")
}

func TestEscQuits(t *testing.T) {
	t.Parallel()

	_, cmd := send(t, newModel("", false), tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEmptyInputClearsResults(t *testing.T) {
	t.Parallel()

	m := newModel("Jane Doe", false)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Results(), 1)

	m.input.SetValue("   ")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Results())
}
