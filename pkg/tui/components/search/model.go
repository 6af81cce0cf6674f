// Package search is the selection prompt: it turns "date= project= user="
// tokens into a new journal.Selection.
package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/tui/theme"
)

// SubmitMsg carries the selection chosen in the prompt.
type SubmitMsg struct {
	Selection journal.Selection
}

func (m SubmitMsg) Describe() string {
	return m.Selection.String()
}

// CancelMsg closes the prompt without changing the selection.
type CancelMsg struct{}

func (CancelMsg) Describe() string { return "search:cancel" }

// Parse applies key=value tokens to base. Omitted keys keep their value; an
// empty value clears it. A bare token is taken as the date.
func Parse(raw string, base journal.Selection) (journal.Selection, error) {
	sel := base
	for _, tok := range strings.Fields(raw) {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			key, value = "date", tok
		}
		switch strings.ToLower(key) {
		case "date", "day", "d":
			switch strings.ToLower(value) {
			case "":
				sel.Date = ""
				continue
			case "today":
				sel.Date = note.Today()
				continue
			}
			day, err := note.ParseDay(value)
			if err != nil {
				return base, fmt.Errorf("search: %w", err)
			}
			sel.Date = day
		case "project", "p":
			sel.Project = value
		case "user", "u":
			sel.UserID = value
		default:
			return base, fmt.Errorf("search: unknown key %q", key)
		}
	}
	return sel, nil
}

// Model is the prompt. It emits SubmitMsg and CancelMsg.
type Model struct {
	base   journal.Selection
	input  textinput.Model
	err    error
	width  int
	styles theme.ModalTheme
}

func New(base journal.Selection, styles theme.ModalTheme) *Model {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "date=2025-10-07 project=home user=me"
	in.Focus()
	return &Model{base: base, input: in, width: 60, styles: styles}
}

func (m *Model) SetWidth(width int) {
	m.width = max(width, 24)
	m.input.SetWidth(m.width - 8)
}

// Err is the last parse failure.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			sel, err := Parse(m.input.Value(), m.base)
			if err != nil {
				m.err = err
				return m, nil
			}
			return m, func() tea.Msg { return SubmitMsg{Selection: sel} }
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }
		}
	}
	m.err = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() (string, *tea.Cursor) {
	parts := []string{
		m.styles.Title.Render("Select journal"),
		m.styles.Meta.Render("current " + m.base.String()),
		m.input.View(),
	}
	if m.err != nil {
		parts = append(parts, m.styles.Meta.Render(m.err.Error()))
	}
	return m.styles.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)), nil
}
