// Package noteedit is the full-note edit modal opened for a saved row.
package noteedit

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/tui/theme"
)

// CopiedMsg reports the result of copying the note text.
type CopiedMsg struct {
	Err error
}

func (m CopiedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf("err:%q", m.Err)
	}
	return "copied"
}

// Model edits one note's text. It emits journal.ModalSubmitMsg and
// journal.ModalCloseMsg.
type Model struct {
	note   *note.Note
	input  textinput.Model
	width  int
	styles theme.ModalTheme
	status string

	copy func(string) error
}

// New opens the modal on n.
func New(n *note.Note, styles theme.ModalTheme) *Model {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "Note text"
	in.SetValue(n.Text)
	in.CursorEnd()
	in.Focus()
	return &Model{
		note:   n,
		input:  in,
		width:  60,
		styles: styles,
		copy:   clipboard.WriteAll,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Note is the note being edited.
func (m *Model) Note() *note.Note {
	return m.note
}

// Value is the current edited text.
func (m *Model) Value() string {
	return m.input.Value()
}

func (m *Model) SetWidth(width int) {
	m.width = max(width, 24)
	m.input.SetWidth(m.width - 8)
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CopiedMsg:
		if msg.Err != nil {
			m.status = "copy failed: " + msg.Err.Error()
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			text := m.input.Value()
			return m, func() tea.Msg { return journal.ModalSubmitMsg{Text: text} }
		case "esc":
			return m, func() tea.Msg { return journal.ModalCloseMsg{} }
		case "ctrl+y":
			text, copyFn := m.input.Value(), m.copy
			return m, func() tea.Msg { return CopiedMsg{Err: copyFn(text)} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() (string, *tea.Cursor) {
	inner := m.width - m.styles.Frame.GetHorizontalFrameSize()
	meta := []string{
		fmt.Sprintf("id %s · %s", m.note.ID, m.note.DateCreated),
		fmt.Sprintf("bullet %s · context %s", label(glyph.Bullets(), m.note.BulletTag), label(glyph.Contexts(), m.note.ContextTag)),
	}
	if m.note.ProjectTag != "" {
		meta = append(meta, "project "+m.note.ProjectTag)
	}
	parts := []string{
		m.styles.Title.Render("Edit note"),
		m.styles.Meta.Render(strings.Join(meta, "\n")),
		m.styles.Body.Render(wordwrap.String(m.note.Text, max(inner, 10))),
		m.input.View(),
	}
	if m.status != "" {
		parts = append(parts, m.styles.Meta.Render(m.status))
	}
	parts = append(parts, m.styles.Meta.Render("enter save · esc cancel · ctrl+y copy"))
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.styles.Frame.Width(m.width).Render(body), nil
}

func label(c glyph.Catalog, id string) string {
	icon, ok := c.Lookup(id)
	if !ok {
		return "-"
	}
	return c.Label(icon)
}
