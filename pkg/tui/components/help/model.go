package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

// Model renders the key reference inside a bordered, scrollable viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

var _ ui.Component = (*Model)(nil)

// New constructs a help overlay sized to the provided bounds.
func New(width, height int) *Model {
	m := &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	m.SetSize(width, height)
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// SetSize re-renders the markdown to fit the new width.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 32), max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height
	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize(), 1))
	m.render(inner)
}

// Err reports a markdown rendering failure; the raw text is shown instead.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) render(wrap int) {
	text := strings.TrimSpace(helpMarkdown)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(max(wrap-2, 10)),
	)
	if err == nil {
		var out string
		if out, err = r.Render(text); err == nil {
			text = out
		}
	}
	m.err = err
	m.viewport.SetContent(text)
	m.viewport.SetYOffset(0)
}
