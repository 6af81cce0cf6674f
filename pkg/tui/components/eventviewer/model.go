// Package eventviewer renders the debug log of messages routed through the
// journal UI.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/ui"
)

// Level indicates the severity of a logged event.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Entry is one logged message.
type Entry struct {
	Timestamp time.Time
	Kind      string
	Detail    string
	Level     Level
}

// Model keeps the newest entries first, capped at a fixed count.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	limit    int

	width  int
	height int

	frame  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	failed lipgloss.Style

	now func() time.Time
}

var _ ui.Component = (*Model)(nil)

// NewModel constructs a viewer holding at most limit entries.
func NewModel(limit int) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		frame:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		failed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		now:      time.Now,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

// Update scrolls the log; it never consumes journal messages.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if _, ok := msg.(tea.MouseWheelMsg); !ok {
		return m, nil
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// SetSize resizes the viewport inside the border and header row.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 4), max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refresh()
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.header.Render("Events"), m.viewport.View())
	return m.frame.Width(m.width).Height(m.height).Render(body)
}

// Record logs msg. Messages implementing ui.Describer provide their own
// detail; errors in the description mark the entry as failed.
func (m *Model) Record(msg tea.Msg) {
	if msg == nil {
		return
	}
	entry := Entry{Kind: Kind(msg), Detail: Describe(msg)}
	if strings.Contains(entry.Detail, "err:") || strings.Contains(entry.Detail, "state:\"") && !strings.Contains(entry.Detail, `state:"ok"`) {
		entry.Level = LevelError
	}
	m.Append(entry)
}

// Append inserts entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = m.now()
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	m.refresh()
	m.viewport.SetYOffset(0)
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(m.muted.Render("No events yet"))
		return
	}
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		text := e.Kind
		if e.Detail != "" {
			text += " " + e.Detail
		}
		if e.Level == LevelError {
			text = m.failed.Render(text)
		}
		lines = append(lines, m.muted.Render(e.Timestamp.Format("15:04:05.000"))+" "+text)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// Kind is the short type name of msg, without its package path.
func Kind(msg tea.Msg) string {
	name := fmt.Sprintf("%T", msg)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Describe summarizes msg for the log.
func Describe(msg tea.Msg) string {
	if d, ok := msg.(ui.Describer); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return ""
	}
}
