// Package iconmenu renders one icon catalog as a floating pick list.
package iconmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui"
)

// Model is the pick list for one category. It emits journal.IconSelectMsg
// and journal.MenuCloseMsg; the session decides what they do.
type Model struct {
	catalog glyph.Catalog
	cursor  int
	styles  theme.MenuTheme
}

var _ ui.Component = (*Model)(nil)

// New opens the list with the cursor on current, or the first icon.
func New(category glyph.Category, current string, styles theme.MenuTheme) *Model {
	c := glyph.CatalogFor(category)
	return &Model{
		catalog: c,
		cursor:  max(c.Index(current), 0),
		styles:  styles,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Category() glyph.Category {
	return m.catalog.Category()
}

// Selected returns the icon under the cursor.
func (m *Model) Selected() glyph.Icon {
	return m.catalog.Icons()[m.cursor]
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	n := len(m.catalog.Icons())
	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor + n - 1) % n
	case "down", "j":
		m.cursor = (m.cursor + 1) % n
	case "enter":
		return m, emit(journal.IconSelectMsg{Category: m.Category(), IconID: m.Selected().ID})
	case "x", "backspace", "delete":
		return m, emit(journal.IconSelectMsg{Category: m.Category()})
	case "esc":
		return m, emit(journal.MenuCloseMsg{})
	}
	return m, nil
}

// SetSize is a no-op; the list sizes itself to the catalog.
func (m *Model) SetSize(int, int) {}

func (m *Model) View() string {
	icons := m.catalog.Icons()
	lines := make([]string, len(icons))
	for i, icon := range icons {
		line := icon.Symbol + " " + m.catalog.Label(icon)
		if i == m.cursor {
			lines[i] = m.styles.Selected.Render(line)
			continue
		}
		lines[i] = m.styles.Item.Render(line)
	}
	return m.styles.Frame.Render(strings.Join(lines, "\n"))
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
