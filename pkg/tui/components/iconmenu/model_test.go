package iconmenu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/tui/internal/viewtest"
	"tableflip.dev/daybook/pkg/tui/theme"
)

func press(m *Model, code rune) tea.Msg {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code})
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestMenuSelectsUnderCursor(t *testing.T) {
	m := New(glyph.Bullet, "2", theme.Default().Menu)
	if m.Selected().Name != "completed" {
		t.Fatalf("expected cursor on current icon, got %s", m.Selected().Name)
	}
	press(m, tea.KeyDown)
	msg, ok := press(m, tea.KeyEnter).(journal.IconSelectMsg)
	if !ok {
		t.Fatalf("expected IconSelectMsg")
	}
	if msg.Category != glyph.Bullet || msg.IconID != "3" {
		t.Fatalf("unexpected select %+v", msg)
	}
}

func TestMenuWrapsAndClears(t *testing.T) {
	m := New(glyph.Context, "", theme.Default().Menu)
	press(m, tea.KeyUp)
	if m.Selected().Name != "investigation" {
		t.Fatalf("expected wrap to last icon, got %s", m.Selected().Name)
	}
	msg := press(m, 'x').(journal.IconSelectMsg)
	if msg.Category != glyph.Context || msg.IconID != "" {
		t.Fatalf("expected clear, got %+v", msg)
	}
	if _, ok := press(m, tea.KeyEscape).(journal.MenuCloseMsg); !ok {
		t.Fatalf("expected MenuCloseMsg on esc")
	}
}

func TestMenuView(t *testing.T) {
	view := viewtest.Strip(New(glyph.Context, "1", theme.Default().Menu).View())
	for _, want := range []string{"✷ priority", "? investigation"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in %q", want, view)
		}
	}
}
