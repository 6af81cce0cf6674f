package help

import (
	"strings"
	"testing"

	"tableflip.dev/daybook/pkg/tui/internal/viewtest"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(70, 40)
	if err := m.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}
	view := viewtest.Strip(m.View())
	for _, want := range []string{"daybook", "ctrl+b", "shift+enter"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help view:\n%s", want, view)
		}
	}
}
