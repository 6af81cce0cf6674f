package eventviewer

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/tui/internal/viewtest"
)

func TestRecordDescribesJournalMessages(t *testing.T) {
	m := NewModel(2)
	m.now = func() time.Time { return time.Date(2025, 10, 7, 9, 30, 0, 0, time.UTC) }
	m.SetSize(60, 8)

	m.Record(journal.EditRequestMsg{Row: 2})
	m.Record(journal.SettledMsg{Op: journal.OpCreate, Err: errors.New("offline")})
	m.Record(tea.KeyPressMsg{Code: tea.KeyEnter})

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected log capped at 2, got %d", len(entries))
	}
	if entries[0].Kind != "KeyPressMsg" || entries[0].Detail != `key="enter"` {
		t.Fatalf("unexpected newest entry %+v", entries[0])
	}
	if entries[1].Kind != "SettledMsg" || entries[1].Level != LevelError {
		t.Fatalf("expected failed settle entry, got %+v", entries[1])
	}

	view := viewtest.Strip(m.View())
	if !strings.Contains(view, "Events") || !strings.Contains(view, "09:30:00.000") {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestKindStripsPackage(t *testing.T) {
	if got := Kind(journal.MenuCloseMsg{}); got != "MenuCloseMsg" {
		t.Fatalf("unexpected kind %q", got)
	}
}
