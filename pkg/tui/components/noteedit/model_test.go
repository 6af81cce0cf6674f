package noteedit

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/tui/internal/viewtest"
	"tableflip.dev/daybook/pkg/tui/theme"
)

func testNote() *note.Note {
	return &note.Note{ID: "42", DateCreated: "2025-10-07", Text: "call the plumber", BulletTag: "1", ContextTag: "1", ProjectTag: "house"}
}

func TestSubmitAndClose(t *testing.T) {
	m := New(testNote(), theme.Default().Modal)
	m.Update(tea.KeyPressMsg{Code: '!', Text: "!"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	submit, ok := cmd().(journal.ModalSubmitMsg)
	if !ok || submit.Text != "call the plumber!" {
		t.Fatalf("unexpected submit %#v", submit)
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(journal.ModalCloseMsg); !ok {
		t.Fatalf("expected close on esc")
	}
}

func TestCopyToClipboard(t *testing.T) {
	var copied string
	m := New(testNote(), theme.Default().Modal)
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	msg := cmd()
	if copied != "call the plumber" {
		t.Fatalf("expected note text copied, got %q", copied)
	}
	m.Update(msg)
	view, _ := m.View()
	if !strings.Contains(viewtest.Strip(view), "copied to clipboard") {
		t.Fatalf("expected copy status in view")
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	_, cmd = m.Update(tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	m.Update(cmd())
	view, _ = m.View()
	if !strings.Contains(viewtest.Strip(view), "copy failed: no clipboard") {
		t.Fatalf("expected copy failure in view")
	}
}

func TestViewShowsMetadata(t *testing.T) {
	m := New(testNote(), theme.Default().Modal)
	m.SetWidth(60)
	view, _ := m.View()
	plain := viewtest.Strip(view)
	for _, want := range []string{"id 42", "task-open-task", "priority", "project house"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in view:\n%s", want, plain)
		}
	}
}
