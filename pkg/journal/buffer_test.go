package journal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/note"
)

func TestBufferKeyPress(t *testing.T) {
	n := &note.Note{ID: "42", Text: "old"}
	b := NewBuffer(n.Text)
	b.Set("new")

	cases := []struct {
		name   string
		key    tea.KeyPressMsg
		commit bool
	}{
		{name: "enter", key: enter(), commit: true},
		{name: "shift+enter", key: shiftEnter()},
		{name: "tab", key: tea.KeyPressMsg{Code: tea.KeyTab}},
		{name: "rune", key: tea.KeyPressMsg{Code: 'a', Text: "a"}},
		{name: "ctrl+enter", key: tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModCtrl}, commit: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := b.KeyPress(tc.key, n, 3)
			if ok != tc.commit {
				t.Fatalf("expected commit=%v, got %v", tc.commit, ok)
			}
			if !ok {
				return
			}
			if ev.Note != n || ev.Row != 3 || ev.Text != "new" {
				t.Fatalf("unexpected commit event %+v", ev)
			}
		})
	}
	if b.Value() != "new" {
		t.Fatalf("key presses must not touch the buffer, got %q", b.Value())
	}
}

func TestBufferSyncOverwritesLocalEdits(t *testing.T) {
	b := NewBuffer("server")
	b.Set("local edit")

	if b.Sync("server") {
		t.Fatalf("unchanged authoritative text must not reset the buffer")
	}
	if b.Value() != "local edit" || !b.Dirty() {
		t.Fatalf("expected local edit kept, got %q", b.Value())
	}

	if !b.Sync("changed elsewhere") {
		t.Fatalf("expected reset on authoritative change")
	}
	if b.Value() != "changed elsewhere" || b.Dirty() {
		t.Fatalf("expected buffer overwritten, got %q", b.Value())
	}
}
