package journal

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/note"
)

// Buffer holds a row's uncommitted text.
//
// Sync is one-way: when the authoritative text changes, it overwrites any
// local edits. Local edits only reach the store through a commit.
type Buffer struct {
	value         string
	authoritative string
}

func NewBuffer(text string) *Buffer {
	return &Buffer{value: text, authoritative: text}
}

func (b *Buffer) Value() string {
	return b.value
}

// Set records a local edit.
func (b *Buffer) Set(v string) {
	b.value = v
}

// Dirty reports whether the local value differs from the authoritative text.
func (b *Buffer) Dirty() bool {
	return b.value != b.authoritative
}

// Sync resets the buffer when text differs from the last authoritative value
// seen, and reports whether it did.
func (b *Buffer) Sync(text string) bool {
	if text == b.authoritative {
		return false
	}
	b.authoritative = text
	b.value = text
	return true
}

// CommitEvent is emitted by KeyPress when the buffer should be submitted.
type CommitEvent struct {
	Note *note.Note
	Row  int
	Text string
}

// KeyPress reports a commit for un-shifted Enter. Every other key, Shift+Enter
// included, is ignored; the caller updates the value through Set.
func (b *Buffer) KeyPress(key tea.KeyPressMsg, n *note.Note, row int) (CommitEvent, bool) {
	if key.Code != tea.KeyEnter || key.Mod&tea.ModShift != 0 {
		return CommitEvent{}, false
	}
	return CommitEvent{Note: n, Row: row, Text: b.value}, true
}
