package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/store"
)

type memoryNotes struct {
	mu      sync.Mutex
	counter int
	days    map[note.Day][]*note.Note

	creates []*note.Note
	updates []*note.Note
	lists   int

	failCreate error
	failUpdate error
	failList   error
}

func newMemoryNotes(notes ...*note.Note) *memoryNotes {
	m := &memoryNotes{days: make(map[note.Day][]*note.Note)}
	for _, n := range notes {
		cp := n.Clone()
		if cp.ID == "" {
			cp.ID = m.newID()
		}
		m.days[cp.DateCreated] = append(m.days[cp.DateCreated], cp)
	}
	return m
}

func (m *memoryNotes) newID() string {
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

func (m *memoryNotes) List(_ context.Context, day note.Day) ([]*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]*note.Note, 0, len(m.days[day]))
	for _, n := range m.days[day] {
		out = append(out, n.Clone())
	}
	return out, nil
}

func (m *memoryNotes) Create(_ context.Context, n *note.Note) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates = append(m.creates, n.Clone())
	if m.failCreate != nil {
		return nil, m.failCreate
	}
	if n.ID != "" {
		return nil, errors.New("memory: note already persisted")
	}
	cp := n.Clone()
	cp.ID = m.newID()
	m.days[cp.DateCreated] = append(m.days[cp.DateCreated], cp)
	return cp.Clone(), nil
}

func (m *memoryNotes) Update(_ context.Context, n *note.Note) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, n.Clone())
	if m.failUpdate != nil {
		return nil, m.failUpdate
	}
	for day, list := range m.days {
		for i, existing := range list {
			if existing.ID == n.ID {
				m.days[day][i] = n.Clone()
				return n.Clone(), nil
			}
		}
	}
	return nil, store.ErrNotFound
}

// setText simulates an edit made outside the session.
func (m *memoryNotes) setText(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, list := range m.days {
		for _, n := range list {
			if n.ID == id {
				n.Text = text
			}
		}
	}
}

// drive runs cmd and feeds its messages back into s until nothing is left.
func drive(t *testing.T, s *Session, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 20 {
			t.Fatalf("command chain did not settle")
		}
		cmd = s.Update(cmd())
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func shiftEnter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
}

const testDay = note.Day("2025-10-07")

func testSelection() Selection {
	return Selection{Date: testDay, UserID: "u1"}
}
