package journal

import (
	"context"
	"testing"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
)

func TestIconMenuMutualExclusion(t *testing.T) {
	m := NewIconMenu(nil)
	a := &note.Note{ID: "a"}
	b := &note.Note{ID: "b"}

	m.OpenSecondary(a, Rect{X: 3, Y: 1, Width: 1, Height: 1})
	if !m.Visible(glyph.Context) || m.Visible(glyph.Bullet) {
		t.Fatalf("expected only context menu visible")
	}
	m.OpenPrimary(b, Rect{X: 9, Y: 5, Width: 1, Height: 1})
	if m.Visible(glyph.Context) || !m.Visible(glyph.Bullet) {
		t.Fatalf("expected only bullet menu visible")
	}
	if m.Target() != b || m.Position() != (Point{X: 9, Y: 5}) {
		t.Fatalf("unexpected target %s at %+v", m.Target(), m.Position())
	}
	if c, ok := m.Active(); !ok || c != glyph.Bullet {
		t.Fatalf("expected bullet active")
	}

	m.Close()
	if m.Visible(glyph.Bullet) || m.Visible(glyph.Context) {
		t.Fatalf("expected both menus hidden")
	}
	if m.Position() != (Point{}) {
		t.Fatalf("expected position reset, got %+v", m.Position())
	}
	if m.Target() != b {
		t.Fatalf("close must keep the target")
	}
	if _, ok := m.Active(); ok {
		t.Fatalf("expected no active menu")
	}
}

func TestIconMenuSelectCommitsOnce(t *testing.T) {
	existing := &note.Note{ID: "a", DateCreated: testDay, UserID: "u1"}
	mem := newMemoryNotes(existing)
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)
	m := NewIconMenu(d)
	d.menu = m

	m.OpenSecondary(existing, Rect{})
	m.OpenPrimary(existing, Rect{X: 2})
	cmd := m.Select(glyph.Bullet, "3")
	if m.Visible(glyph.Bullet) || m.Visible(glyph.Context) {
		t.Fatalf("expected menus closed after select")
	}
	if cmd == nil {
		t.Fatalf("expected an update command")
	}
	cmd()
	if len(mem.updates) != 1 || mem.updates[0].BulletTag != "3" {
		t.Fatalf("expected one bullet update, got %+v", mem.updates)
	}
}
