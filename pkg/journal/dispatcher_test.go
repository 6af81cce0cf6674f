package journal

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/query"
)

func TestCommitTextCreatesFromDraft(t *testing.T) {
	mem := newMemoryNotes()
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)

	cmd := d.CommitText(&note.Note{}, "Buy milk")
	if cmd == nil {
		t.Fatalf("expected a create command")
	}
	msg, ok := cmd().(SettledMsg)
	if !ok {
		t.Fatalf("expected SettledMsg")
	}
	if msg.Op != OpCreate || msg.Err != nil {
		t.Fatalf("unexpected settle %s", msg.Describe())
	}
	if len(mem.creates) != 1 || len(mem.updates) != 0 {
		t.Fatalf("expected exactly one create, got creates=%d updates=%d", len(mem.creates), len(mem.updates))
	}
	got := mem.creates[0]
	if got.Text != "Buy milk" || got.UserID != "u1" || got.DateCreated != testDay {
		t.Fatalf("unexpected draft %+v", got)
	}
	if got.ProjectTag != "" {
		t.Fatalf("expected no project tag, got %q", got.ProjectTag)
	}
}

func TestCommitTextSetsProjectWhenSelected(t *testing.T) {
	mem := newMemoryNotes()
	sel := testSelection()
	sel.Project = "garden"
	d := NewDispatcher(context.Background(), mem, nil, sel, nil)

	d.CommitText(&note.Note{}, "weed")()
	if len(mem.creates) != 1 || mem.creates[0].ProjectTag != "garden" {
		t.Fatalf("expected project tag on create, got %+v", mem.creates)
	}
}

func TestCommitTextUpdatesPersisted(t *testing.T) {
	existing := &note.Note{ID: "42", DateCreated: testDay, UserID: "u1", Text: "old", BulletTag: "1", ContextTag: "2"}
	mem := newMemoryNotes(existing)
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)

	msg := d.CommitText(existing, "new")().(SettledMsg)
	if msg.Op != OpUpdate || msg.Err != nil {
		t.Fatalf("unexpected settle %s", msg.Describe())
	}
	if len(mem.updates) != 1 || len(mem.creates) != 0 {
		t.Fatalf("expected exactly one update, got creates=%d updates=%d", len(mem.creates), len(mem.updates))
	}
	got := mem.updates[0]
	want := *existing
	want.Text = "new"
	if *got != want {
		t.Fatalf("expected %+v, got %+v", want, *got)
	}
	if existing.Text != "old" {
		t.Fatalf("commit must not mutate the rendered note")
	}
}

func TestCommitIconContextDefaultsToNone(t *testing.T) {
	existing := &note.Note{ID: "7", DateCreated: testDay, UserID: "u1", Text: "keep", BulletTag: "1"}
	mem := newMemoryNotes(existing)
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)

	d.CommitIcon(glyph.Context, &note.Note{}, "")()
	d.CommitIcon(glyph.Context, existing, "")()

	if len(mem.creates) != 1 || mem.creates[0].ContextTag != note.NoContext {
		t.Fatalf("expected create with context %q, got %+v", note.NoContext, mem.creates)
	}
	if mem.creates[0].BulletTag != "" || mem.creates[0].Text != "" {
		t.Fatalf("create must only carry the context tag, got %+v", mem.creates[0])
	}
	if len(mem.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(mem.updates))
	}
	up := mem.updates[0]
	if up.ContextTag != note.NoContext || up.BulletTag != "1" || up.Text != "keep" {
		t.Fatalf("unexpected update %+v", up)
	}
}

func TestCommitIconClosesMenuImmediately(t *testing.T) {
	mem := newMemoryNotes()
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)
	menu := NewIconMenu(d)
	d.menu = menu
	menu.OpenPrimary(&note.Note{}, Rect{X: 4, Y: 2})

	cmd := d.CommitIcon(glyph.Bullet, &note.Note{}, "1")
	if menu.Visible(glyph.Bullet) {
		t.Fatalf("expected bullet menu closed before the store answers")
	}
	if len(mem.creates) != 0 {
		t.Fatalf("store must not be called until the command runs")
	}
	cmd()
	if len(mem.creates) != 1 || mem.creates[0].BulletTag != "1" {
		t.Fatalf("expected bullet create, got %+v", mem.creates)
	}
}

func TestSettleInvalidatesOnFailure(t *testing.T) {
	mem := newMemoryNotes()
	mem.failUpdate = errors.New("boom")
	cache := query.New()
	cache.Set(query.DayKey(testDay), nil)
	cache.Set(query.DayKey("2025-10-08"), nil)
	d := NewDispatcher(context.Background(), mem, cache, testSelection(), nil)

	msg := d.CommitText(&note.Note{ID: "missing", DateCreated: testDay}, "x")().(SettledMsg)
	if msg.Err == nil {
		t.Fatalf("expected store failure to be reported")
	}
	keys := d.Settle(msg)
	if len(keys) == 0 {
		t.Fatalf("expected invalidated keys")
	}
	for _, day := range []note.Day{testDay, "2025-10-08"} {
		if _, fresh := cache.Get(query.DayKey(day)); fresh {
			t.Fatalf("expected %s stale after settle", day)
		}
	}
}

func TestCreateGateDropsDuplicates(t *testing.T) {
	mem := newMemoryNotes()
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)

	first := d.CommitText(&note.Note{}, "once")
	if second := d.CommitText(&note.Note{}, "once"); second != nil {
		t.Fatalf("expected duplicate create to be dropped")
	}
	msg := first().(SettledMsg)
	d.Settle(msg)
	if !d.Creating() {
		t.Fatalf("gate must hold until the created note is fetched")
	}
	if cmd := d.CommitText(&note.Note{}, "again"); cmd != nil {
		t.Fatalf("expected create dropped before refetch")
	}

	list, _ := mem.List(context.Background(), testDay)
	d.Loaded(list)
	if d.Creating() {
		t.Fatalf("expected gate released after refetch")
	}
	if cmd := d.CommitText(&note.Note{}, "next"); cmd == nil {
		t.Fatalf("expected create allowed after refetch")
	}
	if d.Dispatched() != 2 {
		t.Fatalf("expected 2 dispatched requests, got %d", d.Dispatched())
	}
}

func TestCreateGateReleasedOnFailure(t *testing.T) {
	mem := newMemoryNotes()
	mem.failCreate = errors.New("offline")
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)

	d.Settle(d.CommitText(&note.Note{}, "x")().(SettledMsg))
	if d.Creating() {
		t.Fatalf("expected gate released after failed create")
	}
}

func TestCreateGateReleasedWhenRefetchFails(t *testing.T) {
	mem := newMemoryNotes()
	d := NewDispatcher(context.Background(), mem, nil, testSelection(), nil)

	cmd := d.CommitText(&note.Note{}, "x")
	d.LoadFailed()
	if !d.Creating() {
		t.Fatalf("expected gate held while the create is in flight")
	}

	d.Settle(cmd().(SettledMsg))
	d.LoadFailed()
	if d.Creating() {
		t.Fatalf("expected gate released after the confirming fetch failed")
	}
	if cmd := d.CommitText(&note.Note{}, "y"); cmd == nil {
		t.Fatalf("expected create allowed after release")
	}
}
