package glyph

import "testing"

func TestLabels(t *testing.T) {
	task, ok := Bullets().Lookup("1")
	if !ok {
		t.Fatalf("task icon missing")
	}
	if got := Bullets().Label(task); got != "task-open-task" {
		t.Fatalf("bullet label = %q", got)
	}
	prio, ok := Contexts().Lookup("1")
	if !ok {
		t.Fatalf("priority icon missing")
	}
	if got := Contexts().Label(prio); got != "priority" {
		t.Fatalf("context label = %q", got)
	}
}

func TestSymbolPlaceholder(t *testing.T) {
	if got := Bullets().Symbol(""); got != Placeholder {
		t.Fatalf("expected placeholder for unset bullet, got %q", got)
	}
	if got := Contexts().Symbol("0"); got != Placeholder {
		t.Fatalf("expected placeholder for cleared context, got %q", got)
	}
	if got := Bullets().Symbol("7"); got != "○" {
		t.Fatalf("expected event glyph, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	id, err := Bullets().Resolve("event")
	if err != nil || id != "7" {
		t.Fatalf("resolve by name: id=%q err=%v", id, err)
	}
	id, err = Contexts().Resolve("3")
	if err != nil || id != "3" {
		t.Fatalf("resolve by id: id=%q err=%v", id, err)
	}
	if _, err := Contexts().Resolve("urgent"); err == nil {
		t.Fatalf("expected unknown icon error")
	}
	if id, err := Bullets().Resolve(""); err != nil || id != "" {
		t.Fatalf("empty resolves to absent id")
	}
}

func TestCatalogFor(t *testing.T) {
	if CatalogFor(Context).Category() != Context || CatalogFor(Bullet).Category() != Bullet {
		t.Fatalf("CatalogFor returned wrong catalog")
	}
	if c, err := ParseCategory("secondary"); err != nil || c != Context {
		t.Fatalf("parse category: %v %v", c, err)
	}
}
