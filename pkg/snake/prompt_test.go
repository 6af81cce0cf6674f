package snake

import (
	"bytes"
	"testing"

	"tableflip.dev/daybook/pkg/glyph"
)

func TestIconSearcher(t *testing.T) {
	items := iconItems(glyph.Bullets())
	if len(items) != len(glyph.Bullets().Icons()) || items[0].Label != "task-open-task" {
		t.Fatalf("unexpected items %+v", items)
	}
	search := searcher(items)
	if !search("Open Task", 0) {
		t.Fatal("expected case and space insensitive match")
	}
	if search("event", 0) {
		t.Fatal("expected no match for another icon")
	}
}

func TestNopCloser(t *testing.T) {
	var buf bytes.Buffer
	w := nopCloser{&buf}
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "ok" {
		t.Fatalf("unexpected %q", buf.String())
	}
}
