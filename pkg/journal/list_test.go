package journal

import (
	"testing"

	"tableflip.dev/daybook/pkg/note"
)

func TestAssembleFiltersAndAppendsDraft(t *testing.T) {
	notes := []*note.Note{
		{ID: "a", UserID: "u1", Text: "first"},
		{ID: "b", UserID: "u2", Text: "other user"},
		{ID: "c", UserID: "u1", ProjectTag: "p1", Text: "project"},
		{ID: "d", UserID: "u1", Text: "second"},
	}

	cases := []struct {
		name string
		sel  Selection
		want []string
	}{
		{name: "no project", sel: Selection{UserID: "u1"}, want: []string{"a", "d", ""}},
		{name: "project", sel: Selection{UserID: "u1", Project: "p1"}, want: []string{"c", ""}},
		{name: "other user", sel: Selection{UserID: "u2"}, want: []string{"b", ""}},
		{name: "nobody matches", sel: Selection{UserID: "u3"}, want: []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := Assemble(notes, tc.sel)
			if len(rows) != len(tc.want) {
				t.Fatalf("expected %d rows, got %d", len(tc.want), len(rows))
			}
			for i, id := range tc.want {
				if rows[i].ID != id {
					t.Fatalf("row %d: expected id %q, got %q", i, id, rows[i].ID)
				}
			}
			last := rows[len(rows)-1]
			if last.Persisted() || last.Text != "" {
				t.Fatalf("expected empty draft as last row, got %s", last)
			}
		})
	}
}

func TestAssembleWithoutUserIsEmpty(t *testing.T) {
	notes := []*note.Note{{ID: "a", UserID: "u1"}}
	if rows := Assemble(notes, Selection{Project: "p1"}); len(rows) != 0 {
		t.Fatalf("expected no rows without a user, got %d", len(rows))
	}
}

func TestSelectionDayFallsBackToToday(t *testing.T) {
	sel := Selection{Today: "2025-01-02"}
	if got := sel.Day(); got != "2025-01-02" {
		t.Fatalf("expected today fallback, got %s", got)
	}
	sel.Date = "2025-03-04"
	if got := sel.Day(); got != "2025-03-04" {
		t.Fatalf("expected selected date, got %s", got)
	}
}
