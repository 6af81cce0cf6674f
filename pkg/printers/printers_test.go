package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
)

func init() {
	color.NoColor = true
}

func sampleNotes() []*note.Note {
	created := time.Date(2025, 10, 7, 9, 0, 0, 0, time.UTC)
	return []*note.Note{
		{ID: "a1", DateCreated: "2025-10-07", UserID: "u1", Text: "call bob", BulletTag: "1", ContextTag: "1", Created: created},
		{ID: "b2", DateCreated: "2025-10-07", UserID: "u1", ProjectTag: "house", Text: "fix sink", Created: created.Add(time.Minute)},
	}
}

func TestDayListing(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Day("2025-10-07", sampleNotes()...)
	out := buf.String()
	for _, want := range []string{"2025-10-07 - 2 notes", "✷ ● call bob", "· fix sink"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestNotesShowID(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	pp.Notes(sampleNotes()[0])
	if !strings.HasPrefix(buf.String(), "a1 ") {
		t.Fatalf("expected id column, got %q", buf.String())
	}
}

func TestKeyTable(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Key(glyph.Contexts())
	out := buf.String()
	if !strings.Contains(out, "Context") || !strings.Contains(out, "investigation") {
		t.Fatalf("unexpected key table:\n%s", out)
	}
}

func TestReportAndMigrations(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	notes := sampleNotes()
	pp.Report(app.ReportResult{From: "2025-10-01", To: "2025-10-07", Total: 1, Sections: []app.ReportSection{{Day: "2025-10-07", Notes: notes[:1]}}})
	moved := *notes[0]
	moved.DateCreated = "2025-10-08"
	pp.Migrations([]app.Migration{{From: notes[0], To: &moved}})
	out := buf.String()
	for _, want := range []string{"Completed 2025-10-01..2025-10-07 - 1 note", "call bob", "→ 2025-10-08"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestMonth(t *testing.T) {
	var buf bytes.Buffer
	then := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	(&PrettyPrint{Out: &buf}).Month(then, make([]int, 31))
	out := buf.String()
	if !strings.Contains(out, "October 2025") || !strings.Contains(out, "31") {
		t.Fatalf("unexpected calendar:\n%s", out)
	}
	if DaysIn(then) != 31 || StartDay(then) != time.Wednesday {
		t.Fatalf("unexpected month math")
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML, "toml": FormatTOML} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestExportFormats(t *testing.T) {
	notes := sampleNotes()

	var js bytes.Buffer
	if err := Export(&js, FormatJSON, notes); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON exportDoc
	if err := json.Unmarshal(js.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(fromJSON.Notes) != 2 || fromJSON.Notes[1].Project != "house" {
		t.Fatalf("unexpected json export %s", js.String())
	}

	var ym bytes.Buffer
	if err := Export(&ym, FormatYAML, notes); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML exportDoc
	if err := yaml.Unmarshal(ym.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if fromYAML.Notes[0].Text != "call bob" {
		t.Fatalf("unexpected yaml export %s", ym.String())
	}

	var tm bytes.Buffer
	if err := Export(&tm, FormatTOML, notes); err != nil {
		t.Fatalf("toml: %v", err)
	}
	var fromTOML exportDoc
	if err := toml.Unmarshal(tm.Bytes(), &fromTOML); err != nil {
		t.Fatalf("decode toml: %v", err)
	}
	if fromTOML.Notes[0].Bullet != "1" || !fromTOML.Notes[0].Created.Equal(notes[0].Created) {
		t.Fatalf("unexpected toml export %s", tm.String())
	}
}
