package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
)

// PrettyPrint writes colored, human-oriented listings.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

// idWidth fits a UUID plus two spaces of gutter.
const idWidth = 38

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", idWidth))
	}
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints title followed by a faint note count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", idWidth))
	}
	_, _ = t.Fprint(pp.out(), title)
	noun := "notes"
	if count == 1 {
		noun = "note"
	}
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

// Notes prints one line per note: context, bullet, text.
func (pp *PrettyPrint) Notes(notes ...*note.Note) {
	w := pp.out()
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(w, strings.Repeat(" ", idWidth))
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, n := range notes {
		if pp.ShowID {
			_, _ = y.Fprint(w, n.ID)
			_, _ = fmt.Fprint(w, strings.Repeat(" ", max(idWidth-len(n.ID), 1)))
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", glyph.Contexts().Symbol(n.ContextTag), glyph.Bullets().Symbol(n.BulletTag), n.Text)
	}
	_, _ = fmt.Fprintln(w)
}

// Day prints a titled day listing.
func (pp *PrettyPrint) Day(day note.Day, notes ...*note.Note) {
	pp.TitleWithCount(day.String(), len(notes))
	pp.Notes(notes...)
}

// Key prints the legend of a catalog as a table.
func (pp *PrettyPrint) Key(c glyph.Catalog) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Icon"), bold.Sprint(heading(c.Category())))
	for _, icon := range c.Icons() {
		tbl.AddRow(icon.ID, icon.Symbol, c.Label(icon))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Report prints completed notes grouped by day.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.TitleWithCount(fmt.Sprintf("Completed %s..%s", r.From, r.To), r.Total)
	if len(r.Sections) == 0 {
		pp.Notes()
		return
	}
	for _, s := range r.Sections {
		_, _ = color.New(color.Faint).Fprintln(pp.out(), s.Day.String())
		pp.Notes(s.Notes...)
	}
}

// Migrations prints each moved task and the day it moved to.
func (pp *PrettyPrint) Migrations(moved []app.Migration) {
	if len(moved) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "nothing to migrate")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, mg := range moved {
		tbl.AddRow(glyph.Bullets().Symbol(mg.From.BulletTag), mg.From.Text, "→ "+mg.To.DateCreated.String())
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func heading(c glyph.Category) string {
	name := c.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
