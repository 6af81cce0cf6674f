package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const weekWidth = len("11 12 13 14 15 16 17")

// Month prints a calendar for the month of then. Days with a non-zero count
// are bold; the rest are faint.
func (pp *PrettyPrint) Month(then time.Time, count []int) {
	w := pp.out()
	title := then.Format("January 2006")
	mid := max((weekWidth-len(title))/2, 0)
	_, _ = color.New(color.Italic).Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)

	d := StartDay(then)
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	faint := color.New(color.Faint)
	bold := color.New(color.Bold)
	for i := 0; i < DaysIn(then); i++ {
		p := faint
		if i < len(count) && count[i] > 0 {
			p = bold
		}
		_, _ = p.Fprintf(w, "%2d ", i+1)
		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprintln(w)
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

// DaysIn returns the number of days in the month of t.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// StartDay is the weekday of the first of t's month.
func StartDay(t time.Time) time.Weekday {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Weekday()
}
