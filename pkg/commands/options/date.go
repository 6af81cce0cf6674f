package options

import (
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/note"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

var now = time.Now

// ParseDay accepts "today", "yesterday", "tomorrow", 2020-2-28 or 2/28.
// The short form is taken to be in the current year.
func ParseDay(raw string) (note.Day, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "today":
		return note.DayOf(now()), nil
	case "yesterday":
		return note.DayOf(now().AddDate(0, 0, -1)), nil
	case "tomorrow":
		return note.DayOf(now().AddDate(0, 0, 1)), nil
	}
	t, err := time.Parse(layoutISO, raw)
	if err != nil {
		t, err = time.Parse(layoutISOShort, raw)
		if err != nil {
			return note.ParseDay(raw)
		}
		t = t.AddDate(now().Year(), 0, 0)
	}
	return note.Day(t.Format(time.DateOnly)), nil
}
