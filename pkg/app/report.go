package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/note"
)

// ReportSection groups the completed notes of one day.
type ReportSection struct {
	Day   note.Day
	Notes []*note.Note
}

// ReportResult is a completed-notes report for a range of days.
type ReportResult struct {
	From     note.Day
	To       note.Day
	Sections []ReportSection
	Total    int
}

// maxReportDays bounds a report so a typo in a date cannot walk decades.
const maxReportDays = 366

// Report returns notes with a completed bullet between from and to,
// inclusive, grouped by day. Days without completed notes are omitted.
func (s *Service) Report(ctx context.Context, sel journal.Selection, from, to note.Day) (ReportResult, error) {
	if s.Persistence == nil {
		return ReportResult{}, ErrNoPersistence
	}
	days, err := dayRange(from, to)
	if err != nil {
		return ReportResult{}, err
	}
	result := ReportResult{From: days[0], To: days[len(days)-1]}
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return ReportResult{}, err
		}
		sel.Date = day
		notes, err := s.Notes(ctx, sel)
		if err != nil {
			return ReportResult{}, err
		}
		var done []*note.Note
		for _, n := range notes {
			if n.BulletTag == glyph.BulletCompleted {
				done = append(done, n)
			}
		}
		if len(done) == 0 {
			continue
		}
		result.Sections = append(result.Sections, ReportSection{Day: day, Notes: done})
		result.Total += len(done)
	}
	return result, nil
}

func dayRange(from, to note.Day) ([]note.Day, error) {
	start, err := time.Parse(time.DateOnly, from.String())
	if err != nil {
		return nil, fmt.Errorf("app: report start: %w", err)
	}
	end, err := time.Parse(time.DateOnly, to.String())
	if err != nil {
		return nil, fmt.Errorf("app: report end: %w", err)
	}
	if start.After(end) {
		start, end = end, start
	}
	var days []note.Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if len(days) == maxReportDays {
			return nil, errors.New("app: report range too long")
		}
		days = append(days, note.Day(d.Format(time.DateOnly)))
	}
	return days, nil
}

// MonthCounts returns, for each day of month, the number of notes visible to
// the selection. Index 0 is the first of the month.
func (s *Service) MonthCounts(ctx context.Context, sel journal.Selection, month time.Time) ([]int, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	days, err := dayRange(note.Day(first.Format(time.DateOnly)), note.Day(last.Format(time.DateOnly)))
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(days))
	for i, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sel.Date = day
		notes, err := s.Notes(ctx, sel)
		if err != nil {
			return nil, err
		}
		counts[i] = len(notes)
	}
	return counts, nil
}
