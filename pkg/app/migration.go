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

// Migration pairs a task left open on one day with its copy on another.
type Migration struct {
	From *note.Note
	To   *note.Note
}

// MigrationCandidates returns the open tasks of the selected day.
func (s *Service) MigrationCandidates(ctx context.Context, sel journal.Selection) ([]*note.Note, error) {
	notes, err := s.Notes(ctx, sel)
	if err != nil {
		return nil, err
	}
	var open []*note.Note
	for _, n := range notes {
		if n.BulletTag == glyph.BulletTask {
			open = append(open, n)
		}
	}
	return open, nil
}

// Migrate copies every open task of the selected day to target and marks the
// original as moved. The copy keeps text, project and context.
func (s *Service) Migrate(ctx context.Context, sel journal.Selection, target note.Day) ([]Migration, error) {
	if target.IsZero() {
		return nil, errors.New("app: migration target required")
	}
	if target == sel.Day() {
		return nil, fmt.Errorf("app: cannot migrate %s onto itself", target)
	}
	open, err := s.MigrationCandidates(ctx, sel)
	if err != nil {
		return nil, err
	}
	out := make([]Migration, 0, len(open))
	for _, n := range open {
		cp := n.Clone()
		cp.ID = ""
		cp.DateCreated = target
		cp.Created = time.Time{}
		created, err := s.Persistence.Create(ctx, cp)
		if err != nil {
			return out, fmt.Errorf("app: migrate %s: %w", n.ID, err)
		}
		moved := n.Clone()
		moved.BulletTag = glyph.BulletMoved
		updated, err := s.Persistence.Update(ctx, moved)
		if err != nil {
			return out, fmt.Errorf("app: mark %s moved: %w", n.ID, err)
		}
		out = append(out, Migration{From: updated, To: created})
	}
	return out, nil
}
