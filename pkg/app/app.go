package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/store"
)

// Service provides note operations shared by the CLI and the MCP server.
// It applies the same create/update rules as the journal session.
type Service struct {
	Persistence store.Persistence
}

var ErrNoPersistence = errors.New("app: no persistence configured")

// Notes lists the notes of the selected day visible to the selection. Without
// a selected user every note of the day is returned.
func (s *Service) Notes(ctx context.Context, sel journal.Selection) ([]*note.Note, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	all, err := s.Persistence.List(ctx, sel.Day())
	if err != nil {
		return nil, fmt.Errorf("app: list %s: %w", sel.Day(), err)
	}
	if !sel.HasUser() {
		return all, nil
	}
	out := make([]*note.Note, 0, len(all))
	for _, n := range all {
		if n.Matches(sel.Project, sel.UserID) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Get returns the note with id.
func (s *Service) Get(ctx context.Context, id string) (*note.Note, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Get(ctx, strings.TrimSpace(id))
}

// Add creates a note on the selected day. bullet and contextTag accept an
// icon id, name or label; empty leaves the tag unset.
func (s *Service) Add(ctx context.Context, sel journal.Selection, text, bullet, contextTag string) (*note.Note, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if !sel.HasUser() {
		return nil, errors.New("app: user required")
	}
	n := &note.Note{
		DateCreated: sel.Day(),
		UserID:      sel.UserID,
		ProjectTag:  sel.Project,
		Text:        text,
	}
	if err := applyTag(n, glyph.Bullet, bullet); err != nil {
		return nil, err
	}
	if contextTag != "" {
		if err := applyTag(n, glyph.Context, contextTag); err != nil {
			return nil, err
		}
	}
	return s.Persistence.Create(ctx, n)
}

// Edit replaces the text of the note id, preserving every other field.
func (s *Service) Edit(ctx context.Context, id, text string) (*note.Note, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Text = text
	return s.Persistence.Update(ctx, n)
}

// SetTag replaces the tag of category on note id. An empty context icon
// clears the context to note.NoContext.
func (s *Service) SetTag(ctx context.Context, id string, category glyph.Category, icon string) (*note.Note, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyTag(n, category, icon); err != nil {
		return nil, err
	}
	return s.Persistence.Update(ctx, n)
}

func applyTag(n *note.Note, category glyph.Category, raw string) error {
	id, err := glyph.CatalogFor(category).Resolve(raw)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	switch category {
	case glyph.Context:
		if id == "" {
			id = note.NoContext
		}
		n.ContextTag = id
	default:
		n.BulletTag = id
	}
	return nil
}
