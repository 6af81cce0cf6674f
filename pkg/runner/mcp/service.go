// Package mcp exposes daybook notes over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/store"
)

// Service adapts app.Service to transport-friendly values.
type Service struct {
	app *app.Service
}

// SelectionArgs scope a request to a day, project and user.
type SelectionArgs struct {
	Date    string `json:"date"`
	Project string `json:"project"`
	User    string `json:"user"`
}

// NoteDTO is a transport-friendly projection of a note.
type NoteDTO struct {
	ID            string `json:"id"`
	Day           string `json:"day"`
	User          string `json:"user"`
	Project       string `json:"project,omitempty"`
	Text          string `json:"text"`
	Bullet        string `json:"bullet,omitempty"`
	BulletSymbol  string `json:"bulletSymbol"`
	BulletLabel   string `json:"bulletLabel,omitempty"`
	Context       string `json:"context,omitempty"`
	ContextSymbol string `json:"contextSymbol"`
	ContextLabel  string `json:"contextLabel,omitempty"`
	CreatedISO    string `json:"created,omitempty"`
	CreatedUnix   int64  `json:"createdUnix,omitempty"`
}

// IconDTO describes one catalog entry.
type IconDTO struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

// NewService builds a service over the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{app: &app.Service{Persistence: p}}
}

// Selection converts request arguments into a journal selection.
func (a SelectionArgs) Selection() (journal.Selection, error) {
	sel := journal.Selection{
		Project: strings.TrimSpace(a.Project),
		UserID:  strings.TrimSpace(a.User),
	}
	if raw := strings.TrimSpace(a.Date); raw != "" && raw != "today" {
		day, err := note.ParseDay(raw)
		if err != nil {
			return sel, err
		}
		sel.Date = day
	}
	return sel, nil
}

// ListNotes returns the notes visible to the selection.
func (s *Service) ListNotes(ctx context.Context, args SelectionArgs) ([]NoteDTO, error) {
	sel, err := args.Selection()
	if err != nil {
		return nil, err
	}
	notes, err := s.app.Notes(ctx, sel)
	if err != nil {
		return nil, err
	}
	return toDTOs(notes), nil
}

// CreateNote persists a new note for the selection.
func (s *Service) CreateNote(ctx context.Context, args SelectionArgs, text, bullet, contextTag string) (*NoteDTO, error) {
	sel, err := args.Selection()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required")
	}
	n, err := s.app.Add(ctx, sel, text, bullet, contextTag)
	if err != nil {
		return nil, err
	}
	dto := toDTO(n)
	return &dto, nil
}

// UpdateNote rewrites the text of a note.
func (s *Service) UpdateNote(ctx context.Context, id, text string) (*NoteDTO, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	n, err := s.app.Edit(ctx, id, text)
	if err != nil {
		return nil, err
	}
	dto := toDTO(n)
	return &dto, nil
}

// SetTag applies an icon from category to a note.
func (s *Service) SetTag(ctx context.Context, id string, category glyph.Category, icon string) (*NoteDTO, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	n, err := s.app.SetTag(ctx, id, category, icon)
	if err != nil {
		return nil, err
	}
	dto := toDTO(n)
	return &dto, nil
}

// NoteByID fetches a single note.
func (s *Service) NoteByID(ctx context.Context, id string) (*NoteDTO, error) {
	n, err := s.app.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(n)
	return &dto, nil
}

// Icons lists the catalog for category.
func (s *Service) Icons(category glyph.Category) []IconDTO {
	c := glyph.CatalogFor(category)
	out := make([]IconDTO, 0, len(c.Icons()))
	for _, icon := range c.Icons() {
		out = append(out, IconDTO{ID: icon.ID, Symbol: icon.Symbol, Label: c.Label(icon)})
	}
	return out
}

func toDTOs(notes []*note.Note) []NoteDTO {
	out := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toDTO(n))
	}
	return out
}

func toDTO(n *note.Note) NoteDTO {
	dto := NoteDTO{
		ID:            n.ID,
		Day:           n.DateCreated.String(),
		User:          n.UserID,
		Project:       n.ProjectTag,
		Text:          n.Text,
		Bullet:        n.BulletTag,
		BulletSymbol:  glyph.Bullets().Symbol(n.BulletTag),
		Context:       n.ContextTag,
		ContextSymbol: glyph.Contexts().Symbol(n.ContextTag),
	}
	if icon, ok := glyph.Bullets().Lookup(n.BulletTag); ok {
		dto.BulletLabel = glyph.Bullets().Label(icon)
	}
	if icon, ok := glyph.Contexts().Lookup(n.ContextTag); ok {
		dto.ContextLabel = glyph.Contexts().Label(icon)
	}
	if !n.Created.IsZero() {
		dto.CreatedISO = n.Created.UTC().Format(time.RFC3339)
		dto.CreatedUnix = n.Created.Unix()
	}
	return dto
}
