package journal

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/query"
	"tableflip.dev/daybook/pkg/store"
)

type menuCloser interface {
	CloseCategory(glyph.Category)
}

// Dispatcher turns commits into exactly one create or update and invalidates
// the journal cache once the store call settles, whatever its outcome.
//
// Commits are submitted immediately. While a create is in flight, further
// creates are dropped until the refetched list contains the new note, so a
// quick double Enter on the draft row cannot create twice.
type Dispatcher struct {
	notes  store.Notes
	cache  *query.Cache
	sel    Selection
	ctx    context.Context
	logger *slog.Logger
	menu   menuCloser

	creating   bool
	pendingID  string
	dispatched int
}

func NewDispatcher(ctx context.Context, notes store.Notes, cache *query.Cache, sel Selection, logger *slog.Logger) *Dispatcher {
	if ctx == nil {
		ctx = context.Background()
	}
	if cache == nil {
		cache = query.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		notes:  notes,
		cache:  cache,
		sel:    sel,
		ctx:    ctx,
		logger: logger,
	}
}

// CommitText creates a note from the draft or replaces the text of a
// persisted note.
func (d *Dispatcher) CommitText(n *note.Note, text string) tea.Cmd {
	if n == nil {
		return nil
	}
	if !n.Persisted() {
		draft := d.draft()
		draft.Text = text
		return d.create(draft)
	}
	edit := n.Clone()
	edit.Text = text
	return d.update(edit)
}

// CommitIcon sets the tag for category, creating the note when needed. The
// category's menu is closed right away, before the store answers.
func (d *Dispatcher) CommitIcon(category glyph.Category, n *note.Note, iconID string) tea.Cmd {
	if d.menu != nil {
		d.menu.CloseCategory(category)
	}
	if n == nil {
		return nil
	}
	if !n.Persisted() {
		draft := d.draft()
		setTag(draft, category, iconID)
		return d.create(draft)
	}
	edit := n.Clone()
	setTag(edit, category, iconID)
	return d.update(edit)
}

// Settle invalidates every journal list and the selected day. The caller
// refetches.
func (d *Dispatcher) Settle(msg SettledMsg) []query.Key {
	if msg.Err != nil {
		d.logger.Debug("journal: commit failed", "op", msg.Op, "note", msg.Note.String(), "err", msg.Err)
	}
	if msg.Op == OpCreate {
		if msg.Err != nil || !msg.Note.Persisted() {
			d.creating = false
			d.pendingID = ""
		} else {
			d.pendingID = msg.Note.ID
		}
	}
	keys := d.cache.Invalidate(query.JournalsKey())
	return append(keys, d.cache.Invalidate(query.DayKey(d.sel.Day()))...)
}

// Loaded releases the create gate once the created note shows up in a fetch.
func (d *Dispatcher) Loaded(notes []*note.Note) {
	if !d.creating || d.pendingID == "" {
		return
	}
	for _, n := range notes {
		if n.ID == d.pendingID {
			d.creating = false
			d.pendingID = ""
			return
		}
	}
}

// LoadFailed releases the create gate when the create already settled and the
// refetch meant to confirm it failed. A create still in flight keeps the gate
// closed; its settle triggers another fetch.
func (d *Dispatcher) LoadFailed() {
	if !d.creating || d.pendingID == "" {
		return
	}
	d.logger.Debug("journal: refetch failed, releasing create gate", "note", d.pendingID)
	d.creating = false
	d.pendingID = ""
}

// Creating reports whether a create is still unresolved.
func (d *Dispatcher) Creating() bool {
	return d.creating
}

// Dispatched counts the store requests issued so far.
func (d *Dispatcher) Dispatched() int {
	return d.dispatched
}

func (d *Dispatcher) draft() *note.Note {
	n := &note.Note{
		DateCreated: d.sel.Day(),
		UserID:      d.sel.UserID,
	}
	if d.sel.Project != "" {
		n.ProjectTag = d.sel.Project
	}
	return n
}

func (d *Dispatcher) create(n *note.Note) tea.Cmd {
	if d.creating {
		d.logger.Debug("journal: create dropped while another is in flight", "note", n.String())
		return nil
	}
	d.creating = true
	d.dispatched++
	notes, ctx, day := d.notes, d.ctx, d.sel.Day()
	return func() tea.Msg {
		saved, err := notes.Create(ctx, n)
		if saved == nil {
			saved = n
		}
		return SettledMsg{Op: OpCreate, Day: day, Note: saved, Err: err}
	}
}

func (d *Dispatcher) update(n *note.Note) tea.Cmd {
	d.dispatched++
	notes, ctx, day := d.notes, d.ctx, d.sel.Day()
	return func() tea.Msg {
		saved, err := notes.Update(ctx, n)
		if saved == nil {
			saved = n
		}
		return SettledMsg{Op: OpUpdate, Day: day, Note: saved, Err: err}
	}
}

func setTag(n *note.Note, category glyph.Category, iconID string) {
	switch category {
	case glyph.Context:
		if iconID == "" {
			iconID = note.NoContext
		}
		n.ContextTag = iconID
	default:
		n.BulletTag = iconID
	}
}
