package journal

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/query"
	"tableflip.dev/daybook/pkg/store"
)

// State is the session's overlay state.
type State int

const (
	Idle State = iota
	PrimaryMenuOpen
	SecondaryMenuOpen
	ModalOpen
)

func (s State) String() string {
	switch s {
	case PrimaryMenuOpen:
		return "primary-menu"
	case SecondaryMenuOpen:
		return "secondary-menu"
	case ModalOpen:
		return "modal"
	default:
		return "idle"
	}
}

// Row is one rendered line: the note (or the draft) and its input buffer.
type Row struct {
	Note   *note.Note
	Buffer *Buffer
}

// Option configures a Session.
type Option func(*Session)

// WithCache shares a query cache between sessions.
func WithCache(c *query.Cache) Option {
	return func(s *Session) { s.cache = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithContext sets the context passed to store calls.
func WithContext(ctx context.Context) Option {
	return func(s *Session) { s.ctx = ctx }
}

// WithShowSearch installs the action run for SearchRequestMsg.
func WithShowSearch(fn func() tea.Cmd) Option {
	return func(s *Session) { s.showSearch = fn }
}

// Session routes gestures to the buffers, dispatcher and menu, and holds the
// note targeted by the full-note modal.
type Session struct {
	sel    Selection
	notes  store.Notes
	cache  *query.Cache
	ctx    context.Context
	logger *slog.Logger

	dispatcher *Dispatcher
	menu       *IconMenu

	rows      []Row
	current   *note.Note
	modalOpen bool
	loadErr   error

	showSearch func() tea.Cmd
}

// New builds a session for sel over notes.
func New(sel Selection, notes store.Notes, opts ...Option) *Session {
	s := &Session{sel: sel, notes: notes}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = query.New()
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.dispatcher = NewDispatcher(s.ctx, notes, s.cache, sel, s.logger)
	s.menu = NewIconMenu(s.dispatcher)
	s.dispatcher.menu = s.menu
	return s
}

// Init loads the selected day.
func (s *Session) Init() tea.Cmd {
	return s.load()
}

// Update applies one message and returns any store work to run.
func (s *Session) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotesLoadedMsg:
		if msg.Day != s.sel.Day() {
			return nil
		}
		if msg.Err != nil {
			s.logger.Debug("journal: fetch failed", "day", msg.Day, "err", msg.Err)
			s.loadErr = msg.Err
			s.dispatcher.LoadFailed()
			return nil
		}
		s.loadErr = nil
		s.cache.Set(query.DayKey(msg.Day), msg.Notes)
		s.apply(msg.Notes)
	case SettledMsg:
		s.dispatcher.Settle(msg)
		if msg.Op == OpCreate && msg.Err == nil {
			s.clearDraft(msg.Note.Text)
		}
		return s.load()
	case InvalidateMsg:
		s.cache.Invalidate(msg.Key)
		if query.DayKey(s.sel.Day()).HasPrefix(msg.Key) {
			return s.load()
		}
	case InputMsg:
		if row, ok := s.Row(msg.Row); ok {
			row.Buffer.Set(msg.Value)
		}
	case KeyCommitMsg:
		row, ok := s.Row(msg.Row)
		if !ok {
			return nil
		}
		ev, commit := row.Buffer.KeyPress(msg.Key, row.Note, msg.Row)
		if !commit {
			return nil
		}
		return s.dispatcher.CommitText(ev.Note, ev.Text)
	case IconClickMsg:
		if s.modalOpen {
			return nil
		}
		row, ok := s.Row(msg.Row)
		if !ok {
			return nil
		}
		s.current = row.Note
		s.menu.Open(msg.Category, row.Note, msg.Anchor)
	case IconSelectMsg:
		if !s.menu.Visible(msg.Category) {
			return nil
		}
		return s.menu.Select(msg.Category, msg.IconID)
	case MenuCloseMsg:
		s.menu.Close()
	case EditRequestMsg:
		row, ok := s.Row(msg.Row)
		if !ok || !row.Note.Persisted() {
			return nil
		}
		s.menu.Close()
		s.current = row.Note
		s.modalOpen = true
	case ModalCloseMsg:
		s.current = nil
		s.modalOpen = false
	case ModalSubmitMsg:
		if !s.modalOpen {
			return nil
		}
		target := s.current
		s.current = nil
		s.modalOpen = false
		return s.dispatcher.CommitText(target, msg.Text)
	case SearchRequestMsg:
		if s.showSearch != nil {
			return s.showSearch()
		}
	}
	return nil
}

// State derives the overlay state from the menu and modal flags.
func (s *Session) State() State {
	switch {
	case s.modalOpen:
		return ModalOpen
	case s.menu.Visible(glyph.Bullet):
		return PrimaryMenuOpen
	case s.menu.Visible(glyph.Context):
		return SecondaryMenuOpen
	default:
		return Idle
	}
}

// Rows returns the rendered rows. The slice is a copy; buffers are shared.
func (s *Session) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// Row returns row i.
func (s *Session) Row(i int) (Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[i], true
}

func (s *Session) Menu() *IconMenu {
	return s.menu
}

func (s *Session) Dispatcher() *Dispatcher {
	return s.dispatcher
}

func (s *Session) Selection() Selection {
	return s.sel
}

// CurrentNote is the note last targeted by a menu or the modal.
func (s *Session) CurrentNote() *note.Note {
	return s.current
}

func (s *Session) ModalOpen() bool {
	return s.modalOpen
}

// LoadErr is the last fetch failure; rows keep their previous contents.
func (s *Session) LoadErr() error {
	return s.loadErr
}

// StaleSince reports when the rows shown during a load error were fetched.
func (s *Session) StaleSince() (time.Time, bool) {
	if s.loadErr == nil {
		return time.Time{}, false
	}
	return s.cache.FetchedAt(query.DayKey(s.sel.Day()))
}

func (s *Session) load() tea.Cmd {
	day := s.sel.Day()
	if cached, fresh := s.cache.Get(query.DayKey(day)); fresh {
		s.apply(cached)
		return nil
	}
	notes, ctx := s.notes, s.ctx
	return func() tea.Msg {
		list, err := notes.List(ctx, day)
		return NotesLoadedMsg{Day: day, Notes: list, Err: err}
	}
}

// clearDraft empties the draft row once its text has been created, so a failed
// refetch cannot leave it there to be submitted again.
func (s *Session) clearDraft(created string) {
	if len(s.rows) == 0 {
		return
	}
	draft := s.rows[len(s.rows)-1]
	if draft.Note.Persisted() || draft.Buffer.Value() != created {
		return
	}
	draft.Buffer.Set("")
}

// apply reconciles rows by index: surviving rows keep their buffer, which
// resyncs only if its note's text changed.
func (s *Session) apply(notes []*note.Note) {
	list := Assemble(notes, s.sel)
	rows := make([]Row, len(list))
	for i, n := range list {
		if i < len(s.rows) {
			buf := s.rows[i].Buffer
			buf.Sync(n.Text)
			rows[i] = Row{Note: n, Buffer: buf}
			continue
		}
		rows[i] = Row{Note: n, Buffer: NewBuffer(n.Text)}
	}
	s.rows = rows
	s.dispatcher.Loaded(notes)
}
