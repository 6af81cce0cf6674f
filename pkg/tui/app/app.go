// Package teaui is the Bubble Tea root model for the journal: it hosts a
// journal.Session, binds one text input to the focused row and draws the
// icon menus, edit modal, search prompt and help as overlays.
package teaui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/query"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui/components/eventviewer"
	"tableflip.dev/daybook/pkg/tui/components/help"
	"tableflip.dev/daybook/pkg/tui/components/iconmenu"
	"tableflip.dev/daybook/pkg/tui/components/noteedit"
	"tableflip.dev/daybook/pkg/tui/components/search"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui/overlay"
)

const (
	headerRows   = 2
	rowPrefix    = 2
	bulletColumn = rowPrefix
	contextCol   = rowPrefix + 2
	textColumn   = rowPrefix + 4
)

// storeEventMsg wraps a change reported by the store watcher.
type storeEventMsg struct {
	event store.Event
}

func (m storeEventMsg) Describe() string {
	return fmt.Sprintf("type:%s day:%s", m.event.Type, m.event.Day)
}

// Options configures the root model.
type Options struct {
	Selection journal.Selection
	Context   context.Context
	Logger    *slog.Logger
	Debug     bool
}

// Model is the root tea.Model.
type Model struct {
	service *app.Service
	ctx     context.Context
	logger  *slog.Logger
	cache   *query.Cache
	theme   theme.Theme

	sel     journal.Selection
	session *journal.Session
	focus   int
	editor  textinput.Model
	// followDraft moves focus to the new draft once a draft commit lands.
	followDraft bool

	menu   *iconmenu.Model
	modal  *noteedit.Model
	search *search.Model
	help   *help.Model
	events *eventviewer.Model

	watch  <-chan store.Event
	width  int
	height int
	status string
}

// New constructs the root model over service.
func New(service *app.Service, opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	editor := textinput.New()
	editor.Prompt = ""
	editor.Placeholder = "new note…"
	editor.Focus()

	m := &Model{
		service: service,
		ctx:     opts.Context,
		logger:  opts.Logger,
		cache:   query.New(),
		theme:   theme.Default(),
		sel:     opts.Selection,
		editor:  editor,
		width:   80,
		height:  24,
	}
	if opts.Debug {
		m.events = eventviewer.NewModel(400)
	}
	m.session = m.newSession()
	return m
}

// Run launches the Bubble Tea program.
func Run(service *app.Service, opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(New(service, opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}

func (m *Model) newSession() *journal.Session {
	var notes store.Notes
	if m.service != nil && m.service.Persistence != nil {
		notes = m.service.Persistence
	}
	return journal.New(m.sel, notes,
		journal.WithCache(m.cache),
		journal.WithContext(m.ctx),
		journal.WithLogger(m.logger),
		journal.WithShowSearch(m.openSearch),
	)
}

// Session exposes the hosted journal session.
func (m *Model) Session() *journal.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.session.Init()}
	if m.service != nil && m.service.Persistence != nil {
		ch, err := m.service.Watch(m.ctx)
		if err != nil {
			m.logger.Warn("tui: watch unavailable", "err", err)
		} else {
			m.watch = ch
			cmds = append(cmds, m.waitForChange())
		}
	}
	m.syncEditor()
	return tea.Batch(cmds...)
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev}
	}
}

// Update routes messages to the session and the open overlay.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = v.Width, v.Height
		m.layout()
		return m, nil
	case storeEventMsg:
		key := query.JournalsKey()
		if v.event.Type == store.EventDayChanged && !v.event.Day.IsZero() {
			key = query.DayKey(v.event.Day)
		}
		cmds = append(cmds, m.session.Update(journal.InvalidateMsg{Key: key}), m.waitForChange())
	case journal.NotesLoadedMsg, journal.SettledMsg, journal.InvalidateMsg,
		journal.IconSelectMsg, journal.MenuCloseMsg,
		journal.ModalSubmitMsg, journal.ModalCloseMsg:
		cmds = append(cmds, m.session.Update(msg))
	case search.SubmitMsg:
		m.search = nil
		m.sel = v.Selection
		m.focus = 0
		m.session = m.newSession()
		m.status = "showing " + m.sel.String()
		cmds = append(cmds, m.session.Init())
	case search.CancelMsg:
		m.search = nil
	case noteedit.CopiedMsg:
		if m.modal != nil {
			m.modal, _ = m.modal.Update(v)
		}
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(v))
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncOverlays()
	m.syncEditor()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "f1":
		m.toggleHelp()
		return nil
	case "f2":
		m.toggleDebug()
		return nil
	}
	if m.help != nil {
		if key.String() == "esc" {
			m.help = nil
			return nil
		}
		_, cmd := m.help.Update(key)
		return cmd
	}
	if m.search != nil {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(key)
		return cmd
	}
	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(key)
		return cmd
	}
	if m.menu != nil {
		if k := key.String(); k != "ctrl+b" && k != "ctrl+t" {
			_, cmd := m.menu.Update(key)
			return cmd
		}
	}
	return m.handleRowKey(key)
}

func (m *Model) handleRowKey(key tea.KeyPressMsg) tea.Cmd {
	rows := m.session.Rows()
	switch key.String() {
	case "up":
		m.moveFocus(-1)
		return nil
	case "down":
		m.moveFocus(1)
		return nil
	case "ctrl+b":
		return m.session.Update(journal.IconClickMsg{Category: glyph.Bullet, Row: m.focus, Anchor: m.anchor(bulletColumn)})
	case "ctrl+t":
		return m.session.Update(journal.IconClickMsg{Category: glyph.Context, Row: m.focus, Anchor: m.anchor(contextCol)})
	case "ctrl+e":
		return m.session.Update(journal.EditRequestMsg{Row: m.focus})
	case "ctrl+f":
		return m.session.Update(journal.SearchRequestMsg{})
	case "esc":
		return m.session.Update(journal.MenuCloseMsg{})
	}
	if m.focus >= len(rows) {
		return nil
	}
	if key.Code == tea.KeyEnter {
		cmd := m.session.Update(journal.KeyCommitMsg{Row: m.focus, Key: key})
		if cmd != nil && !rows[m.focus].Note.Persisted() {
			m.followDraft = true
		}
		return cmd
	}
	var cmd tea.Cmd
	before := m.editor.Value()
	m.editor, cmd = m.editor.Update(key)
	if value := m.editor.Value(); value != before {
		m.session.Update(journal.InputMsg{Row: m.focus, Value: value})
	}
	return cmd
}

func (m *Model) moveFocus(delta int) {
	m.followDraft = false
	n := len(m.session.Rows())
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = min(max(m.focus+delta, 0), n-1)
	m.bindEditor()
}

// bindEditor loads the focused row's buffer into the editor.
func (m *Model) bindEditor() {
	row, ok := m.session.Row(m.focus)
	if !ok {
		m.editor.SetValue("")
		return
	}
	m.editor.SetValue(row.Buffer.Value())
	m.editor.CursorEnd()
}

// syncEditor keeps focus in range and picks up buffer resets from refetches.
func (m *Model) syncEditor() {
	n := len(m.session.Rows())
	if m.focus >= n {
		m.focus = max(n-1, 0)
	}
	row, ok := m.session.Row(m.focus)
	if !ok {
		return
	}
	if m.followDraft && row.Note.Persisted() {
		m.followDraft = false
		m.focus = n - 1
		m.bindEditor()
		return
	}
	if row.Buffer.Value() != m.editor.Value() {
		m.bindEditor()
	}
}

// syncOverlays mirrors the session's menu and modal state into components.
func (m *Model) syncOverlays() {
	if category, open := m.session.Menu().Active(); open {
		if m.menu == nil || m.menu.Category() != category {
			current := ""
			if target := m.session.Menu().Target(); target != nil {
				current = target.BulletTag
				if category == glyph.Context {
					current = target.ContextTag
				}
			}
			m.menu = iconmenu.New(category, current, m.theme.Menu)
		}
	} else {
		m.menu = nil
	}

	if m.session.ModalOpen() {
		if m.modal == nil || m.modal.Note() != m.session.CurrentNote() {
			m.modal = noteedit.New(m.session.CurrentNote(), m.theme.Modal)
			m.modal.SetWidth(m.overlayWidth())
		}
	} else {
		m.modal = nil
	}
}

func (m *Model) openSearch() tea.Cmd {
	m.search = search.New(m.sel, m.theme.Modal)
	m.search.SetWidth(m.overlayWidth())
	return nil
}

func (m *Model) toggleHelp() {
	if m.help != nil {
		m.help = nil
		return
	}
	m.help = help.New(m.overlayWidth(), max(m.height-4, 8))
}

func (m *Model) toggleDebug() {
	if m.events != nil {
		m.events = nil
		m.status = "event log hidden"
		return
	}
	m.events = eventviewer.NewModel(400)
	m.layout()
	m.status = "event log visible"
}

func (m *Model) noteEvent(msg tea.Msg) {
	if d := eventviewer.Describe(msg); d != "" {
		m.logger.Debug("tui: message", "kind", eventviewer.Kind(msg), "detail", d)
	}
	if m.events != nil {
		m.events.Record(msg)
	}
}

func (m *Model) layout() {
	if m.events != nil {
		m.events.SetSize(m.width, m.debugHeight())
	}
	if m.modal != nil {
		m.modal.SetWidth(m.overlayWidth())
	}
	if m.search != nil {
		m.search.SetWidth(m.overlayWidth())
	}
	if m.help != nil {
		m.help.SetSize(m.overlayWidth(), max(m.height-4, 8))
	}
	m.editor.SetWidth(max(m.width-textColumn-2, 10))
}

func (m *Model) debugHeight() int {
	if m.events == nil || m.height < 12 {
		return 0
	}
	return min(max(m.height/3, 5), 12)
}

func (m *Model) overlayWidth() int {
	return min(max(m.width*3/4, 24), max(m.width, 24))
}

// anchor is the screen rectangle of an icon cell on the focused row.
func (m *Model) anchor(column int) journal.Rect {
	return journal.Rect{X: column, Y: headerRows + m.focus, Width: 1, Height: 1}
}

// View renders rows, footer, the optional event log and any overlay.
func (m *Model) View() (string, *tea.Cursor) {
	debugRows := m.debugHeight()
	bodyRows := max(m.height-debugRows, 1)

	lines := []string{m.headerLine(), ""}
	for i, row := range m.session.Rows() {
		lines = append(lines, m.rowLine(i, row))
	}
	if len(m.session.Rows()) == 0 {
		lines = append(lines, m.theme.Row.Draft.Render("select a user with ctrl+f"))
	}
	for len(lines) < bodyRows-1 {
		lines = append(lines, "")
	}
	lines = append(lines[:min(len(lines), bodyRows-1)], m.footerLine())
	view := strings.Join(lines, "\n")

	if debugRows > 0 {
		view += "\n" + m.events.View()
	}

	height := bodyRows + debugRows
	switch {
	case m.help != nil:
		view = overlay.Compose(view, m.width, height, m.help.View(), overlay.Centered())
	case m.search != nil:
		fg, _ := m.search.View()
		view = overlay.Compose(view, m.width, height, fg, overlay.Centered())
	case m.modal != nil:
		fg, _ := m.modal.View()
		view = overlay.Compose(view, m.width, height, fg, overlay.Centered())
	case m.menu != nil:
		pos := m.session.Menu().Position()
		view = overlay.Compose(view, m.width, height, m.menu.View(), overlay.At(pos.X, pos.Y+1))
	}
	return view, nil
}

func (m *Model) headerLine() string {
	line := m.theme.Header.Title.Render("daybook") + " " + m.theme.Header.Selection.Render(m.sel.String())
	if err := m.session.LoadErr(); err != nil {
		since, ok := m.session.StaleSince()
		line += " " + m.theme.Header.Error.Render(staleNotice(err, since, ok))
	}
	return line
}

func staleNotice(err error, since time.Time, ok bool) string {
	if !ok {
		return "(stale: " + err.Error() + ")"
	}
	return "(stale since " + since.Format("15:04:05") + ": " + err.Error() + ")"
}

func (m *Model) rowLine(i int, row journal.Row) string {
	prefix := "  "
	if i == m.focus {
		prefix = "› "
	}
	bullet := m.theme.Row.Bullet.Render(glyph.Bullets().Symbol(row.Note.BulletTag))
	ctx := m.theme.Row.Context.Render(glyph.Contexts().Symbol(row.Note.ContextTag))

	var text string
	switch {
	case i == m.focus && m.modal == nil && m.search == nil:
		text = m.editor.View()
	case !row.Note.Persisted() && row.Buffer.Value() == "":
		text = m.theme.Row.Draft.Render("new note…")
	default:
		text = m.theme.Row.Text.Render(row.Buffer.Value())
	}
	if row.Buffer.Dirty() {
		text += m.theme.Row.Dirty.Render(" *")
	}
	line := prefix + bullet + " " + ctx + " " + text
	if i == m.focus {
		return m.theme.Row.Focused.Render(line)
	}
	return line
}

func (m *Model) footerLine() string {
	if m.status != "" {
		return m.theme.Footer.Status.Render(m.status)
	}
	parts := []string{"enter save", "ctrl+b bullet", "ctrl+t context", "ctrl+e edit", "ctrl+f select", "f1 help", "ctrl+c quit"}
	return m.theme.Footer.Help.Render(lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(strings.Join(parts, " · ")))
}
