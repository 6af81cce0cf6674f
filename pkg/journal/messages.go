package journal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/query"
)

// InputMsg reports the edited value of a row's input.
type InputMsg struct {
	Row   int
	Value string
}

func (m InputMsg) Describe() string {
	return fmt.Sprintf(`row:%d value:%q`, m.Row, m.Value)
}

// KeyCommitMsg forwards a key press on a row's input. Only un-shifted Enter
// commits.
type KeyCommitMsg struct {
	Row int
	Key tea.KeyPressMsg
}

func (m KeyCommitMsg) Describe() string {
	return fmt.Sprintf(`row:%d key:%q`, m.Row, m.Key.String())
}

// IconClickMsg opens the menu for Category anchored at the clicked icon.
type IconClickMsg struct {
	Category glyph.Category
	Row      int
	Anchor   Rect
}

func (m IconClickMsg) Describe() string {
	return fmt.Sprintf(`category:%q row:%d at:%d,%d`, m.Category, m.Row, m.Anchor.X, m.Anchor.Y)
}

// IconSelectMsg picks an icon from the open menu. An empty IconID means no
// icon was chosen.
type IconSelectMsg struct {
	Category glyph.Category
	IconID   string
}

func (m IconSelectMsg) Describe() string {
	return fmt.Sprintf(`category:%q icon:%q`, m.Category, m.IconID)
}

// MenuCloseMsg dismisses any open icon menu.
type MenuCloseMsg struct{}

func (MenuCloseMsg) Describe() string { return "menu:close" }

// EditRequestMsg opens the full-note modal for a persisted row.
type EditRequestMsg struct {
	Row int
}

func (m EditRequestMsg) Describe() string {
	return fmt.Sprintf(`row:%d`, m.Row)
}

// ModalCloseMsg dismisses the full-note modal.
type ModalCloseMsg struct{}

func (ModalCloseMsg) Describe() string { return "modal:close" }

// ModalSubmitMsg commits text edited in the full-note modal.
type ModalSubmitMsg struct {
	Text string
}

func (m ModalSubmitMsg) Describe() string {
	return fmt.Sprintf(`text:%q`, m.Text)
}

// SearchRequestMsg asks the host to show its search surface.
type SearchRequestMsg struct{}

func (SearchRequestMsg) Describe() string { return "search" }

// NotesLoadedMsg carries a fetch result for one day.
type NotesLoadedMsg struct {
	Day   note.Day
	Notes []*note.Note
	Err   error
}

func (m NotesLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`day:%s err:%q`, m.Day, m.Err)
	}
	return fmt.Sprintf(`day:%s notes:%d`, m.Day, len(m.Notes))
}

// Op names the store mutation behind a SettledMsg.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
)

// SettledMsg reports completion of a create or update, successful or not.
type SettledMsg struct {
	Op   Op
	Day  note.Day
	Note *note.Note
	Err  error
}

func (m SettledMsg) Describe() string {
	state := "ok"
	if m.Err != nil {
		state = m.Err.Error()
	}
	return fmt.Sprintf(`op:%q note:%s state:%q`, m.Op, m.Note, state)
}

// InvalidateMsg marks a cache scope stale, e.g. after an external write.
type InvalidateMsg struct {
	Key query.Key
}

func (m InvalidateMsg) Describe() string {
	return fmt.Sprintf(`key:%s`, m.Key)
}
