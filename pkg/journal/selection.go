// Package journal implements the note editing session: the assembled row
// list, per-row input buffers, the commit dispatcher, the floating icon menu
// and the orchestrator that routes gestures between them.
//
// Everything runs on the Bubble Tea update loop. Store calls are returned as
// tea.Cmds and report back through SettledMsg and NotesLoadedMsg.
package journal

import (
	"fmt"

	"tableflip.dev/daybook/pkg/note"
)

// Selection is the date/project/user a session is scoped to. It is injected
// at construction and never changes for the life of a Session.
type Selection struct {
	Date    note.Day
	Project string
	UserID  string
	// Today is the fallback when Date is unset.
	Today note.Day
}

// Day returns the selected date, falling back to Today.
func (s Selection) Day() note.Day {
	if !s.Date.IsZero() {
		return s.Date
	}
	if !s.Today.IsZero() {
		return s.Today
	}
	return note.Today()
}

// HasUser reports whether a user is selected; nothing renders without one.
func (s Selection) HasUser() bool {
	return s.UserID != ""
}

func (s Selection) String() string {
	return fmt.Sprintf("date:%s project:%q user:%q", s.Day(), s.Project, s.UserID)
}
