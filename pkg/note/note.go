// Package note defines the journal note persisted by the store and edited by
// the journal session.
package note

import (
	"fmt"
	"time"
)

// NoContext is the context tag stored when a context is explicitly cleared.
const NoContext = "0"

const layoutDay = "2006-01-02"

// Day is a calendar date in YYYY-MM-DD form.
type Day string

// ParseDay validates and normalizes a YYYY-MM-DD date.
func ParseDay(raw string) (Day, error) {
	t, err := time.Parse(layoutDay, raw)
	if err != nil {
		return "", fmt.Errorf("note: invalid day %q: %w", raw, err)
	}
	return Day(t.Format(layoutDay)), nil
}

// DayOf returns the local calendar day of t.
func DayOf(t time.Time) Day {
	return Day(t.Local().Format(layoutDay))
}

// Today returns the current local calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// IsZero reports whether the day is unset.
func (d Day) IsZero() bool {
	return d == ""
}

func (d Day) String() string {
	return string(d)
}

// Note is one entry in a day's journal.
type Note struct {
	ID          string    `json:"id,omitempty"`
	DateCreated Day       `json:"date_created"`
	UserID      string    `json:"user_id"`
	ProjectTag  string    `json:"project_tag,omitempty"`
	Text        string    `json:"text,omitempty"`
	BulletTag   string    `json:"bullet_tag,omitempty"`
	ContextTag  string    `json:"context_tag,omitempty"`
	Created     time.Time `json:"created,omitempty"`
}

// Persisted reports whether the store has acknowledged the note.
func (n *Note) Persisted() bool {
	return n != nil && n.ID != ""
}

// Matches is the visibility predicate for a project/user selection.
func (n *Note) Matches(project, userID string) bool {
	return n != nil && n.ProjectTag == project && n.UserID == userID
}

// Clone returns a copy safe to mutate independently.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	cp := *n
	return &cp
}

func (n *Note) String() string {
	if n == nil {
		return "<nil>"
	}
	id := n.ID
	if id == "" {
		id = "draft"
	}
	return fmt.Sprintf("%s[%s] %q", id, n.DateCreated, n.Text)
}
