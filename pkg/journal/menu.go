package journal

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/note"
)

// Point is a screen cell position.
type Point struct {
	X int
	Y int
}

// Rect is the bounding box of a clicked element.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// IconMenu owns the two floating icon menus. At most one is visible; its
// position is captured when it opens and never recomputed.
type IconMenu struct {
	primaryVisible   bool
	secondaryVisible bool
	position         Point
	target           *note.Note

	dispatcher *Dispatcher
}

func NewIconMenu(d *Dispatcher) *IconMenu {
	return &IconMenu{dispatcher: d}
}

// OpenPrimary shows the bullet menu for n, hiding the context menu.
func (m *IconMenu) OpenPrimary(n *note.Note, anchor Rect) {
	m.target = n
	m.position = anchor.TopLeft()
	m.secondaryVisible = false
	m.primaryVisible = true
}

// OpenSecondary shows the context menu for n, hiding the bullet menu.
func (m *IconMenu) OpenSecondary(n *note.Note, anchor Rect) {
	m.target = n
	m.position = anchor.TopLeft()
	m.primaryVisible = false
	m.secondaryVisible = true
}

// Open dispatches to OpenPrimary or OpenSecondary.
func (m *IconMenu) Open(category glyph.Category, n *note.Note, anchor Rect) {
	if category == glyph.Context {
		m.OpenSecondary(n, anchor)
		return
	}
	m.OpenPrimary(n, anchor)
}

// Close hides both menus and resets the position. The target is kept.
func (m *IconMenu) Close() {
	m.primaryVisible = false
	m.secondaryVisible = false
	m.position = Point{}
}

// CloseCategory hides the menu of one category.
func (m *IconMenu) CloseCategory(category glyph.Category) {
	if category == glyph.Context {
		m.secondaryVisible = false
		return
	}
	m.primaryVisible = false
}

// Select commits iconID for the target note and closes the category's menu.
func (m *IconMenu) Select(category glyph.Category, iconID string) tea.Cmd {
	var cmd tea.Cmd
	if m.dispatcher != nil {
		cmd = m.dispatcher.CommitIcon(category, m.target, iconID)
	}
	m.CloseCategory(category)
	return cmd
}

// Visible reports whether the menu for category is shown.
func (m *IconMenu) Visible(category glyph.Category) bool {
	if category == glyph.Context {
		return m.secondaryVisible
	}
	return m.primaryVisible
}

// Active returns the category of the visible menu, if any.
func (m *IconMenu) Active() (glyph.Category, bool) {
	switch {
	case m.primaryVisible:
		return glyph.Bullet, true
	case m.secondaryVisible:
		return glyph.Context, true
	default:
		return glyph.Bullet, false
	}
}

func (m *IconMenu) Position() Point {
	return m.position
}

func (m *IconMenu) Target() *note.Note {
	return m.target
}
