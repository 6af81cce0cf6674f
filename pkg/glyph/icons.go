// Package glyph holds the fixed icon catalogs used to classify notes.
package glyph

import (
	"fmt"
	"strings"
)

// Category selects one of the two independent icon catalogs.
type Category int

const (
	// Bullet is the primary classification of a note (task, event, ...).
	Bullet Category = iota
	// Context is the secondary classification of a note (priority, ...).
	Context
)

func (c Category) String() string {
	switch c {
	case Bullet:
		return "bullet"
	case Context:
		return "context"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory accepts "bullet" or "context".
func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bullet", "primary":
		return Bullet, nil
	case "context", "secondary":
		return Context, nil
	}
	return Bullet, fmt.Errorf("glyph: unknown category %q", raw)
}

// Icon describes one selectable icon.
type Icon struct {
	ID     string
	Ref    string
	State  string
	Name   string
	Symbol string
}

// Placeholder is rendered for unset or unknown icon ids.
const Placeholder = "·"

// Catalog is an ordered, enumerable icon set.
type Catalog struct {
	category Category
	icons    []Icon
	label    func(Icon) string
}

// Category returns the category the catalog serves.
func (c Catalog) Category() Category {
	return c.category
}

// Icons returns the catalog in display order.
func (c Catalog) Icons() []Icon {
	return append([]Icon(nil), c.icons...)
}

// Lookup finds an icon by id.
func (c Catalog) Lookup(id string) (Icon, bool) {
	for _, icon := range c.icons {
		if icon.ID == id {
			return icon, true
		}
	}
	return Icon{}, false
}

// Label renders the icon name used by menus and exports.
func (c Catalog) Label(icon Icon) string {
	if c.label == nil {
		return icon.Name
	}
	return c.label(icon)
}

// Symbol renders the glyph for id, or Placeholder when unset or unknown.
func (c Catalog) Symbol(id string) string {
	icon, ok := c.Lookup(id)
	if !ok || strings.TrimSpace(icon.Symbol) == "" {
		return Placeholder
	}
	return icon.Symbol
}

// Index returns the position of id within the catalog or -1.
func (c Catalog) Index(id string) int {
	for i, icon := range c.icons {
		if icon.ID == id {
			return i
		}
	}
	return -1
}

// Resolve maps either an icon id or a label/name to an icon id.
func (c Catalog) Resolve(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, icon := range c.icons {
		if icon.ID == raw || strings.EqualFold(icon.Name, raw) || strings.EqualFold(c.Label(icon), raw) {
			return icon.ID, nil
		}
	}
	return "", fmt.Errorf("glyph: unknown %s icon %q", c.category, raw)
}

// Bullet ids the service layer acts on.
const (
	BulletTask      = "1"
	BulletCompleted = "2"
	BulletMoved     = "3"
)

var (
	bullets = Catalog{
		category: Bullet,
		label: func(i Icon) string {
			return fmt.Sprintf("%s-%s-%s", i.Ref, i.State, i.Name)
		},
		icons: []Icon{
			{ID: "1", Ref: "task", State: "open", Name: "task", Symbol: "●"},
			{ID: "2", Ref: "task", State: "done", Name: "completed", Symbol: "✘"},
			{ID: "3", Ref: "task", State: "migrated", Name: "moved", Symbol: "›"},
			{ID: "4", Ref: "task", State: "scheduled", Name: "future", Symbol: "‹"},
			{ID: "5", Ref: "task", State: "struck", Name: "irrelevant", Symbol: "⦵"},
			{ID: "6", Ref: "note", State: "open", Name: "note", Symbol: "⁃"},
			{ID: "7", Ref: "event", State: "open", Name: "event", Symbol: "○"},
		},
	}

	contexts = Catalog{
		category: Context,
		label: func(i Icon) string {
			return i.Name
		},
		icons: []Icon{
			{ID: "0", Ref: "context", Name: "none", Symbol: " "},
			{ID: "1", Ref: "context", Name: "priority", Symbol: "✷"},
			{ID: "2", Ref: "context", Name: "inspiration", Symbol: "!"},
			{ID: "3", Ref: "context", Name: "investigation", Symbol: "?"},
		},
	}
)

// Bullets returns the primary icon catalog.
func Bullets() Catalog {
	return bullets
}

// Contexts returns the secondary icon catalog.
func Contexts() Catalog {
	return contexts
}

// CatalogFor returns the catalog backing category.
func CatalogFor(c Category) Catalog {
	if c == Context {
		return contexts
	}
	return bullets
}
