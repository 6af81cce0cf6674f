package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the journal UI.
type Theme struct {
	Header HeaderTheme
	Row    RowTheme
	Footer FooterTheme
	Menu   MenuTheme
	Modal  ModalTheme
}

// HeaderTheme styles the selection banner above the rows.
type HeaderTheme struct {
	Title     lipgloss.Style
	Selection lipgloss.Style
	Error     lipgloss.Style
}

// RowTheme styles one journal row.
type RowTheme struct {
	Bullet  lipgloss.Style
	Context lipgloss.Style
	Text    lipgloss.Style
	Draft   lipgloss.Style
	Focused lipgloss.Style
	Dirty   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// MenuTheme styles the floating icon menus.
type MenuTheme struct {
	Frame    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// ModalTheme styles centered modal overlays (edit, search, help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Meta  lipgloss.Style
}

const (
	accentHex = "#ff87d7"
	baseHex   = "#1c1c1c"
)

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color(accentHex)
	focusBg := Blend(accentHex, baseHex, 0.75)

	return Theme{
		Header: HeaderTheme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
			Selection: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
		Row: RowTheme{
			Bullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Context: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
			Text:    lipgloss.NewStyle(),
			Draft:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Focused: lipgloss.NewStyle().Background(focusBg),
			Dirty:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Menu: MenuTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Meta:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// Blend mixes two hex colors in Lab space; t=0 is from, t=1 is to. Invalid
// input falls back to from unparsed.
func Blend(from, to string, t float64) color.Color {
	switch {
	case t <= 0:
		return lipgloss.Color(from)
	case t >= 1:
		return lipgloss.Color(to)
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return lipgloss.Color(from)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return lipgloss.Color(from)
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}
