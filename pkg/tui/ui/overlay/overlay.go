// Package overlay draws a foreground block over a background view, keeping
// the background visible around it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement positions the foreground. With Anchored set the block's top-left
// corner is placed at (X, Y); otherwise Horizontal and Vertical align it
// inside the margins.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int

	Anchored bool
	X        int
	Y        int
}

// Centered places the foreground in the middle of the screen.
func Centered() Placement {
	return Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}
}

// At anchors the foreground's top-left corner at (x, y).
func At(x, y int) Placement {
	return Placement{Anchored: true, X: x, Y: y}
}

// Compose overlays foreground on background in a width x height canvas. The
// foreground is clamped so it always stays on screen.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bg := normalize(background, width, height)
	if foreground == "" {
		return strings.Join(bg, "\n")
	}
	fg := strings.Split(foreground, "\n")

	fw := 0
	for _, line := range fg {
		fw = max(fw, ansi.StringWidth(line))
	}
	fw = min(fw, width)
	fh := min(len(fg), height)
	if fw == 0 {
		return strings.Join(bg, "\n")
	}

	x, y := offsets(width, height, fw, fh, placement)
	for row := 0; row < fh; row++ {
		line := bg[y+row]
		prefix := ansi.Truncate(line, x, "")
		suffix := ansi.TruncateLeft(line, x+fw, "")
		bg[y+row] = prefix + pad(ansi.Truncate(fg[row], fw, ""), fw) + suffix
	}
	return strings.Join(bg, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func offsets(width, height, fw, fh int, p Placement) (int, int) {
	var x, y int
	if p.Anchored {
		x, y = p.X, p.Y
	} else {
		x = align(p.Horizontal, width, fw, p.MarginX)
		y = align(p.Vertical, height, fh, p.MarginY)
	}
	return clamp(x, 0, width-fw), clamp(y, 0, height-fh)
}

func align(pos lipgloss.Position, total, size, margin int) int {
	switch {
	case pos >= 1:
		return total - size - margin
	case pos > 0:
		return int(float64(total-size) * float64(pos))
	default:
		return margin
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
