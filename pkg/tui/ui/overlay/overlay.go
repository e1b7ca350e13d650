// Package overlay draws a foreground block over a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment. The zero value is the top-left corner.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered places the block in the middle of the screen.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose draws foreground atop background, a width x height screen, and
// keeps the background cells outside the foreground's bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bg := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}

	fg := strings.Split(foreground, "\n")
	fgWidth := min(lipgloss.Width(foreground), width)
	fgHeight := min(len(fg), height)
	x, y := offsets(width, height, fgWidth, fgHeight, placement)

	for row := 0; row < fgHeight; row++ {
		line := bg[y+row]
		bg[y+row] = ansi.Cut(line, 0, x) +
			pad(ansi.Truncate(fg[row], fgWidth, ""), fgWidth) +
			ansi.Cut(line, x+fgWidth, width)
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
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// offsets maps a Position (0 left/top, 0.5 center, 1 right/bottom) to the
// block's top-left cell. Margins apply to the edge the block is aligned to.
func offsets(width, height, w, h int, p Placement) (int, int) {
	return place(width, w, p.Horizontal, p.MarginX), place(height, h, p.Vertical, p.MarginY)
}

func place(total, size int, pos lipgloss.Position, margin int) int {
	var at int
	switch {
	case pos <= lipgloss.Left:
		at = margin
	case pos >= lipgloss.Right:
		at = total - size - margin
	default:
		at = int(float64(total-size) * float64(pos))
	}
	return max(0, min(at, total-size))
}
