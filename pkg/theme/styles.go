package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the raw colour set for one theme.
type Palette struct {
	Background string
	Foreground string
	Accent     string
	Border     string
}

var (
	lightPalette = Palette{
		Background: "#FAFAFA",
		Foreground: "#1F2328",
		Accent:     "#0969DA",
		Border:     "#D0D7DE",
	}
	darkPalette = Palette{
		Background: "#0D1117",
		Foreground: "#E6EDF3",
		Accent:     "#58A6FF",
		Border:     "#30363D",
	}
)

// PaletteFor returns the palette for the given theme.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Muted blends the foreground halfway into the background. Used for hints
// and for parked pages peeking during a slide.
func (p Palette) Muted() string {
	fg, err := colorful.Hex(p.Foreground)
	if err != nil {
		return p.Foreground
	}
	bg, err := colorful.Hex(p.Background)
	if err != nil {
		return p.Foreground
	}
	return fg.BlendLab(bg, 0.5).Clamped().Hex()
}

// Styles centralizes Lip Gloss styles for the page viewer.
type Styles struct {
	Header       lipgloss.Style
	Title        lipgloss.Style
	Back         lipgloss.Style
	Icon         lipgloss.Style
	Body         lipgloss.Style
	Link         lipgloss.Style
	LinkSelected lipgloss.Style
	Nav          lipgloss.Style
	NavButton    lipgloss.Style
	TabBar       lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Muted        lipgloss.Style
	Status       lipgloss.Style
	Modal        lipgloss.Style
}

// For builds the styles for the given theme.
func For(dark bool) Styles {
	p := PaletteFor(dark)
	fg := lipgloss.Color(p.Foreground)
	bg := lipgloss.Color(p.Background)
	accent := lipgloss.Color(p.Accent)
	border := lipgloss.Color(p.Border)
	muted := lipgloss.Color(p.Muted())

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	link := base.Foreground(accent)

	return Styles{
		Header: base.
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(border).
			BorderBackground(bg).
			Padding(0, 1),
		Title:        base.Bold(true),
		Back:         link.Bold(true),
		Icon:         link,
		Body:         base.Padding(1, 2),
		Link:         link,
		LinkSelected: link.Reverse(true),
		Nav: base.
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(border).
			BorderBackground(bg).
			Padding(0, 1),
		NavButton: link.Bold(true),
		TabBar: base.
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(border).
			BorderBackground(bg),
		Tab:       base.Foreground(muted).Padding(0, 2),
		TabActive: base.Foreground(accent).Bold(true).Underline(true).Padding(0, 2),
		Muted:     base.Foreground(muted),
		Status:    base.Foreground(muted).Italic(true),
		Modal: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			BorderBackground(bg).
			Padding(1, 2),
	}
}
