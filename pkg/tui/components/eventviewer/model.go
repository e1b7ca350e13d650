package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/trainer/pkg/theme"
	"tableflip.dev/trainer/pkg/tui/events"
	"tableflip.dev/trainer/pkg/tui/ui"
)

// Level indicates the severity of a logged event.
type Level int

const (
	// LevelInfo is the default severity.
	LevelInfo Level = iota
	// LevelWarn highlights potential issues.
	LevelWarn
	// LevelError highlights failures.
	LevelError
)

// Entry captures a rendered event.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Model renders a streaming event log, newest first.
type Model struct {
	viewport viewport.Model
	entries  []Entry

	maxEntries int

	width  int
	height int

	now    func() time.Time
	styles Styles
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
}

// StylesFor derives the log styling from the page palette.
func StylesFor(dark bool) Styles {
	p := theme.PaletteFor(dark)
	muted := lipgloss.Color(p.Muted())
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.Border)),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Foreground)),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Timestamp: lipgloss.NewStyle().Foreground(muted),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
	}
}

// NewModel constructs an event viewer capped at the provided entry count.
func NewModel(maxEntries int) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	return &Model{
		viewport:   viewport.New(1, 1),
		maxEntries: maxEntries,
		now:        time.Now,
		styles:     StylesFor(false),
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. Messages that can describe themselves are
// logged; everything else is ignored.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	d, ok := msg.(events.Describer)
	if !ok {
		return m, nil
	}
	m.Append(Entry{Source: sourceFor(msg), Summary: d.Describe()})
	return m, nil
}

// SetSize resizes the viewport while keeping the header and border intact.
func (m *Model) SetSize(width, height int) {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(1, width-2)
	innerHeight := max(1, height-2)
	m.viewport.Width = innerWidth
	m.viewport.Height = max(1, innerHeight-1)
	m.refreshContent()
}

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.styles.Header.Render("Events")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
	return m.styles.Frame.Width(m.width - 2).Height(m.height - 2).Render(body)
}

// Append inserts a new entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = m.now()
	}
	if entry.Source == "" {
		entry.Source = "tea"
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Clear drops all logged entries.
func (m *Model) Clear() {
	m.entries = nil
	m.refreshContent()
}

// WithStyles overrides the current styling.
func (m *Model) WithStyles(styles Styles) {
	m.styles = styles
	m.refreshContent()
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No events yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.Timestamp.Format("15:04:05.000"))
	source := m.styles.Source.Render(fmt.Sprintf("[%s]", entry.Source))
	msg := entry.Summary
	if entry.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, entry.Detail)
	}
	switch entry.Level {
	case LevelWarn:
		msg = m.styles.Warn.Render(msg)
	case LevelError:
		msg = m.styles.Error.Render(msg)
	default:
		msg = m.styles.Info.Render(msg)
	}
	return fmt.Sprintf("%s %s %s", ts, source, msg)
}

func sourceFor(msg tea.Msg) string {
	switch msg.(type) {
	case events.NavigateRequestMsg:
		return "navigate"
	case events.BackRequestMsg:
		return "back"
	case events.TabRequestMsg:
		return "tab"
	case events.ThemeToggleMsg, events.ThemeChangedMsg:
		return "theme"
	case events.TransitionMsg:
		return "transition"
	case events.SwipeMsg:
		return "swipe"
	default:
		return "tea"
	}
}
