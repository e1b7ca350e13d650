package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/trainer/pkg/tui/ui/overlay"
)

const (
	zoneBack  = "back"
	zoneTheme = "theme"
	zonePrev  = "prev"
	zoneNext  = "next"

	eventsHeight = 8
)

func tabZone(id string) string { return "tab:" + id }

func linkZone(i int) string { return fmt.Sprintf("link:%d", i) }

// View implements tea.Model.
func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return ""
	}
	page := m.renderPage()
	if m.slide != nil {
		page = m.slide.compose(page, m.termWidth)
	}
	parts := []string{page}
	if m.showEvents {
		parts = append(parts, m.events.View())
	}
	parts = append(parts, m.renderTabs(), m.renderFooter())
	out := m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.showHelp {
		out = overlay.Compose(out, m.termWidth, m.termHeight, m.renderHelp(), overlay.Centered)
	}
	return out
}

// renderHelp is the full key reference shown as a modal.
func (m *Model) renderHelp() string {
	title := m.styles.Title.Render("Keys")
	return m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.help.FullHelpView(m.keys.FullHelp())))
}

// applySizes recomputes the body viewport after a resize or layout toggle.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.help.Width = m.termWidth
	m.events.SetSize(m.termWidth, eventsHeight)
	m.body.Width = m.termWidth
	m.body.Height = max(1, m.termHeight-m.chromeHeight())
	m.syncBody()
}

// chromeHeight is every row that is not the body viewport.
func (m *Model) chromeHeight() int {
	h := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderTabs()) + lipgloss.Height(m.renderFooter())
	if nav := m.renderDetailNav(); nav != "" {
		h += lipgloss.Height(nav)
	}
	if m.showEvents {
		h += eventsHeight
	}
	return h
}

// syncPage resets the body for a newly active page and restores its scroll
// position.
func (m *Model) syncPage() {
	if m.termWidth == 0 {
		return
	}
	m.applySizes()
	if p := m.nav.Document().Page(m.nav.Active()); p != nil {
		m.body.SetYOffset(p.ScrollTop)
	}
}

func (m *Model) syncBody() {
	if m.termWidth == 0 {
		return
	}
	m.body.SetContent(m.bodyContent(m.nav.Active()))
}

func (m *Model) saveScroll() {
	if p := m.nav.Document().Page(m.nav.Active()); p != nil {
		p.ScrollTop = m.body.YOffset
	}
}

func (m *Model) moveSelection(delta int) {
	links := m.catalog.Links(m.nav.Active())
	if len(links) == 0 {
		if delta < 0 {
			m.body.ScrollUp(1)
		} else {
			m.body.ScrollDown(1)
		}
		m.saveScroll()
		return
	}
	m.selected = (m.selected + delta + len(links)) % len(links)
	m.syncBody()

	line := m.linkLine + m.selected
	switch {
	case line < m.body.YOffset:
		m.body.SetYOffset(line)
	case line >= m.body.YOffset+m.body.Height:
		m.body.SetYOffset(line - m.body.Height + 1)
	}
	m.saveScroll()
}

func (m *Model) renderPage() string {
	if m.termWidth == 0 {
		return ""
	}
	parts := []string{m.renderHeader(), m.body.View()}
	if nav := m.renderDetailNav(); nav != "" {
		parts = append(parts, nav)
	}
	return lipgloss.NewStyle().Width(m.termWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderHeader() string {
	p := m.nav.Document().Page(m.nav.Active())
	if p == nil {
		return ""
	}
	inner := max(1, m.termWidth-2)

	var left string
	icon := "☾"
	if c := p.Chrome(); c != nil {
		if c.ShowBack {
			left = m.zones.Mark(zoneBack, m.styles.Back.Render("‹ Back")) + m.styles.Title.Render("  ")
		}
		if c.Icons != nil && c.Icons.Icon() == "sun" {
			icon = "☀"
		}
	}
	right := m.zones.Mark(zoneTheme, m.styles.Icon.Render(icon))

	room := inner - lipgloss.Width(left) - lipgloss.Width(right) - 1
	title := truncate.StringWithTail(p.Title, uint(max(0, room)), "…")
	left += m.styles.Title.Render(title)

	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + m.styles.Title.Render(strings.Repeat(" ", gap)) + right
	return m.styles.Header.Width(m.termWidth).Render(line)
}

func (m *Model) renderDetailNav() string {
	p := m.nav.Document().Page(m.nav.Active())
	if p == nil || p.DetailNav() == nil {
		return ""
	}
	bar := p.DetailNav()
	inner := max(1, m.termWidth-2)
	half := max(1, inner/2-1)

	var left, right string
	if !bar.PrevHidden {
		left = m.zones.Mark(zonePrev, m.styles.NavButton.Render(truncate.StringWithTail("‹ "+bar.PrevTitle, uint(half), "…")))
	}
	if !bar.NextHidden {
		right = m.zones.Mark(zoneNext, m.styles.NavButton.Render(truncate.StringWithTail(bar.NextTitle+" ›", uint(half), "…")))
	}
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + m.styles.Muted.Render(strings.Repeat(" ", gap)) + right
	return m.styles.Nav.Width(m.termWidth).Render(line)
}

func (m *Model) renderTabs() string {
	root := ""
	if h := m.nav.History(); len(h) > 0 {
		root = h[0]
	}
	tabs := make([]string, 0, len(m.catalog.Tabs()))
	for i, id := range m.catalog.Tabs() {
		style := m.styles.Tab
		if id == root {
			style = m.styles.TabActive
		}
		label := fmt.Sprintf("%d %s", i+1, m.catalog.Title(id))
		tabs = append(tabs, m.zones.Mark(tabZone(id), style.Render(label)))
	}
	return m.styles.TabBar.Width(m.termWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *Model) renderFooter() string {
	help := m.help.View(m.keys)
	if m.status == "" {
		return help
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Status.Render(m.status), help)
}

// bodyContent renders the page's markdown followed by its links. linkLine is
// updated to the row of the first link.
func (m *Model) bodyContent(id string) string {
	md := m.renderMarkdown(id, m.termWidth)
	links := m.catalog.Links(id)

	var b strings.Builder
	b.WriteString(md)
	m.linkLine = 0
	if md != "" {
		m.linkLine = lipgloss.Height(md)
	}
	if len(links) == 0 {
		return b.String()
	}
	if md != "" {
		b.WriteString("\n")
	}
	if m.selected >= len(links) {
		m.selected = 0
	}
	for i, l := range links {
		style, prefix := m.styles.Link, "  "
		if i == m.selected {
			style, prefix = m.styles.LinkSelected, "› "
		}
		b.WriteString("  ")
		b.WriteString(m.zones.Mark(linkZone(i), style.Render(prefix+l.Title)))
		if i < len(links)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMarkdown renders a page body with glamour, caching per theme and
// width. Rendering failures fall back to the raw text.
func (m *Model) renderMarkdown(id string, width int) string {
	page, ok := m.catalog.Page(id)
	if !ok || strings.TrimSpace(page.Body) == "" {
		return ""
	}
	style := "light"
	if m.theme.IsDark() {
		style = "dark"
	}
	cacheKey := fmt.Sprintf("%s|%s|%d", id, style, width)
	if out, ok := m.markdown[cacheKey]; ok {
		return out
	}

	out := page.Body
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err == nil {
		if rendered, rerr := r.Render(page.Body); rerr == nil {
			out = strings.Trim(rendered, "\n")
		} else {
			err = rerr
		}
	}
	if err != nil {
		m.logger.Warn("tui: render markdown", "page", id, "error", err)
	}
	m.markdown[cacheKey] = out
	return out
}
