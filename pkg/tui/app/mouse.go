package teaui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/trainer/pkg/gesture"
	"tableflip.dev/trainer/pkg/nav"
	"tableflip.dev/trainer/pkg/tui/events"
)

// handleMouse treats a left press and release on the same cell as a click and
// anything longer as a drag for the gesture router.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp {
		if msg.Action == tea.MouseActionRelease {
			m.showHelp = false
		}
		return nil
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.body.ScrollUp(3)
		m.saveScroll()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.body.ScrollDown(3)
		m.saveScroll()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		press := msg
		m.press = &press
		m.swipe.Start(m.toPoint(msg))
	case msg.Action == tea.MouseActionRelease:
		if m.press == nil {
			return nil
		}
		press := *m.press
		m.press = nil
		if press.X == msg.X && press.Y == msg.Y {
			m.swipe.Cancel()
			return m.click(msg)
		}
		return m.endSwipe(press, msg)
	}
	return nil
}

func (m *Model) toPoint(msg tea.MouseMsg) gesture.Point {
	return gesture.Point{X: float64(msg.X) * m.cellW, Y: float64(msg.Y) * m.cellH}
}

func (m *Model) endSwipe(press, release tea.MouseMsg) tea.Cmd {
	if !m.swipe.Armed() {
		return nil
	}
	start, end := m.toPoint(press), m.toPoint(release)
	dx, dy := end.X-start.X, end.Y-start.Y
	intent := gesture.Classify(dx, dy, m.swipe.Thresholds())

	taken := false
	cmd := m.perform(func() {
		_, taken = m.swipe.End(end)
	})
	report := requestCmd(events.SwipeMsg{DX: dx, DY: dy, Intent: intent.String(), Taken: taken})
	return tea.Batch(report, cmd)
}

// click resolves the zone under msg into the request it stands for.
func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	in := func(id string) bool { return m.zones.Get(id).InBounds(msg) }

	switch {
	case in(zoneBack):
		return requestCmd(events.BackRequestMsg{Component: componentID})
	case in(zoneTheme):
		return requestCmd(events.ThemeToggleMsg{Component: componentID})
	case in(zonePrev):
		return m.sibling(false)
	case in(zoneNext):
		return m.sibling(true)
	}
	for _, id := range m.catalog.Tabs() {
		if in(tabZone(id)) {
			return events.TabCmd(componentID, id)
		}
	}
	for i, l := range m.catalog.Links(m.nav.Active()) {
		if in(linkZone(i)) {
			m.selected = i
			return events.NavigateCmd(componentID, nav.Request{Target: l.Target, Title: l.Title, Direction: nav.Forward, Mode: nav.Push})
		}
	}
	return nil
}
