package nav

import "tableflip.dev/trainer/pkg/view"

// SwitchTab activates a top-level tab and resets history to it. Every other
// tab is deactivated and any non-tab page left active or parked is forced
// back to inert, so a detail page can never resurface behind a tab.
func (n *Navigator) SwitchTab(tabID string) (Transition, bool) {
	if !n.catalog.IsTab(tabID) {
		n.logger.Debug("nav: unknown tab", "tab", tabID)
		return Transition{}, false
	}
	target := n.doc.Page(tabID)
	if target == nil {
		return Transition{}, false
	}
	from := n.history.Top()

	for _, id := range n.catalog.Tabs() {
		if p := n.doc.Page(id); p != nil {
			p.Reset()
		}
	}
	n.decorate(target, "")
	target.Add(view.ClassActive)
	target.ScrollTop = 0
	n.history.ResetTo(tabID)

	// Reset on every switch, not only when leaving home: a page opened from
	// any tab must not stay parked behind the next one.
	stale := 0
	for _, p := range n.doc.Pages() {
		if n.catalog.IsTab(p.ID) {
			continue
		}
		n.doc.RemoveDetailNav(p.ID)
		if p.Classes() != 0 {
			p.Reset()
			stale++
		}
	}
	if stale > 0 {
		n.logger.Debug("nav: reset stale pages", "count", stale)
	}

	return n.finish(Transition{From: from, To: tabID, Direction: Forward, Mode: Reset, Kind: KindTab}), true
}
