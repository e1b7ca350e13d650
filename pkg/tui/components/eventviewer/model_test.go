package eventviewer

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/trainer/pkg/nav"
	"tableflip.dev/trainer/pkg/tui/events"
)

func TestUpdateLogsDescribedMessages(t *testing.T) {
	m := NewModel(10)
	m.now = func() time.Time { return time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC) }
	m.SetSize(100, 8)

	m.Update(events.TransitionMsg{Transition: nav.Transition{From: "page-home", To: "page-monday", Kind: nav.KindNavigate}})
	m.Update("not an event")

	entries := m.Entries()
	if len(entries) != 1 || entries[0].Source != "transition" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "09:30:00.000 [transition]") || !strings.Contains(view, `to:"page-monday"`) {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestAppendCapsAndOrdersNewestFirst(t *testing.T) {
	m := NewModel(2)
	for _, s := range []string{"one", "two", "three"} {
		m.Append(Entry{Summary: s})
	}
	entries := m.Entries()
	if len(entries) != 2 || entries[0].Summary != "three" || entries[1].Summary != "two" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestEmptyViewerShowsPlaceholder(t *testing.T) {
	m := NewModel(0)
	if m.View() != "" {
		t.Fatalf("unsized viewer should render nothing")
	}
	m.SetSize(40, 6)
	if !strings.Contains(ansi.Strip(m.View()), "No events yet") {
		t.Fatalf("expected placeholder")
	}
	m.Append(Entry{Summary: "x"})
	m.Clear()
	if len(m.Entries()) != 0 {
		t.Fatalf("clear did not drop entries")
	}
}
