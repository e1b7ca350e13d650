package teaui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/logging"
	"tableflip.dev/trainer/pkg/nav"
	"tableflip.dev/trainer/pkg/store"
	"tableflip.dev/trainer/pkg/theme"
	"tableflip.dev/trainer/pkg/tui/events"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Catalog == nil {
		cat, err := catalog.Default()
		if err != nil {
			t.Fatalf("default catalog: %v", err)
		}
		opts.Catalog = cat
	}
	if opts.Theme == nil {
		opts.Theme = theme.NewController(opts.Preferences, nil)
	}
	opts.Logger = logging.Discard()
	m := New(opts)
	t.Cleanup(m.shutdown)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return m
}

// drive feeds msg through Update and then every message the returned
// commands produce, breadth first.
func drive(m *Model, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 100; steps++ {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		queue = append(queue, run(cmd)...)
	}
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func navRequest(id string) nav.Request {
	return nav.Request{Target: id, Direction: nav.Forward, Mode: nav.Push}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		drive(m, keyMsg(k))
	}
}

func screen(m *Model) string {
	return ansi.Strip(m.View())
}

func TestInitialViewShowsHomeAndTabs(t *testing.T) {
	m := newTestModel(t, Options{})
	out := screen(m)
	for _, want := range []string{"Home", "› Monday: Chest & Triceps", "1 Home", "2 Tools", "☾"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	if strings.Contains(out, "‹ Back") {
		t.Fatalf("home tab must not show a back control")
	}
}

func TestOpenLinkAndWalkSiblings(t *testing.T) {
	m := newTestModel(t, Options{})
	press(m, "enter")
	if m.nav.Active() != "page-monday" {
		t.Fatalf("active = %s", m.nav.Active())
	}
	press(m, "down", "enter")
	if m.nav.Active() != "page-monday-ex2" {
		t.Fatalf("active = %s", m.nav.Active())
	}
	out := screen(m)
	if !strings.Contains(out, "‹ Back") || !strings.Contains(out, "‹ Flat Bench Press") || !strings.Contains(out, "Decline Bench Press ›") {
		t.Fatalf("detail chrome missing:\n%s", out)
	}

	press(m, "right")
	want := []string{"page-home", "page-monday", "page-monday-ex3"}
	if got := m.nav.History(); !reflect.DeepEqual(got, want) {
		t.Fatalf("history = %v, want %v", got, want)
	}
	press(m, "left", "left")
	if m.nav.Active() != "page-monday-ex1" || len(m.nav.History()) != 3 {
		t.Fatalf("prev should replace: %v", m.nav.History())
	}
	press(m, "left")
	if m.nav.Active() != "page-monday-ex1" {
		t.Fatalf("prev on the first exercise must be a no-op")
	}

	press(m, "esc")
	if m.nav.Active() != "page-monday" {
		t.Fatalf("back went to %s", m.nav.Active())
	}
	press(m, "esc", "esc")
	if got := m.nav.History(); !reflect.DeepEqual(got, []string{"page-home"}) {
		t.Fatalf("history = %v", got)
	}
}

func TestSwipeDragNavigatesOnDetailPage(t *testing.T) {
	m := newTestModel(t, Options{Open: "page-monday-ex1"})
	if got := m.nav.History(); !reflect.DeepEqual(got, []string{"page-home", "page-monday", "page-monday-ex1"}) {
		t.Fatalf("open history = %v", got)
	}

	// 8 columns left, 1 row down: dx -64, dy 16 in gesture units.
	drive(m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drive(m, tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionRelease})
	if m.nav.Active() != "page-monday-ex2" || len(m.nav.History()) != 3 {
		t.Fatalf("swipe did not replace with next: %v", m.nav.History())
	}

	// 8 columns left, 5 rows down: dy 80 is too steep.
	drive(m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drive(m, tea.MouseMsg{X: 12, Y: 10, Action: tea.MouseActionRelease})
	if m.nav.Active() != "page-monday-ex2" {
		t.Fatalf("steep drag navigated to %s", m.nav.Active())
	}

	var swipes []string
	for _, e := range m.events.Entries() {
		if e.Source == "swipe" {
			swipes = append(swipes, e.Summary)
		}
	}
	if len(swipes) != 2 || !strings.Contains(swipes[0], `intent:"none"`) || !strings.Contains(swipes[1], `intent:"next" taken:true`) {
		t.Fatalf("unexpected swipe log %v", swipes)
	}
}

func TestSwipeIgnoredOffDetailPages(t *testing.T) {
	m := newTestModel(t, Options{})
	drive(m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drive(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease})
	if m.nav.Active() != "page-home" {
		t.Fatalf("drag on a tab navigated to %s", m.nav.Active())
	}
}

func TestTabSwitchResetsHistory(t *testing.T) {
	m := newTestModel(t, Options{Open: "page-tuesday-ex2"})
	press(m, "2")
	if got := m.nav.History(); !reflect.DeepEqual(got, []string{"page-tools"}) {
		t.Fatalf("history = %v", got)
	}
	if out := screen(m); !strings.Contains(out, "Rest timer guide") {
		t.Fatalf("tools body missing:\n%s", out)
	}
	press(m, "tab")
	if m.nav.Active() != "page-home" {
		t.Fatalf("tab cycling went to %s", m.nav.Active())
	}
	if active := m.nav.Document().Active(); !reflect.DeepEqual(active, []string{"page-home"}) {
		t.Fatalf("active pages = %v", active)
	}
}

func TestThemeTogglePersistsAndFlipsIcon(t *testing.T) {
	prefs, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open prefs: %v", err)
	}
	m := newTestModel(t, Options{Preferences: prefs})
	press(m, "t")
	if !m.theme.IsDark() || !strings.Contains(screen(m), "☀") {
		t.Fatalf("theme did not switch to dark")
	}
	if dark, ok, _ := prefs.LoadDark(); !ok || !dark {
		t.Fatalf("dark mode not persisted")
	}
	press(m, "t")
	if dark, ok, _ := prefs.LoadDark(); !ok || dark || !strings.Contains(screen(m), "☾") {
		t.Fatalf("second toggle did not round-trip")
	}
}

func TestWatchEventSyncsThemeWithoutWriting(t *testing.T) {
	base := t.TempDir()
	prefs, err := store.Open(base)
	if err != nil {
		t.Fatalf("open prefs: %v", err)
	}
	m := newTestModel(t, Options{Preferences: prefs})

	other, _ := store.Open(base)
	if err := other.SaveDark(true); err != nil {
		t.Fatalf("external save: %v", err)
	}
	drive(m, watchEventMsg{event: store.Event{Key: store.DarkModeKey}})
	if !m.theme.IsDark() {
		t.Fatalf("external preference not applied")
	}
	last := m.events.Entries()[0]
	if last.Source != "theme" || !strings.Contains(last.Summary, `origin:"watch"`) {
		t.Fatalf("unexpected last event %+v", last)
	}
}

func TestUnknownLinkShowsSuggestion(t *testing.T) {
	m := newTestModel(t, Options{})
	drive(m, events.NavigateRequestMsg{Request: navRequest("page-mondy")})
	if m.nav.Active() != "page-home" {
		t.Fatalf("unknown target navigated")
	}
	if !strings.Contains(screen(m), `did you mean "page-monday"`) {
		t.Fatalf("expected suggestion in status:\n%s", screen(m))
	}
}

func TestSlideAdvancesAndFinishes(t *testing.T) {
	m := newTestModel(t, Options{Motion: true})
	_, cmd := m.Update(events.NavigateRequestMsg{Request: navRequest("page-monday")})
	if cmd == nil || m.slide == nil || !m.slide.forward {
		t.Fatalf("expected a forward slide to start")
	}
	if out := m.View(); out == "" {
		t.Fatalf("slide frame rendered empty")
	}
	seq := m.slide.seq
	for i := 0; i < slideFrames; i++ {
		m.Update(slideFrameMsg{seq: seq})
	}
	if m.slide != nil {
		t.Fatalf("slide should finish after %d frames", slideFrames)
	}
}

func TestSlideComposeShiftsFrames(t *testing.T) {
	s := &slide{from: "AAAA\nAAAA", forward: true}
	if got := s.compose("BBBB\nBBBB", 4); got != "AAAA\nAAAA" {
		t.Fatalf("frame 0 = %q", got)
	}
	s.frame = 2
	if got := s.compose("BBBB", 4); got != "AABB" {
		t.Fatalf("forward frame 2 = %q", got)
	}
	s.forward = false
	if got := s.compose("BBBB", 4); got != "BBAA" {
		t.Fatalf("backward frame 2 = %q", got)
	}
}

func TestEventsPanelToggles(t *testing.T) {
	m := newTestModel(t, Options{})
	press(m, "enter", "e")
	if !m.showEvents || !strings.Contains(screen(m), "Events") {
		t.Fatalf("events panel not shown")
	}
	if entries := m.events.Entries(); len(entries) == 0 || entries[0].Source != "transition" {
		t.Fatalf("transition not logged: %+v", entries)
	}
	press(m, "e")
	if m.showEvents {
		t.Fatalf("events panel not hidden")
	}
}

func TestHelpModalClosesBeforeBack(t *testing.T) {
	m := newTestModel(t, Options{})
	press(m, "enter")
	opened := m.nav.Active()

	press(m, "?")
	if !m.showHelp || !strings.Contains(screen(m), "Keys") || !strings.Contains(screen(m), "scroll down") {
		t.Fatalf("help modal not shown:\n%s", screen(m))
	}
	press(m, "esc")
	if m.showHelp {
		t.Fatalf("esc should close the help modal")
	}
	if m.nav.Active() != opened {
		t.Fatalf("esc with help open navigated to %q", m.nav.Active())
	}
}
