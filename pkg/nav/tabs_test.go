package nav

import (
	"reflect"
	"testing"

	"tableflip.dev/trainer/pkg/view"
)

func TestSwitchTabResetsHistory(t *testing.T) {
	n, _ := newNavigator(t)
	push(n, "page-monday")
	push(n, "page-monday-ex1")

	tr, ok := n.SwitchTab("page-tools")
	if !ok || tr.Kind != KindTab || tr.Mode != Reset || tr.From != "page-monday-ex1" {
		t.Fatalf("unexpected transition %+v, %v", tr, ok)
	}
	if got := n.History(); !reflect.DeepEqual(got, []string{"page-tools"}) {
		t.Fatalf("history = %v", got)
	}
	assertInvariant(t, n)

	doc := n.Document()
	for _, id := range []string{"page-monday", "page-monday-ex1", "page-home"} {
		if st := doc.Page(id).State(); st != view.StateInert {
			t.Fatalf("%s should be inert after tab switch, got %s", id, st)
		}
	}
	if doc.Page("page-monday-ex1").DetailNav() != nil {
		t.Fatalf("stale detail nav survived the tab switch")
	}
}

func TestReturnToHomeShowsHomeNotDetail(t *testing.T) {
	n, _ := newNavigator(t)
	push(n, "page-monday")
	push(n, "page-monday-ex7")
	n.SwitchTab("page-tools")
	n.SwitchTab("page-home")

	if n.Active() != "page-home" {
		t.Fatalf("active = %s", n.Active())
	}
	if got := n.History(); len(got) != 1 {
		t.Fatalf("history = %v", got)
	}
	if active := n.Document().Active(); !reflect.DeepEqual(active, []string{"page-home"}) {
		t.Fatalf("active pages = %v", active)
	}
}

func TestSwitchTabFromToolsClearsToolSubpages(t *testing.T) {
	n, _ := newNavigator(t)
	n.SwitchTab("page-tools")
	push(n, "page-tuesday-ex1")
	n.SwitchTab("page-home")
	assertInvariant(t, n)
	if st := n.Document().Page("page-tuesday-ex1").State(); st != view.StateInert {
		t.Fatalf("page visited from tools should be inert, got %s", st)
	}
}

func TestSwitchTabRejectsNonTabs(t *testing.T) {
	n, _ := newNavigator(t)
	push(n, "page-monday")
	for _, id := range []string{"page-monday", "page-monday-ex1", "page-bogus"} {
		if _, ok := n.SwitchTab(id); ok {
			t.Fatalf("SwitchTab(%q) should be ignored", id)
		}
	}
	if got := n.History(); len(got) != 2 {
		t.Fatalf("history changed: %v", got)
	}
}

func TestSwitchTabInjectsChrome(t *testing.T) {
	n, th := newNavigator(t)
	n.SwitchTab("page-tools")
	tools := n.Document().Page("page-tools")
	if tools.Chrome() == nil || tools.Chrome().ShowBack {
		t.Fatalf("tabs get chrome without a back control")
	}
	if tools.Title != "Tools" {
		t.Fatalf("title = %q", tools.Title)
	}
	if _, ok := th.Icon("btn-page-tools"); !ok {
		t.Fatalf("tab icon not registered")
	}
}

func TestSwitchToSameRootTabStillResetsStalePages(t *testing.T) {
	n, _ := newNavigator(t)
	n.SwitchTab("page-tools")
	push(n, "page-monday")
	push(n, "page-monday-ex2")

	n.SwitchTab("page-tools")
	assertInvariant(t, n)
	for _, id := range []string{"page-monday", "page-monday-ex2"} {
		if st := n.Document().Page(id).State(); st != view.StateInert {
			t.Fatalf("%s should be inert, got %s", id, st)
		}
	}
	if n.Document().Page("page-monday-ex2").DetailNav() != nil {
		t.Fatalf("stale detail nav survived")
	}
}
