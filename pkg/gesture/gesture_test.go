package gesture

import (
	"fmt"
	"testing"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/nav"
	"tableflip.dev/trainer/pkg/theme"
)

func fixture(t *testing.T) (*catalog.Catalog, *nav.Navigator) {
	t.Helper()
	sec := catalog.SectionFile{ID: "page-monday", Title: "Monday"}
	for i := 1; i <= 3; i++ {
		sec.Pages = append(sec.Pages, catalog.PageFile{ID: fmt.Sprintf("page-monday-ex%d", i), Title: fmt.Sprintf("Ex %d", i)})
	}
	cat, err := catalog.New(catalog.File{
		Tabs:     []catalog.TabFile{{ID: "page-home", Title: "Home"}},
		Sections: []catalog.SectionFile{sec},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat, nav.New(cat, theme.NewController(nil, nil))
}

func openDetail(n *nav.Navigator, id string) {
	n.NavigateTo(nav.Request{Target: "page-monday", Mode: nav.Push})
	n.NavigateTo(nav.Request{Target: id, Mode: nav.Push})
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		dx, dy float64
		want   Intent
	}{
		{dx: -60, dy: 10, want: IntentNext},
		{dx: 60, dy: 10, want: IntentPrevious},
		{dx: -60, dy: 80, want: IntentNone},
		{dx: 60, dy: 80, want: IntentNone},
		{dx: 50, dy: 0, want: IntentNone},
		{dx: 100, dy: 90, want: IntentNone},
		{dx: -70, dy: -70, want: IntentNone},
		{dx: -90, dy: 75, want: IntentNext},
		{dx: 0, dy: 0, want: IntentNone},
	}
	for _, tt := range tests {
		if got := Classify(tt.dx, tt.dy, th); got != tt.want {
			t.Fatalf("Classify(%v, %v) = %s, want %s", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestSwipeLeftGoesNextWithReplace(t *testing.T) {
	cat, n := fixture(t)
	openDetail(n, "page-monday-ex1")
	r := NewRouter(cat, n, Thresholds{})

	if !r.Start(Point{X: 100, Y: 20}) {
		t.Fatalf("expected gesture to arm on a detail page")
	}
	tr, ok := r.End(Point{X: 40, Y: 30})
	if !ok {
		t.Fatalf("expected swipe to navigate")
	}
	if tr.To != "page-monday-ex2" || tr.Direction != nav.Forward || tr.Mode != nav.Replace {
		t.Fatalf("unexpected transition %+v", tr)
	}
	if got := n.History(); len(got) != 3 || got[2] != "page-monday-ex2" {
		t.Fatalf("history = %v", got)
	}
	if r.Armed() {
		t.Fatalf("router should disarm after End")
	}
}

func TestSwipeRightGoesPreviousBackward(t *testing.T) {
	cat, n := fixture(t)
	openDetail(n, "page-monday-ex2")
	r := NewRouter(cat, n, DefaultThresholds())

	r.Start(Point{X: 10, Y: 10})
	tr, ok := r.End(Point{X: 90, Y: 0})
	if !ok || tr.To != "page-monday-ex1" || tr.Direction != nav.Backward || tr.Mode != nav.Replace {
		t.Fatalf("unexpected transition %+v, %v", tr, ok)
	}
}

func TestSteepDragIsRejected(t *testing.T) {
	cat, n := fixture(t)
	openDetail(n, "page-monday-ex2")
	r := NewRouter(cat, n, DefaultThresholds())

	r.Start(Point{X: 100, Y: 0})
	if _, ok := r.End(Point{X: 40, Y: 80}); ok {
		t.Fatalf("vertical travel over the limit must not navigate")
	}
	if n.Active() != "page-monday-ex2" {
		t.Fatalf("active changed to %s", n.Active())
	}
}

func TestGestureNotArmedOutsideDetailPages(t *testing.T) {
	cat, n := fixture(t)
	r := NewRouter(cat, n, DefaultThresholds())
	if r.Start(Point{}) {
		t.Fatalf("home is not a detail page")
	}
	if _, ok := r.End(Point{X: -100}); ok {
		t.Fatalf("unarmed drag must not navigate")
	}

	n.NavigateTo(nav.Request{Target: "page-monday", Mode: nav.Push})
	if r.Start(Point{}) {
		t.Fatalf("section pages are not detail pages")
	}
}

func TestSwipePastEdgeIsNoop(t *testing.T) {
	cat, n := fixture(t)
	openDetail(n, "page-monday-ex3")
	r := NewRouter(cat, n, DefaultThresholds())

	r.Start(Point{X: 100})
	if _, ok := r.End(Point{X: 0}); ok {
		t.Fatalf("no next neighbor on the last page")
	}
	if n.Active() != "page-monday-ex3" {
		t.Fatalf("active changed to %s", n.Active())
	}
}

func TestCancel(t *testing.T) {
	cat, n := fixture(t)
	openDetail(n, "page-monday-ex1")
	r := NewRouter(cat, n, DefaultThresholds())
	r.Start(Point{X: 100})
	r.Cancel()
	if _, ok := r.End(Point{X: 0}); ok {
		t.Fatalf("cancelled drag must not navigate")
	}
}
