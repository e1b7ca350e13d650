// Package gesture turns a horizontal drag on a detail page into sibling
// navigation.
package gesture

import (
	"math"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/nav"
)

const (
	// DefaultHorizontal is the minimum horizontal travel for a swipe.
	DefaultHorizontal = 50
	// DefaultVertical is the maximum vertical travel a swipe may have.
	DefaultVertical = 75
)

// Thresholds bound what counts as a swipe.
type Thresholds struct {
	Horizontal float64
	Vertical   float64
}

// DefaultThresholds returns the stock swipe bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{Horizontal: DefaultHorizontal, Vertical: DefaultVertical}
}

// Point is a position in gesture units.
type Point struct {
	X, Y float64
}

// Intent is the navigation a drag asks for.
type Intent int

const (
	IntentNone Intent = iota
	IntentPrevious
	IntentNext
)

func (i Intent) String() string {
	switch i {
	case IntentPrevious:
		return "previous"
	case IntentNext:
		return "next"
	default:
		return "none"
	}
}

// Classify maps a displacement (end minus start) to an intent. Diagonal and
// scroll-like drags are rejected.
func Classify(dx, dy float64, t Thresholds) Intent {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax <= t.Horizontal || ax <= ay || ay > t.Vertical {
		return IntentNone
	}
	if dx > 0 {
		return IntentPrevious
	}
	return IntentNext
}

// Navigator is the part of the transition engine the router drives.
type Navigator interface {
	Active() string
	NavigateTo(nav.Request) (nav.Transition, bool)
}

// Router tracks one drag at a time.
type Router struct {
	catalog    *catalog.Catalog
	nav        Navigator
	thresholds Thresholds

	start *Point
}

// NewRouter creates a router using t; zero thresholds fall back to defaults.
func NewRouter(cat *catalog.Catalog, n Navigator, t Thresholds) *Router {
	if t.Horizontal <= 0 {
		t.Horizontal = DefaultHorizontal
	}
	if t.Vertical <= 0 {
		t.Vertical = DefaultVertical
	}
	return &Router{catalog: cat, nav: n, thresholds: t}
}

// Thresholds returns the active bounds.
func (r *Router) Thresholds() Thresholds { return r.thresholds }

// Start records the drag origin when the active page is a detail page. It
// reports whether a gesture was armed.
func (r *Router) Start(p Point) bool {
	r.start = nil
	if !r.catalog.IsDetail(r.nav.Active()) {
		return false
	}
	r.start = &p
	return true
}

// Armed reports whether a drag is in progress.
func (r *Router) Armed() bool { return r.start != nil }

// Cancel drops any armed drag.
func (r *Router) Cancel() { r.start = nil }

// End finishes the drag at p and performs the navigation it describes. It
// reports false when nothing was armed, the drag was not a swipe, or there
// is no neighbor in that direction.
func (r *Router) End(p Point) (nav.Transition, bool) {
	if r.start == nil {
		return nav.Transition{}, false
	}
	start := *r.start
	r.start = nil

	intent := Classify(p.X-start.X, p.Y-start.Y, r.thresholds)
	if intent == IntentNone {
		return nav.Transition{}, false
	}
	nb := r.catalog.Neighbors(r.nav.Active())
	switch intent {
	case IntentPrevious:
		if !nb.HasPrev() {
			return nav.Transition{}, false
		}
		return r.nav.NavigateTo(nav.Request{Target: nb.PrevID, Title: nb.PrevTitle, Direction: nav.Backward, Mode: nav.Replace})
	default:
		if !nb.HasNext() {
			return nav.Transition{}, false
		}
		return r.nav.NavigateTo(nav.Request{Target: nb.NextID, Title: nb.NextTitle, Direction: nav.Forward, Mode: nav.Replace})
	}
}
