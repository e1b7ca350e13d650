// Package view models the page elements of the viewer: which visual classes
// each page carries and which chrome has been injected into it. It plays the
// role of the document; nothing here decides navigation.
package view

import (
	"sort"
	"strings"

	"tableflip.dev/trainer/pkg/theme"
)

// Class is a visual state flag carried by a page.
type Class uint8

const (
	// ClassActive marks the page occupying the visible slot.
	ClassActive Class = 1 << iota
	// ClassPrevious parks a page off-screen, ready to slide back in.
	ClassPrevious
	// ClassExiting marks a page sliding out to the opposite side.
	ClassExiting
	// ClassNoTransition suppresses animation while a page is repositioned.
	ClassNoTransition
)

func (c Class) String() string {
	var names []string
	for _, n := range []struct {
		c    Class
		name string
	}{
		{ClassActive, "active"},
		{ClassPrevious, "previous"},
		{ClassExiting, "exiting"},
		{ClassNoTransition, "no-transition"},
	} {
		if c&n.c != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "inert"
	}
	return strings.Join(names, "|")
}

// State is the resting visual state derived from a page's classes.
type State int

const (
	StateInert State = iota
	StateActive
	StatePrevious
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePrevious:
		return "previous"
	case StateExiting:
		return "exiting"
	default:
		return "inert"
	}
}

// Chrome is the standard header injected into a page: title slot, back
// control and theme toggle.
type Chrome struct {
	ShowBack bool
	Icons    *theme.IconPair
	OnBack   func()
	OnTheme  func()
}

// DetailNav is the prev/next bar attached to detail pages.
type DetailNav struct {
	PrevID     string
	PrevTitle  string
	NextID     string
	NextTitle  string
	PrevHidden bool
	NextHidden bool
	OnPrev     func()
	OnNext     func()
}

// Page is one page element.
type Page struct {
	ID        string
	Title     string
	ScrollTop int

	classes   Class
	chrome    *Chrome
	detailNav *DetailNav
}

// Has reports whether the page carries all of c.
func (p *Page) Has(c Class) bool { return p.classes&c == c }

// Classes returns the raw class set.
func (p *Page) Classes() Class { return p.classes }

// Add sets c on the page.
func (p *Page) Add(c Class) { p.classes |= c }

// Remove clears c from the page.
func (p *Page) Remove(c Class) { p.classes &^= c }

// Reset clears every class, leaving the page inert.
func (p *Page) Reset() { p.classes = 0 }

// State derives the resting state. Active wins over parked.
func (p *Page) State() State {
	switch {
	case p.Has(ClassActive):
		return StateActive
	case p.Has(ClassExiting):
		return StateExiting
	case p.Has(ClassPrevious):
		return StatePrevious
	default:
		return StateInert
	}
}

// Chrome returns the injected header, or nil.
func (p *Page) Chrome() *Chrome { return p.chrome }

// DetailNav returns the attached prev/next bar, or nil.
func (p *Page) DetailNav() *DetailNav { return p.detailNav }

// Event records a structural or class mutation for observers.
type Event struct {
	Page string
	Op   string
}

// Document holds every page element.
type Document struct {
	pages    map[string]*Page
	order    []string
	observer func(Event)
	reflows  int
}

// NewDocument creates inert pages for ids, in order.
func NewDocument(ids ...string) *Document {
	d := &Document{pages: make(map[string]*Page, len(ids))}
	for _, id := range ids {
		if _, dup := d.pages[id]; dup || id == "" {
			continue
		}
		d.pages[id] = &Page{ID: id}
		d.order = append(d.order, id)
	}
	return d
}

// Observe installs fn to receive structural events (chrome injection,
// nav bar changes, reflows).
func (d *Document) Observe(fn func(Event)) { d.observer = fn }

// Page looks up a page element; nil when absent.
func (d *Document) Page(id string) *Page {
	return d.pages[id]
}

// Pages returns every page in creation order.
func (d *Document) Pages() []*Page {
	out := make([]*Page, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.pages[id])
	}
	return out
}

// Active returns the ids of pages carrying ClassActive, sorted.
func (d *Document) Active() []string {
	var ids []string
	for id, p := range d.pages {
		if p.Has(ClassActive) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// InjectChrome inserts the standard header into page id once. It returns the
// chrome and whether it was inserted by this call.
func (d *Document) InjectChrome(id string) (*Chrome, bool) {
	p := d.pages[id]
	if p == nil {
		return nil, false
	}
	if p.chrome != nil {
		return p.chrome, false
	}
	p.chrome = &Chrome{}
	d.emit(id, "inject-chrome")
	return p.chrome, true
}

// AttachDetailNav adds the prev/next bar to page id, reusing an existing bar.
func (d *Document) AttachDetailNav(id string) *DetailNav {
	p := d.pages[id]
	if p == nil {
		return nil
	}
	if p.detailNav == nil {
		p.detailNav = &DetailNav{}
		d.emit(id, "attach-detail-nav")
	}
	return p.detailNav
}

// RemoveDetailNav drops the prev/next bar from page id, if any.
func (d *Document) RemoveDetailNav(id string) {
	p := d.pages[id]
	if p == nil || p.detailNav == nil {
		return
	}
	p.detailNav = nil
	d.emit(id, "remove-detail-nav")
}

// Reflow forces a synchronous layout pass for page id so a class change
// applied just before takes effect before the next one.
func (d *Document) Reflow(id string) {
	d.reflows++
	d.emit(id, "reflow")
}

// Reflows returns the number of forced layout passes so far.
func (d *Document) Reflows() int { return d.reflows }

func (d *Document) emit(id, op string) {
	if d.observer != nil {
		d.observer(Event{Page: id, Op: op})
	}
}
