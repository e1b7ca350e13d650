// Package nav drives page transitions. It owns the navigation history and
// decides, for every navigation, which page is active, which pages are parked
// off-screen and which are leaving, keeping the history top and the active
// page in lock-step.
//
// All methods must be called from a single goroutine (the UI event loop).
package nav

import (
	"log/slog"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/history"
	"tableflip.dev/trainer/pkg/theme"
	"tableflip.dev/trainer/pkg/view"
)

// Direction selects the slide animation.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Mode selects how history is mutated.
type Mode int

const (
	// Push appends the target unless it is already active.
	Push Mode = iota
	// Replace swaps the top entry, used between sibling detail pages.
	Replace
	// Reset clears history down to a tab.
	Reset
)

func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Reset:
		return "reset"
	default:
		return "push"
	}
}

// Kind tells which operation produced a Transition.
type Kind int

const (
	KindNavigate Kind = iota
	KindBack
	KindTab
)

func (k Kind) String() string {
	switch k {
	case KindBack:
		return "back"
	case KindTab:
		return "tab"
	default:
		return "navigate"
	}
}

// Request asks for a navigation to Target.
type Request struct {
	Target    string
	Title     string
	Direction Direction
	Mode      Mode
}

// Transition describes a completed navigation.
type Transition struct {
	From      string
	To        string
	Direction Direction
	Mode      Mode
	Kind      Kind
}

// Navigator is the transition engine.
type Navigator struct {
	catalog  *catalog.Catalog
	doc      *view.Document
	history  *history.History
	theme    *theme.Controller
	logger   *slog.Logger
	observer func(Transition)
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithObserver registers fn to receive every completed transition.
func WithObserver(fn func(Transition)) Option {
	return func(n *Navigator) { n.observer = fn }
}

// WithDocument uses doc instead of a document built from the catalog.
func WithDocument(doc *view.Document) Option {
	return func(n *Navigator) {
		if doc != nil {
			n.doc = doc
		}
	}
}

// New creates a Navigator whose history is seeded with the catalog's home
// tab, which starts active.
func New(cat *catalog.Catalog, th *theme.Controller, opts ...Option) *Navigator {
	n := &Navigator{
		catalog: cat,
		theme:   th,
		history: history.New(cat.Home()),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.doc == nil {
		n.doc = view.NewDocument(cat.PageIDs()...)
	}
	if home := n.doc.Page(cat.Home()); home != nil {
		n.decorate(home, "")
		home.Add(view.ClassActive)
	}
	return n
}

// Active returns the id of the active page.
func (n *Navigator) Active() string { return n.history.Top() }

// History returns the navigation stack, oldest first.
func (n *Navigator) History() []string { return n.history.Entries() }

// Catalog returns the page catalog.
func (n *Navigator) Catalog() *catalog.Catalog { return n.catalog }

// Document returns the page elements.
func (n *Navigator) Document() *view.Document { return n.doc }

// Theme returns the theme controller wired into page chrome.
func (n *Navigator) Theme() *theme.Controller { return n.theme }

// NavigateTo shows req.Target. Unknown targets are ignored and reported as
// false.
func (n *Navigator) NavigateTo(req Request) (Transition, bool) {
	incoming := n.doc.Page(req.Target)
	if incoming == nil {
		n.logger.Debug("nav: unknown target", "target", req.Target)
		return Transition{}, false
	}
	from := n.history.Top()
	outgoing := n.doc.Page(from)

	n.decorate(incoming, req.Title)

	for _, p := range n.doc.Pages() {
		if p.ID != req.Target {
			n.doc.RemoveDetailNav(p.ID)
		}
	}
	n.refreshDetailNav(req.Target)

	if req.Mode == Replace {
		n.history.ReplaceTop(req.Target)
	} else {
		n.history.Push(req.Target)
	}

	moved := outgoing != nil && from != req.Target
	if moved {
		outgoing.Remove(view.ClassActive | view.ClassNoTransition)
		if req.Direction == Forward {
			outgoing.Remove(view.ClassExiting)
			outgoing.Add(view.ClassPrevious)
		} else {
			outgoing.Remove(view.ClassPrevious)
			outgoing.Add(view.ClassExiting)
		}
	}

	incoming.Remove(view.ClassExiting)
	if moved && req.Direction == Backward {
		n.settle(incoming)
	} else {
		incoming.Remove(view.ClassPrevious)
		incoming.Add(view.ClassActive)
	}

	n.reconcile(req.Target, from)
	incoming.ScrollTop = 0

	mode := req.Mode
	if mode != Replace {
		mode = Push
	}
	return n.finish(Transition{From: from, To: req.Target, Direction: req.Direction, Mode: mode, Kind: KindNavigate}), true
}

// Back returns to the previous page. It does nothing when only the root
// entry is left.
func (n *Navigator) Back() (Transition, bool) {
	popped, ok := n.history.Pop()
	if !ok {
		return Transition{}, false
	}
	to := n.history.Top()

	if p := n.doc.Page(popped); p != nil {
		n.doc.RemoveDetailNav(popped)
		p.Remove(view.ClassActive | view.ClassPrevious | view.ClassNoTransition)
		p.Add(view.ClassExiting)
	}
	if p := n.doc.Page(to); p != nil {
		p.Remove(view.ClassExiting)
		n.settle(p)
		// Neighbors depend on the page's position in its section, so the bar
		// is rebuilt rather than trusted.
		n.refreshDetailNav(to)
	}
	n.reconcile(to, popped)

	return n.finish(Transition{From: popped, To: to, Direction: Backward, Mode: Push, Kind: KindBack}), true
}

// decorate injects chrome into p on first visit and applies the title.
func (n *Navigator) decorate(p *view.Page, title string) {
	if chrome, fresh := n.doc.InjectChrome(p.ID); fresh {
		chrome.ShowBack = !n.catalog.IsTab(p.ID)
		chrome.OnBack = func() { n.Back() }
		chrome.OnTheme = n.toggleTheme
		if n.theme != nil {
			chrome.Icons = n.theme.Register("btn-" + p.ID)
		}
	}
	if title == "" {
		title = n.catalog.Title(p.ID)
	}
	p.Title = title
}

func (n *Navigator) toggleTheme() {
	if n.theme == nil {
		return
	}
	if err := n.theme.Toggle(); err != nil {
		n.logger.Debug("nav: toggle theme", "error", err)
	}
}

// refreshDetailNav attaches the prev/next bar to detail pages, wiring each
// control to a replace-mode transition, and removes it from other pages.
func (n *Navigator) refreshDetailNav(id string) {
	if !n.catalog.IsDetail(id) {
		n.doc.RemoveDetailNav(id)
		return
	}
	bar := n.doc.AttachDetailNav(id)
	if bar == nil {
		return
	}
	nb := n.catalog.Neighbors(id)
	bar.PrevID, bar.PrevTitle = nb.PrevID, nb.PrevTitle
	bar.NextID, bar.NextTitle = nb.NextID, nb.NextTitle
	bar.PrevHidden = !nb.HasPrev()
	bar.NextHidden = !nb.HasNext()
	bar.OnPrev = func() {
		if nb.HasPrev() {
			n.NavigateTo(Request{Target: nb.PrevID, Title: nb.PrevTitle, Direction: Backward, Mode: Replace})
		}
	}
	bar.OnNext = func() {
		if nb.HasNext() {
			n.NavigateTo(Request{Target: nb.NextID, Title: nb.NextTitle, Direction: Forward, Mode: Replace})
		}
	}
}

// settle places p at the parked position without animating, flushes layout,
// then lets it animate into the active slot.
func (n *Navigator) settle(p *view.Page) {
	p.Add(view.ClassNoTransition | view.ClassPrevious)
	n.doc.Reflow(p.ID)
	p.Remove(view.ClassNoTransition)
	p.Remove(view.ClassPrevious)
	p.Add(view.ClassActive)
}

// reconcile parks every page still in history and resets every other page,
// leaving the entering and outgoing pages alone.
func (n *Navigator) reconcile(entering, outgoing string) {
	for _, p := range n.doc.Pages() {
		if p.ID == entering || p.ID == outgoing {
			continue
		}
		if n.history.Contains(p.ID) {
			p.Remove(view.ClassActive | view.ClassExiting | view.ClassNoTransition)
			p.Add(view.ClassPrevious)
			continue
		}
		p.Reset()
	}
}

func (n *Navigator) finish(tr Transition) Transition {
	n.logger.Debug("nav: transition",
		"kind", tr.Kind.String(),
		"from", tr.From,
		"to", tr.To,
		"direction", tr.Direction.String(),
		"mode", tr.Mode.String(),
		"depth", n.history.Len(),
	)
	if n.observer != nil {
		n.observer(tr)
	}
	return tr
}
