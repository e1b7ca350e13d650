package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTabs is returned when catalog data declares no top-level tabs.
	ErrNoTabs = errors.New("catalog: at least one tab is required")
	// ErrUnknownPage is returned by lookups that require an existing page.
	ErrUnknownPage = errors.New("catalog: unknown page")
)

// Kind classifies a page within the catalog.
type Kind int

const (
	// KindUnknown marks ids the catalog does not know about.
	KindUnknown Kind = iota
	// KindTab is a top-level tab (home, tools).
	KindTab
	// KindSection owns an ordered list of detail pages.
	KindSection
	// KindDetail is a page listed by a section.
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindTab:
		return "tab"
	case KindSection:
		return "section"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Page is a single addressable page.
type Page struct {
	ID    string
	Title string
	Body  string
	Kind  Kind
	// Section is the declaring section for detail pages.
	Section string
}

// Link is a clickable navigation target rendered on a page.
type Link struct {
	Target string
	Title  string
}

// Section is an ordered group of detail pages.
type Section struct {
	ID    string
	Title string
	Pages []string
}

// Neighbors are the adjacent detail pages of a page within its section.
// Empty ids mean there is no neighbor in that direction.
type Neighbors struct {
	PrevID    string
	PrevTitle string
	NextID    string
	NextTitle string
}

// HasPrev reports whether a previous sibling exists.
func (n Neighbors) HasPrev() bool { return n.PrevID != "" }

// HasNext reports whether a next sibling exists.
func (n Neighbors) HasNext() bool { return n.NextID != "" }

// Catalog is the immutable page hierarchy. It is safe to share once built.
type Catalog struct {
	home     string
	tabs     []string
	sections []Section
	bySec    map[string][]string
	pages    map[string]*Page
	links    map[string][]Link
	reserved map[string]string
}

// New validates f and builds a Catalog from it.
func New(f File) (*Catalog, error) {
	if len(f.Tabs) == 0 {
		return nil, ErrNoTabs
	}
	c := &Catalog{
		bySec:    make(map[string][]string, len(f.Sections)),
		pages:    make(map[string]*Page),
		links:    make(map[string][]Link),
		reserved: make(map[string]string, len(f.Reserved)),
	}
	add := func(p *Page) error {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("catalog: %s page with empty id", p.Kind)
		}
		if _, dup := c.pages[id]; dup {
			return fmt.Errorf("catalog: duplicate page id %q", id)
		}
		p.ID = id
		c.pages[id] = p
		return nil
	}

	for _, t := range f.Tabs {
		p := &Page{ID: t.ID, Title: t.Title, Body: t.Body, Kind: KindTab}
		if err := add(p); err != nil {
			return nil, err
		}
		c.tabs = append(c.tabs, p.ID)
		for _, l := range t.Links {
			c.links[p.ID] = append(c.links[p.ID], Link{Target: strings.TrimSpace(l.Target), Title: l.Title})
		}
	}
	for _, s := range f.Sections {
		sp := &Page{ID: s.ID, Title: s.Title, Body: s.Body, Kind: KindSection}
		if err := add(sp); err != nil {
			return nil, err
		}
		sec := Section{ID: sp.ID, Title: s.Title}
		for _, d := range s.Pages {
			dp := &Page{ID: d.ID, Title: d.Title, Body: d.Body, Kind: KindDetail, Section: sec.ID}
			if err := add(dp); err != nil {
				return nil, err
			}
			sec.Pages = append(sec.Pages, dp.ID)
			c.links[sec.ID] = append(c.links[sec.ID], Link{Target: dp.ID, Title: d.Title})
		}
		c.sections = append(c.sections, sec)
		c.bySec[sec.ID] = sec.Pages
	}
	for category, section := range f.Reserved {
		c.reserved[category] = section
	}

	c.home = strings.TrimSpace(f.Home)
	if c.home == "" {
		c.home = c.tabs[0]
	}
	if c.Kind(c.home) != KindTab {
		return nil, fmt.Errorf("catalog: home %q is not a tab", c.home)
	}
	return c, nil
}

// Home returns the root tab seeded into navigation history.
func (c *Catalog) Home() string { return c.home }

// Tabs returns the top-level tab ids in display order.
func (c *Catalog) Tabs() []string {
	return append([]string(nil), c.tabs...)
}

// Sections returns all sections in declaration order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Pages = append([]string(nil), s.Pages...)
		out[i] = s
	}
	return out
}

// PageIDs returns every known page id, tabs first, then each section followed
// by its detail pages.
func (c *Catalog) PageIDs() []string {
	ids := make([]string, 0, len(c.pages))
	ids = append(ids, c.tabs...)
	for _, s := range c.sections {
		ids = append(ids, s.ID)
		ids = append(ids, s.Pages...)
	}
	return ids
}

// Page looks up a page by id.
func (c *Catalog) Page(id string) (Page, bool) {
	p, ok := c.pages[id]
	if !ok {
		return Page{}, false
	}
	return *p, true
}

// Has reports whether id names a known page.
func (c *Catalog) Has(id string) bool {
	_, ok := c.pages[id]
	return ok
}

// Kind returns the page kind for id.
func (c *Catalog) Kind(id string) Kind {
	if p, ok := c.pages[id]; ok {
		return p.Kind
	}
	return KindUnknown
}

// IsTab reports whether id is a top-level tab.
func (c *Catalog) IsTab(id string) bool { return c.Kind(id) == KindTab }

// Title returns the declared display title of id, or "" when unknown.
func (c *Catalog) Title(id string) string {
	if p, ok := c.pages[id]; ok {
		return p.Title
	}
	return ""
}

// Links returns the navigation targets rendered on page id.
func (c *Catalog) Links(id string) []Link {
	return append([]Link(nil), c.links[id]...)
}

// ParentOf derives the owning section of id from its naming structure:
// "<prefix>-<section>-<rest>" belongs to "<prefix>-<section>" unless the
// second component is a reserved category mapped to a fixed section.
func (c *Catalog) ParentOf(id string) (string, bool) {
	parts := strings.Split(id, "-")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	if section, ok := c.reserved[parts[1]]; ok {
		return section, true
	}
	return parts[0] + "-" + parts[1], true
}

// IsDetail reports whether id is listed by its derived section.
func (c *Catalog) IsDetail(id string) bool {
	_, ok := c.indexOf(id)
	return ok
}

// Neighbors returns the previous and next detail pages around id. Pages that
// are not found in their derived section's list have no neighbors.
func (c *Catalog) Neighbors(id string) Neighbors {
	list, idx, ok := c.locate(id)
	if !ok {
		return Neighbors{}
	}
	var n Neighbors
	if idx > 0 {
		n.PrevID = list[idx-1]
		n.PrevTitle = c.Title(n.PrevID)
	}
	if idx+1 < len(list) {
		n.NextID = list[idx+1]
		n.NextTitle = c.Title(n.NextID)
	}
	return n
}

func (c *Catalog) indexOf(id string) (int, bool) {
	_, idx, ok := c.locate(id)
	return idx, ok
}

func (c *Catalog) locate(id string) ([]string, int, bool) {
	parent, ok := c.ParentOf(id)
	if !ok {
		return nil, -1, false
	}
	list, ok := c.bySec[parent]
	if !ok {
		return nil, -1, false
	}
	for i, candidate := range list {
		if candidate == id {
			return list, i, true
		}
	}
	return nil, -1, false
}
