package catalog

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Check reports data that loads fine but degrades navigation at runtime:
// detail pages whose derived section is not the one listing them (they lose
// prev/next navigation), links to unknown pages and reserved categories that
// point at missing sections. A nil result means the catalog is clean.
func (c *Catalog) Check() error {
	var errs []error
	for _, s := range c.sections {
		for _, id := range s.Pages {
			parent, ok := c.ParentOf(id)
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("page %q: no section can be derived from its id", id))
			case parent != s.ID:
				errs = append(errs, fmt.Errorf("page %q: listed by %q but derives section %q", id, s.ID, parent))
			}
		}
	}
	for owner, links := range c.links {
		for _, l := range links {
			if !c.Has(l.Target) {
				errs = append(errs, fmt.Errorf("page %q: link to unknown page %q", owner, l.Target))
			}
		}
	}
	for category, section := range c.reserved {
		if _, ok := c.bySec[section]; !ok {
			errs = append(errs, fmt.Errorf("reserved category %q: unknown section %q", category, section))
		}
	}
	return errors.Join(errs...)
}

// Suggest returns the known page id closest to id, for "did you mean" hints.
func (c *Catalog) Suggest(id string) (string, bool) {
	best, bestDist := "", -1
	for _, candidate := range c.PageIDs() {
		d := levenshtein.ComputeDistance(id, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > len(id)/2+1 {
		return "", false
	}
	return best, true
}

// Resolve returns the page for id. Unknown ids yield an error wrapping
// ErrUnknownPage that names the closest known page when there is one.
func (c *Catalog) Resolve(id string) (Page, error) {
	if p, ok := c.Page(id); ok {
		return p, nil
	}
	if s, ok := c.Suggest(id); ok {
		return Page{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownPage, id, s)
	}
	return Page{}, fmt.Errorf("%w %q", ErrUnknownPage, id)
}
