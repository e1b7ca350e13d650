// Package catalog implements the catalog inspection commands.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	pages "tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/printers"
)

// List prints the tabs and sections of a catalog.
type List struct {
	Path   string
	ShowID bool
	Output string
	Out    io.Writer
}

type pageJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type sectionJSON struct {
	pageJSON
	Pages []pageJSON `json:"pages"`
}

type listingJSON struct {
	Home     string        `json:"home"`
	Tabs     []pageJSON    `json:"tabs"`
	Sections []sectionJSON `json:"sections"`
}

// Do loads the catalog and prints it.
func (l *List) Do(ctx context.Context) error {
	cat, err := pages.Load(l.Path)
	if err != nil {
		return err
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}

	switch l.Output {
	case "json":
		listing := listingJSON{Home: cat.Home(), Tabs: []pageJSON{}, Sections: []sectionJSON{}}
		for _, id := range cat.Tabs() {
			listing.Tabs = append(listing.Tabs, pageJSON{ID: id, Title: cat.Title(id)})
		}
		for _, s := range cat.Sections() {
			sj := sectionJSON{pageJSON: pageJSON{ID: s.ID, Title: s.Title}, Pages: []pageJSON{}}
			for _, id := range s.Pages {
				sj.Pages = append(sj.Pages, pageJSON{ID: id, Title: cat.Title(id)})
			}
			listing.Sections = append(listing.Sections, sj)
		}
		b, err := json.Marshal(listing)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))

	default:
		pp := printers.PrettyPrint{ShowID: l.ShowID, Out: out}
		pp.Catalog(cat)
	}
	return nil
}

// Check validates a catalog and reports every problem found.
type Check struct {
	Path   string
	Output string
	Out    io.Writer
}

// Do returns the problems as an error after printing them, so the command
// exits non-zero on a dirty catalog.
func (c *Check) Do(ctx context.Context) error {
	cat, err := pages.Load(c.Path)
	if err != nil {
		return err
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}
	problems := cat.Check()
	if c.Output == "json" {
		if problems == nil {
			_, _ = fmt.Fprintln(out, `{"ok":true}`)
		}
		return problems
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Problems(problems)
	if problems != nil {
		return errors.New("catalog: check failed")
	}
	return nil
}
