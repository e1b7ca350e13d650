package printers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/trainer/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.File{
		Tabs: []catalog.TabFile{{ID: "page-home", Title: "Home"}, {ID: "page-tools", Title: "Tools"}},
		Sections: []catalog.SectionFile{
			{ID: "page-monday", Title: "Monday", Pages: []catalog.PageFile{
				{ID: "page-monday-ex1", Title: "Bench"},
				{ID: "page-monday-ex2", Title: "Fly"},
			}},
			{ID: "page-sunday", Title: "Sunday"},
		},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func TestCatalogListing(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Catalog(testCatalog(t))

	out := buf.String()
	for _, want := range []string{"Tabs", "* 1  Home", "Monday - 2 pages", "  2  Fly", "Sunday - 0 pages", " none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "page-monday-ex1") {
		t.Fatalf("ids should be hidden by default")
	}
}

func TestCatalogListingWithIDs(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	cat := testCatalog(t)
	pp.Section(cat, cat.Sections()[0])
	if !strings.Contains(buf.String(), "page-monday-ex1  Bench") {
		t.Fatalf("expected ids in:\n%s", buf.String())
	}
}

func TestProblems(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Problems(nil)
	pp.Problems(errors.Join(errors.New("first"), errors.New("second")))
	want := "catalog ok\n✗ first\n✗ second\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
