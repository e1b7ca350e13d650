package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/trainer/pkg/catalog"
)

// PrettyPrint writes human-friendly catalog listings.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " page")
	default:
		_, _ = c.Fprintln(pp.out(), " pages")
	}
}

// Tabs lists the top-level tabs, marking the home tab.
func (pp *PrettyPrint) Tabs(cat *catalog.Catalog) {
	pp.Title("Tabs")
	tbl := uitable.New()
	tbl.Separator = "  "
	home := color.New(color.FgHiGreen)
	for i, id := range cat.Tabs() {
		marker := " "
		if id == cat.Home() {
			marker = home.Sprint("*")
		}
		pp.row(tbl, fmt.Sprintf("%s %d", marker, i+1), id, cat.Title(id))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Section lists one section's detail pages in order.
func (pp *PrettyPrint) Section(cat *catalog.Catalog, s catalog.Section) {
	pp.TitleWithCount(s.Title, len(s.Pages))
	if len(s.Pages) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for i, id := range s.Pages {
		pp.row(tbl, fmt.Sprintf("%3d", i+1), id, cat.Title(id))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Catalog lists every tab and section.
func (pp *PrettyPrint) Catalog(cat *catalog.Catalog) {
	pp.Tabs(cat)
	for _, s := range cat.Sections() {
		pp.Section(cat, s)
	}
}

// Problems prints one catalog problem per line.
func (pp *PrettyPrint) Problems(err error) {
	if err == nil {
		g := color.New(color.FgGreen)
		_, _ = g.Fprintln(pp.out(), "catalog ok")
		return
	}
	r := color.New(color.FgRed)
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = r.Fprintf(pp.out(), "✗ %s\n", line)
	}
}

func (pp *PrettyPrint) row(tbl *uitable.Table, lead, id, title string) {
	if !pp.ShowID {
		tbl.AddRow(lead, title)
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tbl.AddRow(lead, y.Sprint(id), title)
}
