package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const goodCatalog = `
tabs:
  - id: page-home
    title: Home
sections:
  - id: page-monday
    title: Monday
    pages:
      - id: page-monday-ex1
        title: Bench
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Path: writeCatalog(t, goodCatalog), Output: "json", Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got listingJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if got.Home != "page-home" || len(got.Sections) != 1 || got.Sections[0].Pages[0].Title != "Bench" {
		t.Fatalf("unexpected listing %+v", got)
	}
}

func TestCheckClean(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	c := &Check{Path: writeCatalog(t, goodCatalog), Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(buf.String(), "catalog ok") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
