package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestComposeCenters(t *testing.T) {
	bg := "......\n......\n......"
	got := Compose(bg, 6, 3, "XX", Centered)
	want := "......\n..XX..\n......"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestComposeCorners(t *testing.T) {
	bg := "....\n...."
	got := Compose(bg, 4, 2, "X", Placement{Horizontal: lipgloss.Right, Vertical: lipgloss.Bottom, MarginX: 1})
	want := "....\n..X."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got = Compose(bg, 4, 2, "X", Placement{Horizontal: lipgloss.Left, Vertical: lipgloss.Top})
	if got != "X...\n...." {
		t.Fatalf("got %q", got)
	}
}

func TestComposePadsShortBackground(t *testing.T) {
	got := Compose("ab", 3, 2, "", Placement{})
	if got != "ab \n   " {
		t.Fatalf("got %q", got)
	}
}

func TestComposeClipsOversizedForeground(t *testing.T) {
	got := Compose("...\n...", 3, 2, "XXXXX\nYYYYY\nZZZZZ", Centered)
	if got != "XXX\nYYY" {
		t.Fatalf("got %q", got)
	}
}
