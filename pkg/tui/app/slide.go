package teaui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/trainer/pkg/nav"
)

const (
	slideFrames     = 4
	slideFrameDelay = 25 * time.Millisecond
)

// slide moves the outgoing frame off screen while the incoming page takes
// its place. Forward transitions push left; backward ones pull right.
type slide struct {
	seq     int
	from    string
	forward bool
	frame   int
}

type slideFrameMsg struct {
	seq int
}

func slideTick(seq int) tea.Cmd {
	return tea.Tick(slideFrameDelay, func(time.Time) tea.Msg {
		return slideFrameMsg{seq: seq}
	})
}

func (m *Model) startSlide(before string, tr nav.Transition) tea.Cmd {
	if !m.motion || before == "" || tr.From == tr.To || tr.Kind == nav.KindTab {
		m.slide = nil
		return nil
	}
	m.slideSeq++
	m.slide = &slide{seq: m.slideSeq, from: before, forward: tr.Direction == nav.Forward}
	return slideTick(m.slideSeq)
}

func (m *Model) advanceSlide(msg slideFrameMsg) tea.Cmd {
	if m.slide == nil || msg.seq != m.slide.seq {
		return nil
	}
	m.slide.frame++
	if m.slide.frame >= slideFrames {
		m.slide = nil
		return nil
	}
	return slideTick(msg.seq)
}

// compose renders one frame of the slide with to as the incoming page.
func (s *slide) compose(to string, width int) string {
	if width <= 0 {
		return to
	}
	shift := width * (s.frame + 1) / (slideFrames + 1)
	fromLines := strings.Split(s.from, "\n")
	toLines := strings.Split(to, "\n")

	out := make([]string, len(toLines))
	for i, t := range toLines {
		f := ""
		if i < len(fromLines) {
			f = fromLines[i]
		}
		f = padLine(f, width)
		t = padLine(t, width)
		if s.forward {
			out[i] = ansi.Cut(f, shift, width) + ansi.Cut(t, 0, shift)
		} else {
			out[i] = ansi.Cut(t, width-shift, width) + ansi.Cut(f, 0, width-shift)
		}
	}
	return strings.Join(out, "\n")
}

func padLine(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
