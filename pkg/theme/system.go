package theme

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// TerminalPreference asks the terminal for its background colour. It reports
// no preference when stdout is not a terminal.
func TerminalPreference() (bool, bool) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false, false
	}
	return termenv.HasDarkBackground(), true
}

var _ SystemPreference = TerminalPreference
