// Package theme implements the theme preference commands.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/trainer/pkg/snake"
	"tableflip.dev/trainer/pkg/store"
	"tableflip.dev/trainer/pkg/theme"
)

// Action selects what Theme.Do does.
type Action string

const (
	ActionGet    Action = "get"
	ActionSet    Action = "set"
	ActionToggle Action = "toggle"
)

// ErrBadMode is returned for a mode other than dark or light.
var ErrBadMode = errors.New("theme: mode must be dark or light")

// Theme reads or writes the persisted dark-mode preference. A running UI
// picks the change up through its preference watch.
type Theme struct {
	Prefs  store.Preferences
	Action Action
	// Mode is "dark" or "light" for ActionSet; empty prompts.
	Mode   string
	Output string
	Out    io.Writer
	In     io.Reader

	// prompt is replaced in tests.
	prompt func() (string, error)
}

// ParseMode maps dark/light (and on/off, true/false) to a dark flag.
func ParseMode(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "on", "true":
		return true, nil
	case "light", "off", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrBadMode, s)
}

func modeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// Do performs the action and prints the resulting mode.
func (t *Theme) Do(ctx context.Context) error {
	if t.Prefs == nil {
		p, err := store.Load(nil)
		if err != nil {
			return err
		}
		t.Prefs = p
	}
	ctl := theme.NewController(t.Prefs, theme.TerminalPreference)

	switch t.Action {
	case ActionGet, "":
	case ActionToggle:
		if err := ctl.Toggle(); err != nil {
			return err
		}
	case ActionSet:
		mode := t.Mode
		if mode == "" {
			var err error
			if mode, err = t.ask(ctl.IsDark()); err != nil {
				return err
			}
		}
		dark, err := ParseMode(mode)
		if err != nil {
			return err
		}
		if err := ctl.SetDark(dark); err != nil {
			return err
		}
	default:
		return fmt.Errorf("theme: unknown action %q", t.Action)
	}

	_, persisted, err := t.Prefs.LoadDark()
	if err != nil {
		return err
	}
	return t.print(ctl.IsDark(), persisted)
}

func (t *Theme) ask(current bool) (string, error) {
	if t.prompt != nil {
		return t.prompt()
	}
	cursor := 1
	if current {
		cursor = 0
	}
	mode, err := snake.Select("Theme", []snake.Choice{
		{Name: "dark", Short: "light text on a dark background"},
		{Name: "light", Short: "dark text on a light background"},
	}, cursor, t.In, t.Out)
	if err != nil {
		return "", fmt.Errorf("theme: prompt: %w", err)
	}
	return mode, nil
}

func (t *Theme) print(dark, persisted bool) error {
	out := t.Out
	if out == nil {
		out = color.Output
	}
	if t.Output == "json" {
		b, err := json.Marshal(map[string]any{"mode": modeName(dark), "persisted": persisted})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = bold.Fprint(out, modeName(dark))
	if !persisted {
		_, _ = faint.Fprint(out, " (from terminal)")
	}
	_, _ = fmt.Fprintln(out)
	return nil
}
