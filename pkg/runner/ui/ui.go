package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/logging"
	"tableflip.dev/trainer/pkg/store"
	"tableflip.dev/trainer/pkg/theme"
	teaui "tableflip.dev/trainer/pkg/tui/app"
)

// ErrNoTerminal is returned when the UI is started without a TTY.
var ErrNoTerminal = errors.New("ui: stdin and stdout must be a terminal")

// UI runs the full-screen page viewer.
type UI struct {
	Config store.Config
	Open   string
	Motion bool
}

// Do loads the catalog and preferences, then blocks in the TUI.
func (u *UI) Do(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return ErrNoTerminal
	}
	cfg := u.Config
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return err
		}
	}

	logger, closer, err := logging.New(logging.Options{
		File:    cfg.LogFile(),
		Level:   cfg.LogLevel(),
		Journal: cfg.Journal(),
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := catalog.Load(cfg.CatalogPath())
	if err != nil {
		return err
	}
	if u.Open != "" {
		if _, err := cat.Resolve(u.Open); err != nil {
			return err
		}
	}
	if err := cat.Check(); err != nil {
		logger.Warn("ui: catalog problems", "error", err)
	}

	prefs, err := store.Load(cfg)
	if err != nil {
		return err
	}
	th := theme.NewController(prefs, theme.TerminalPreference, theme.WithLogger(logger))

	logger.Info("ui: start", "catalog", cfg.CatalogPath(), "dark", th.IsDark(), "open", u.Open)
	err = teaui.Run(ctx, teaui.Options{
		Catalog:     cat,
		Theme:       th,
		Preferences: prefs,
		Gesture:     cfg.Gesture(),
		Logger:      logger,
		Motion:      u.Motion,
		Open:        u.Open,
	})
	logger.Info("ui: exit", "error", err)
	return err
}
