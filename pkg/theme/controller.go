package theme

import (
	"log/slog"
	"sort"
)

// Store persists the dark/light preference.
type Store interface {
	// LoadDark returns the saved preference; ok is false when none exists.
	LoadDark() (dark bool, ok bool, err error)
	SaveDark(dark bool) error
}

// SystemPreference reports the environment's light/dark preference; ok is
// false when it cannot be determined.
type SystemPreference func() (dark bool, ok bool)

// IconPair is the moon/sun toggle rendered in a page header. Exactly one of
// the two icons is visible at any time.
type IconPair struct {
	MoonVisible bool
	SunVisible  bool
}

// Icon names the visible icon.
func (p IconPair) Icon() string {
	if p.SunVisible {
		return "sun"
	}
	return "moon"
}

func (p *IconPair) apply(dark bool) {
	p.MoonVisible = !dark
	p.SunVisible = dark
}

// Controller owns the process-wide theme state and every registered icon pair.
type Controller struct {
	dark   bool
	store  Store
	icons  map[string]*IconPair
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController resolves the initial theme: the persisted value when present,
// otherwise the system preference, otherwise light.
func NewController(store Store, system SystemPreference, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		icons:  make(map[string]*IconPair),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	resolved := false
	if store != nil {
		dark, ok, err := store.LoadDark()
		switch {
		case err != nil:
			c.logger.Warn("theme: load preference", "error", err)
		case ok:
			c.dark, resolved = dark, true
		}
	}
	if !resolved && system != nil {
		if dark, ok := system(); ok {
			c.dark = dark
		}
	}
	return c
}

// IsDark reports the current theme.
func (c *Controller) IsDark() bool { return c.dark }

// SetDark applies the theme to every registered icon pair and persists it.
// The visual state changes even when persisting fails.
func (c *Controller) SetDark(dark bool) error {
	c.apply(dark)
	if c.store == nil {
		return nil
	}
	if err := c.store.SaveDark(dark); err != nil {
		c.logger.Warn("theme: save preference", "dark", dark, "error", err)
		return err
	}
	return nil
}

// Toggle flips and persists the theme.
func (c *Controller) Toggle() error {
	return c.SetDark(!c.dark)
}

// Sync applies a preference that was persisted elsewhere without writing it
// back. It reports whether anything changed.
func (c *Controller) Sync(dark bool) bool {
	if c.dark == dark {
		return false
	}
	c.apply(dark)
	return true
}

// Register returns the icon pair stored under key, creating it in the
// current theme state on first use. Pairs are never pruned.
func (c *Controller) Register(key string) *IconPair {
	if p, ok := c.icons[key]; ok {
		return p
	}
	p := &IconPair{}
	p.apply(c.dark)
	c.icons[key] = p
	return p
}

// Icons returns the registered keys in sorted order.
func (c *Controller) Icons() []string {
	keys := make([]string, 0, len(c.icons))
	for k := range c.icons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Icon returns the pair registered under key.
func (c *Controller) Icon(key string) (*IconPair, bool) {
	p, ok := c.icons[key]
	return p, ok
}

func (c *Controller) apply(dark bool) {
	c.dark = dark
	for _, p := range c.icons {
		p.apply(dark)
	}
}
