package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DarkModeKey holds the persisted theme preference.
const DarkModeKey = "darkMode"

// Preferences is a small key/value store of user settings.
type Preferences interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Keys(ctx context.Context) []string
	LoadDark() (bool, bool, error)
	SaveDark(dark bool) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load opens the preference store under the configured base path.
func Load(cfg Config) (Preferences, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath())
}

// Open opens a preference store rooted at basePath.
func Open(basePath string) (Preferences, error) {
	if basePath == "" {
		return nil, errors.New("store: base path is empty")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &prefs{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	}), basePath: basePath}, nil
}

type prefs struct {
	d        *diskv.Diskv
	basePath string
}

func (p *prefs) Get(key string) (string, bool, error) {
	if !p.d.Has(key) {
		return "", false, nil
	}
	// Another process may have written the key, so bypass the cache.
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return strings.TrimSpace(string(val)), true, nil
}

func (p *prefs) Set(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *prefs) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if isLogFile(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LoadDark reads the theme preference. A value that does not parse as a
// boolean is treated as absent.
func (p *prefs) LoadDark() (bool, bool, error) {
	val, ok, err := p.Get(DarkModeKey)
	if err != nil || !ok {
		return false, false, err
	}
	dark, perr := strconv.ParseBool(val)
	if perr != nil {
		return false, false, nil
	}
	return dark, true, nil
}

func (p *prefs) SaveDark(dark bool) error {
	return p.Set(DarkModeKey, strconv.FormatBool(dark))
}

func isLogFile(key string) bool {
	return strings.HasSuffix(key, ".log")
}
