// Package logging builds the process logger. The terminal belongs to the
// TUI, so records go to a file and, optionally, the systemd journal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects where records go.
type Options struct {
	File    string
	Level   string
	Journal bool
}

// Level is shared by every logger built here so it can be changed at runtime.
var Level = new(slog.LevelVar)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: level %q: %w", s, err)
	}
	return l, nil
}

// New builds a logger tagged with a fresh session id. The returned closer
// releases the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	Level.Set(lvl)

	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	var fileHandler slog.Handler
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: ensure dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		closer = f
		fileHandler = slog.NewTextHandler(f, &slog.HandlerOptions{Level: Level})
		handlers = append(handlers, fileHandler)
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level:        Level,
			ReplaceGroup: toJournalKey,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if fileHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = fileHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		return Discard(), closer, nil
	}
	logger := slog.New(slogmulti.Fanout(handlers...)).With("session", uuid.NewString())
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
