package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRAINER_CONFIG_PATH", dir)
	t.Setenv("TRAINER_PATH", dir)
	t.Chdir(dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != dir {
		t.Fatalf("base path = %q", cfg.BasePath())
	}
	if cfg.LogFile() != filepath.Join(dir, "trainer.log") {
		t.Fatalf("log file = %q", cfg.LogFile())
	}
	if cfg.LogLevel() != "info" || cfg.Journal() || cfg.CatalogPath() != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	g := cfg.Gesture()
	if g.Horizontal != 50 || g.Vertical != 75 || g.CellWidth != 8 || g.CellHeight != 16 {
		t.Fatalf("gesture defaults = %+v", g)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := "path: " + dir + "\nlog:\n  level: debug\ngesture:\n  horizontal: 30\n"
	if err := os.WriteFile(filepath.Join(dir, ".trainer.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRAINER_CONFIG_PATH", dir)
	t.Setenv("TRAINER_LOG_JOURNAL", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel() != "debug" || !cfg.Journal() {
		t.Fatalf("log settings = %q, %v", cfg.LogLevel(), cfg.Journal())
	}
	if cfg.Gesture().Horizontal != 30 || cfg.Gesture().Vertical != 75 {
		t.Fatalf("gesture = %+v", cfg.Gesture())
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TRAINER_CONFIG_PATH", t.TempDir())
	t.Setenv("TRAINER_PATH", "~/prefs")
	t.Setenv("TRAINER_CATALOG", "~/catalog.yaml")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != filepath.Join(home, "prefs") {
		t.Fatalf("base path = %q", cfg.BasePath())
	}
	if cfg.CatalogPath() != filepath.Join(home, "catalog.yaml") {
		t.Fatalf("catalog = %q", cfg.CatalogPath())
	}
}

func TestWithCatalog(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRAINER_PATH", t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	over := WithCatalog(cfg, "week.toml")
	if over.CatalogPath() != "week.toml" || over.BasePath() != cfg.BasePath() {
		t.Fatalf("override = %q %q", over.CatalogPath(), over.BasePath())
	}
}
