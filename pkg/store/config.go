package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config interface {
	BasePath() string
	CatalogPath() string
	LogFile() string
	LogLevel() string
	Journal() bool
	Gesture() GestureConfig
}

// GestureConfig holds swipe bounds in gesture units and the size of one
// terminal cell in those units.
type GestureConfig struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
}

// TRAINER_LOG_LEVEL maps to log.level.
var envReplacer = strings.NewReplacer(".", "_")

func setDefaults(v *viper.Viper) {
	v.SetDefault("path", "~/.trainer")
	v.SetDefault("catalog", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.journal", false)
	v.SetDefault("gesture.horizontal", 50)
	v.SetDefault("gesture.vertical", 75)
	v.SetDefault("gesture.cell_width", 8)
	v.SetDefault("gesture.cell_height", 16)
}

// LoadConfig reads .trainer from TRAINER_CONFIG_PATH or the working
// directory. Every key can be overridden with a TRAINER_ environment variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".trainer") // .yaml is implicit
	v.SetEnvPrefix("TRAINER")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if override := os.Getenv("TRAINER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*fileConfig, error) {
	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	catalogPath := v.GetString("catalog")
	if catalogPath != "" {
		if catalogPath, err = homedir.Expand(catalogPath); err != nil {
			return nil, fmt.Errorf("store: expand catalog: %w", err)
		}
	}
	logFile := v.GetString("log.file")
	if logFile == "" {
		logFile = filepath.Join(base, "trainer.log")
	} else if logFile, err = homedir.Expand(logFile); err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &fileConfig{
		Path:    base,
		Catalog: catalogPath,
		Log: logConfig{
			File:    logFile,
			Level:   v.GetString("log.level"),
			Journal: v.GetBool("log.journal"),
		},
		Swipe: GestureConfig{
			Horizontal: v.GetFloat64("gesture.horizontal"),
			Vertical:   v.GetFloat64("gesture.vertical"),
			CellWidth:  v.GetFloat64("gesture.cell_width"),
			CellHeight: v.GetFloat64("gesture.cell_height"),
		},
	}, nil
}

type logConfig struct {
	File    string `json:"file"`
	Level   string `json:"level"`
	Journal bool   `json:"journal"`
}

type fileConfig struct {
	Path    string        `json:"path"`
	Catalog string        `json:"catalog"`
	Log     logConfig     `json:"log"`
	Swipe   GestureConfig `json:"gesture"`
}

func (f *fileConfig) BasePath() string       { return f.Path }
func (f *fileConfig) CatalogPath() string    { return f.Catalog }
func (f *fileConfig) LogFile() string        { return f.Log.File }
func (f *fileConfig) LogLevel() string       { return f.Log.Level }
func (f *fileConfig) Journal() bool          { return f.Log.Journal }
func (f *fileConfig) Gesture() GestureConfig { return f.Swipe }

// WithCatalog returns cfg with its catalog path replaced.
func WithCatalog(cfg Config, path string) Config {
	return catalogOverride{Config: cfg, path: path}
}

type catalogOverride struct {
	Config
	path string
}

func (c catalogOverride) CatalogPath() string { return c.path }
