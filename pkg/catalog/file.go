package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"sigs.k8s.io/yaml"
)

//go:embed default.yaml
var defaultCatalog []byte

// File is the on-disk catalog schema. YAML and JSON are decoded through the
// json tags, TOML through the toml tags.
type File struct {
	Home     string            `json:"home" toml:"home"`
	Tabs     []TabFile         `json:"tabs" toml:"tabs"`
	Sections []SectionFile     `json:"sections" toml:"sections"`
	Reserved map[string]string `json:"reserved,omitempty" toml:"reserved"`
}

// TabFile declares a top-level tab.
type TabFile struct {
	ID    string     `json:"id" toml:"id"`
	Title string     `json:"title" toml:"title"`
	Body  string     `json:"body,omitempty" toml:"body"`
	Links []LinkFile `json:"links,omitempty" toml:"links"`
}

// LinkFile declares a clickable target on a tab.
type LinkFile struct {
	Target string `json:"target" toml:"target"`
	Title  string `json:"title" toml:"title"`
}

// SectionFile declares a section and its ordered detail pages.
type SectionFile struct {
	ID    string     `json:"id" toml:"id"`
	Title string     `json:"title" toml:"title"`
	Body  string     `json:"body,omitempty" toml:"body"`
	Pages []PageFile `json:"pages" toml:"pages"`
}

// PageFile declares a detail page.
type PageFile struct {
	ID    string `json:"id" toml:"id"`
	Title string `json:"title" toml:"title"`
	Body  string `json:"body,omitempty" toml:"body"`
}

// Format selects the decoder for catalog data.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatForPath picks a format from the file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Decode parses raw catalog data.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("catalog: decode toml: %w", err)
		}
	default:
		// JSON is a subset of YAML.
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("catalog: decode %s: %w", format, err)
		}
	}
	return f, nil
}

// Load reads and builds the catalog at path. An empty path yields Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	f, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}
	return New(f)
}

// Default builds the embedded catalog.
func Default() (*Catalog, error) {
	f, err := Decode(defaultCatalog, FormatYAML)
	if err != nil {
		return nil, err
	}
	return New(f)
}
