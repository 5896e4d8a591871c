package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml
var defaultCatalog []byte

// Format identifies a content document encoding
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

// FormatFromPath picks the decoder from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported content format %q", filepath.Ext(path))
	}
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalog, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// Load reads, decodes and validates a catalog file
// An empty path loads the embedded catalog
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	cat, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("content loaded", "path", path, "levels", len(cat.Levels), "events", cat.EventCount())
	return cat, nil
}

// Parse decodes and validates a catalog document
func Parse(data []byte, format Format) (*Catalog, error) {
	var cat Catalog

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cat); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cat); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, errors.New("unknown content format")
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}
