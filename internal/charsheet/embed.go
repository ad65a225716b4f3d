package charsheet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huecard/internal/compression"
)

// The embedded dataset covers the stock character-creation charts for
// every race and gender combination.
//
//go:embed data/sheets.json.xz
var embeddedData []byte

type document struct {
	Version int     `json:"version" yaml:"version"`
	Sheets  []Sheet `json:"sheets" yaml:"sheets"`
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the library built from the embedded dataset. The
// library is built once and shared between callers.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		data, err := compression.Decompress(embeddedData, "sheets.json.xz")
		if err != nil {
			defaultErr = err
			return
		}
		defaultLib, defaultErr = parse(data, "sheets.json")
	})
	return defaultLib, defaultErr
}

// Load reads a sheet library from a JSON or YAML file. Files may carry
// an additional .xz, .gz or .bz2 compression suffix.
func Load(path string) (*Library, error) {
	data, err := compression.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, compression.BaseName(path))
}

// parse decodes an already-inflated dataset named by its format
// extension.
func parse(data []byte, name string) (*Library, error) {
	var doc document
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse sheet JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse sheet YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported sheet format %q (expected .json, .yaml or .yml)", ext)
	}
	lib, err := NewLibrary(doc.Sheets)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet dataset %s: %w", name, err)
	}
	return lib, nil
}
