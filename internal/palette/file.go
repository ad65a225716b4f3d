package palette

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huecard/internal/compression"
)

// document is the on-disk palette shape shared by every source format.
type document struct {
	Version int     `json:"version" yaml:"version"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Load reads a palette from a JSON or YAML file. Files may carry an
// additional .xz, .gz or .bz2 compression suffix.
func Load(path string) (*Index, error) {
	data, err := compression.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path)
}

func parse(data []byte, name string) (*Index, error) {
	var doc document
	switch ext := strings.ToLower(filepath.Ext(compression.BaseName(name))); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse palette JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse palette YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported palette format %q (expected .json, .yaml or .yml)", ext)
	}
	idx, err := New(doc.Entries)
	if err != nil {
		return nil, fmt.Errorf("invalid palette %s: %w", name, err)
	}
	return idx, nil
}
