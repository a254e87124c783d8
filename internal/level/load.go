// internal/level/load.go
package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a level file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported level file extension %q", filepath.Ext(path))
}

// Load reads a level file in YAML or JSON.
func Load(path string) (*Data, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	return Parse(raw, format)
}

// Parse decodes level data already in memory.
func Parse(raw []byte, format Format) (*Data, error) {
	var data Data
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parsing level YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parsing level JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown level format %q", format)
	}
	return &data, nil
}
