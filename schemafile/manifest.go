package schemafile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures manifest loading.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, a missing manifest is an error. Default: false (returns empty manifest).
	Required bool
}

// Manifest lists required variable names and the env files that provide them.
type Manifest struct {
	// Required variable names, in declaration order.
	Required []string `yaml:"required" json:"required" toml:"required"`

	// Secret variable names, whose values are hidden when dumped.
	Secret []string `yaml:"secret" json:"secret" toml:"secret"`

	// Files are env files to load before validation. Relative paths are
	// resolved against the manifest's directory.
	Files []string `yaml:"files" json:"files" toml:"files"`
}

// Load reads and parses the manifest at path.
// Names are trimmed; blank and repeated names are dropped.
func Load(path string, opts Options) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required schema file not found: %s: %w", path, err)
			}
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read schema file %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	var m Manifest
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse YAML file %s: %w", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse JSON file %s: %w", path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: yaml, json, toml)", format)
	}

	m.Required = cleanNames(m.Required)
	m.Secret = cleanNames(m.Secret)
	m.Files = resolveFiles(filepath.Dir(path), cleanNames(m.Files))

	return &m, nil
}

// cleanNames trims names and drops blanks and repeats, keeping first occurrence order.
func cleanNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func resolveFiles(dir string, files []string) []string {
	for i, f := range files {
		if !filepath.IsAbs(f) {
			files[i] = filepath.Join(dir, f)
		}
	}
	return files
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
