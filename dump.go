package dotenv

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// redacted replaces the value of keys passed to WithRedact.
const redacted = "***redacted***"

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for DumpReport.
type dumpConfig struct {
	withSources bool            // Include source, line and status for each entry
	asJSON      bool            // Output as JSON instead of text format
	indent      string          // Indentation for JSON output (default: "  ")
	redact      map[string]bool // Keys whose values are hidden
}

// WithSources includes source attribution for each entry in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs the report as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// WithRedact hides the values of the given keys as "***redacted***".
// Matching is case-insensitive.
func WithRedact(keys ...string) DumpOption {
	return func(cfg *dumpConfig) {
		for _, k := range keys {
			cfg.redact[strings.ToLower(k)] = true
		}
	}
}

// DumpReport writes a human-readable representation of a load report.
// Returns an error if writing to the writer fails.
func DumpReport(w io.Writer, r *Report, opts ...DumpOption) error {
	if r == nil {
		return fmt.Errorf("report is nil")
	}

	config := dumpConfig{
		indent: "  ",
		redact: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&config)
	}

	if config.asJSON {
		return dumpAsJSON(w, r, config)
	}
	return dumpAsText(w, r, config)
}

// dumpAsText outputs one KEY="value" line per entry.
func dumpAsText(w io.Writer, r *Report, config dumpConfig) error {
	for _, e := range r.Entries {
		line := fmt.Sprintf("%s=%q", e.Key, displayValue(e, config))
		if config.withSources {
			line += fmt.Sprintf(" (source: %s:%d, %s)", e.Source, e.Line, status(e))
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	return nil
}

// jsonEntry is the JSON form of an entry dumped WithSources.
type jsonEntry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
	Line   int    `json:"line"`
	Status string `json:"status"`
}

// dumpAsJSON outputs a key/value object, or an ordered entry list WithSources.
func dumpAsJSON(w io.Writer, r *Report, config dumpConfig) error {
	var result any
	if config.withSources {
		list := make([]jsonEntry, 0, len(r.Entries))
		for _, e := range r.Entries {
			list = append(list, jsonEntry{
				Key:    e.Key,
				Value:  displayValue(e, config),
				Source: e.Source,
				Line:   e.Line,
				Status: status(e),
			})
		}
		result = list
	} else {
		values := make(map[string]string, len(r.Entries))
		for _, e := range r.Entries {
			values[e.Key] = displayValue(e, config)
		}
		result = values
	}

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(result, "", config.indent)
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func displayValue(e EntryProvenance, config dumpConfig) string {
	if config.redact[strings.ToLower(e.Key)] {
		return redacted
	}
	return e.Value
}

func status(e EntryProvenance) string {
	if e.Applied {
		return "applied"
	}
	return "kept existing"
}
