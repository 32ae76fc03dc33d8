package dotenv

import (
	"strings"
)

// tagName is the struct tag read by ValidateModel and RequiredNames.
const tagName = "conf"

// tagConfig holds parsed directives from a struct field's `conf` tag.
type tagConfig struct {
	env      string // Variable name override (env:VAR_NAME)
	skip     bool   // Field is ignored ("-")
	optional bool   // Field is not required (optional, or required:false)
	secret   bool   // Value is hidden in dumps (secret or secret:true)
}

// parseTag parses a `conf` struct tag into a structured tagConfig.
// Tag format: "directive1:value1,directive2,..."
// Boolean directives can omit `:true` (e.g., "optional" == "optional:true").
func parseTag(tag string) tagConfig {
	cfg := tagConfig{}

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return cfg
	}
	if tag == "-" {
		cfg.skip = true
		return cfg
	}

	for _, directive := range strings.Split(tag, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		name, value, _ := strings.Cut(directive, ":")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		switch name {
		case "env":
			cfg.env = value
		case "optional":
			cfg.optional = parseBool(value, true)
		case "required":
			cfg.optional = !parseBool(value, true)
		case "secret":
			cfg.secret = parseBool(value, true)
		}
	}

	return cfg
}

// parseBool reads a boolean directive value. An empty value means true;
// anything unrecognized falls back to def.
func parseBool(value string, def bool) bool {
	switch value {
	case "", "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}
