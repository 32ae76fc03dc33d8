package normalize

import (
	"runtime"
	"strings"
	"unicode"
)

// LineTerminator is the host line terminator substituted for newlines inside quoted values.
var LineTerminator = hostLineTerminator(runtime.GOOS)

func hostLineTerminator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Key trims surrounding whitespace from a parsed key.
func Key(raw string) string {
	return strings.TrimSpace(raw)
}

// Value normalizes the raw right-hand side of an assignment.
// Surrounding whitespace is trimmed. A value wrapped in one matching pair of
// single or double quotes loses the quotes, is trimmed again and has every
// newline replaced by LineTerminator. Unquoted values are returned as-is.
// Examples:
//   - "  bar  " → "bar"
//   - `"quoted"` → "quoted"
//   - `' abs8dsw== '` → "abs8dsw=="
//   - `"half` → `"half`
func Value(raw string) string {
	return value(raw, LineTerminator)
}

func value(raw, terminator string) string {
	v := strings.TrimSpace(raw)
	if !IsQuoted(v) {
		return v
	}

	v = strings.TrimSpace(v[1 : len(v)-1])
	return strings.ReplaceAll(v, "\n", terminator)
}

// IsQuoted reports whether s starts and ends with the same quote character.
// A lone quote character is not a quoted value.
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '\'')
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
