package normalize

import (
	"testing"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain value",
			input:    "bar",
			expected: "bar",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Buzz21 3   ",
			expected: "Buzz21 3",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "double quoted",
			input:    `"quoted"`,
			expected: "quoted",
		},
		{
			name:     "single quoted keeps equals signs",
			input:    `'abs8dsw=='`,
			expected: "abs8dsw==",
		},
		{
			name:     "quoted interior trimmed",
			input:    `"  padded  "`,
			expected: "padded",
		},
		{
			name:     "mismatched quotes left alone",
			input:    `"half'`,
			expected: `"half'`,
		},
		{
			name:     "lone quote left alone",
			input:    `"`,
			expected: `"`,
		},
		{
			name:     "only one pair removed",
			input:    `""nested""`,
			expected: `"nested"`,
		},
		{
			name:     "empty quotes",
			input:    `''`,
			expected: "",
		},
		{
			name:     "unquoted value keeps inner quotes",
			input:    `say "hi"!`,
			expected: `say "hi"!`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Value(tt.input)
			if result != tt.expected {
				t.Errorf("Value(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValue_NewlineInQuotedValue(t *testing.T) {
	if got := value("\"a\nb\"", "\r\n"); got != "a\r\nb" {
		t.Errorf("value() = %q, want %q", got, "a\r\nb")
	}

	// Unquoted values are not rewritten.
	if got := value("a\nb", "\r\n"); got != "a\nb" {
		t.Errorf("value() = %q, want %q", got, "a\nb")
	}
}

func TestHostLineTerminator(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
	}{
		{goos: "windows", expected: "\r\n"},
		{goos: "linux", expected: "\n"},
		{goos: "darwin", expected: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := hostLineTerminator(tt.goos); got != tt.expected {
				t.Errorf("hostLineTerminator(%q) = %q, want %q", tt.goos, got, tt.expected)
			}
		})
	}
}

func TestIsQuoted(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: `"x"`, expected: true},
		{input: `'x'`, expected: true},
		{input: `""`, expected: true},
		{input: `"`, expected: false},
		{input: `'x"`, expected: false},
		{input: `x`, expected: false},
		{input: ``, expected: false},
	}

	for _, tt := range tests {
		if got := IsQuoted(tt.input); got != tt.expected {
			t.Errorf("IsQuoted(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "", expected: true},
		{input: "   ", expected: true},
		{input: "\t\r\n", expected: true},
		{input: " x ", expected: false},
		{input: "VALUE", expected: false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key("  FOO.bar-baz \t"); got != "FOO.bar-baz" {
		t.Errorf("Key() = %q, want %q", got, "FOO.bar-baz")
	}
}
