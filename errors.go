package dotenv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceNotFound is returned when an env file does not exist and
	// AllowMissing was not given.
	ErrSourceNotFound = errors.New("dotenv: env file not found")

	// ErrUnrepresentable is returned by Marshal for values the parser
	// could not read back unchanged.
	ErrUnrepresentable = errors.New("dotenv: value cannot be written to an env file")
)

// Error codes for validation failures.
const (
	ErrCodeMissing = "missing"
	ErrCodeBlank   = "blank"
)

// ValidationError aggregates missing variable failures.
type ValidationError struct {
	FieldErrors []FieldError
}

// Error formats validation errors as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "env validation failed: no errors"
	}

	var b strings.Builder
	if len(e.FieldErrors) == 1 {
		b.WriteString("env validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "env validation failed: %d errors\n", len(e.FieldErrors))
	}

	for _, fe := range e.FieldErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", fe.Name, fe.Code, fe.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FieldError represents a single required variable failure.
type FieldError struct {
	Name    string // Variable name (e.g., "DATABASE_URL")
	Code    string // Error code ("missing" or "blank")
	Message string // Human-readable description
}

// missingMessage is the per-variable message reported by Validate.
func missingMessage(name string) string {
	return fmt.Sprintf("Missing environment variable definition for '%s'.", name)
}
