package dotenv

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Azhovan/dotenv/internal/normalize"
)

// validKey matches keys that ParseLine accepts.
var validKey = regexp.MustCompile(`^` + keyChars + `+$`)

// Marshal renders entries as env file text, one KEY=value line per entry in
// insertion order. Values containing whitespace or '#', or that would
// otherwise read back as quoted, are wrapped in double quotes.
// Returns ErrUnrepresentable for keys or values ParseLine could not read back
// unchanged: line breaks and leading or trailing whitespace.
func Marshal(entries *Entries) (string, error) {
	var b strings.Builder

	for _, e := range entries.All() {
		line, err := marshalEntry(e.Key, e.Value)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func marshalEntry(key, value string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: invalid key %q", ErrUnrepresentable, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return "", fmt.Errorf("%w: %s contains a line break", ErrUnrepresentable, key)
	}
	if strings.TrimSpace(value) != value {
		return "", fmt.Errorf("%w: %s has leading or trailing whitespace", ErrUnrepresentable, key)
	}

	if normalize.IsQuoted(value) || strings.ContainsAny(value, " \t#") {
		value = `"` + value + `"`
	}
	return key + "=" + value, nil
}

// WriteFile writes entries to path with atomic write semantics.
// The file is created with 0600 permissions, parent directories with 0700.
func WriteFile(entries *Entries, path string) error {
	content, err := Marshal(entries)
	if err != nil {
		return err
	}

	// Create parent directories with 0700 permissions
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0700); mkdirErr != nil {
			return mkdirErr
		}
	}

	// Temp file in the same directory so the rename stays on one filesystem
	tempPath, err := generateTempFileName(path)
	if err != nil {
		return err
	}

	var tempFileCreated bool
	defer func() {
		if tempFileCreated {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, []byte(content), 0600); err != nil {
		return err
	}
	tempFileCreated = true

	// WriteFile honours umask; make the mode explicit
	if err := os.Chmod(tempPath, 0600); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		return err
	}
	tempFileCreated = false

	return nil
}

// generateTempFileName returns targetPath + ".tmp." + 16 random hex characters.
func generateTempFileName(targetPath string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return targetPath + ".tmp." + hex.EncodeToString(randomBytes), nil
}
