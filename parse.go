package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/Azhovan/dotenv/internal/normalize"
)

// maxLineSize bounds a single line of an env file.
const maxLineSize = 1024 * 1024

// keyChars is the character class of a key: letters, combining marks,
// decimal digits, connector punctuation ('_' among them), '.' and '-'.
const keyChars = `[\p{L}\p{Mn}\p{Nd}\p{Pc}.\-]`

// space also covers '\v', NEL and the Unicode separators, the same set
// normalize.IsBlank treats as blank.
const space = `[\s\v\x{85}\p{Z}]`

// assignment matches `KEY = value`.
var assignment = regexp.MustCompile(`(?s)^` + space + `*(` + keyChars + `+)` + space + `*=(.*)$`)

// ParseLine parses a single env file line.
// Blank lines, comments and anything that is not an assignment return ok=false.
func ParseLine(line string) (key, value string, ok bool) {
	if normalize.IsBlank(line) {
		return "", "", false
	}

	m := assignment.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}

	return normalize.Key(m[1]), normalize.Value(m[2]), true
}

// Parse reads an env file from r. Lines that do not parse are skipped.
// A later assignment to the same key replaces the earlier value.
// On a read error no entries are returned.
func Parse(r io.Reader) (*Entries, error) {
	entries := NewEntries()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		key, value, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		entries.Set(Entry{Key: key, Value: value, Line: lineNum})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read env source: %w", err)
	}

	return entries, nil
}

// ParseFile reads and parses the env file at path.
// A missing file returns ErrSourceNotFound unless AllowMissing is given,
// in which case the result is empty.
func ParseFile(path string, opts ...LoadOption) (*Entries, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := openFile(path)
	if err != nil {
		if errors.Is(err, ErrSourceNotFound) && cfg.allowMissing {
			return NewEntries(), nil
		}
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// openFile opens path for reading. Missing files and directories are both
// reported as ErrSourceNotFound.
func openFile(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat env file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", path, err)
	}
	return f, nil
}
