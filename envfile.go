package dotenv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/Azhovan/dotenv/envstore"
)

// DefaultPath is the env file loaded when no path is given.
const DefaultPath = "./.env"

// Option configures an EnvFile.
type Option func(*EnvFile)

// WithLogger sets the logger used for debug records about each key.
// Default: records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(f *EnvFile) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithOverride controls whether loaded values replace variables that are
// already set. Default: false (the existing value wins).
func WithOverride(override bool) Option {
	return func(f *EnvFile) {
		f.override = override
	}
}

// LoadOption configures a single file load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	allowMissing bool
}

// AllowMissing makes a missing env file a no-op instead of ErrSourceNotFound.
func AllowMissing() LoadOption {
	return func(cfg *loadConfig) {
		cfg.allowMissing = true
	}
}

// EnvFile loads env files into a Store.
// All lines of a source are parsed before the first write, so a read failure
// leaves the store untouched.
type EnvFile struct {
	store    Store
	logger   *slog.Logger
	override bool
}

// NewEnvFile creates an EnvFile writing to store. A nil store means the
// process environment.
func NewEnvFile(store Store, opts ...Option) *EnvFile {
	if store == nil {
		store = envstore.OS{}
	}

	f := &EnvFile{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultEnvFile = sync.OnceValue(func() *EnvFile {
	return NewEnvFile(envstore.OS{})
})

// Default returns the shared EnvFile bound to the process environment.
func Default() *EnvFile {
	return defaultEnvFile()
}

// Load loads DefaultPath.
func (f *EnvFile) Load(ctx context.Context, opts ...LoadOption) error {
	return f.LoadFile(ctx, DefaultPath, opts...)
}

// LoadFile loads the env file at path.
// Returns ErrSourceNotFound if the file does not exist and AllowMissing was not given.
func (f *EnvFile) LoadFile(ctx context.Context, path string, opts ...LoadOption) error {
	_, err := f.LoadFileReport(ctx, path, opts...)
	return err
}

// LoadFileReport is LoadFile returning a report of each key.
func (f *EnvFile) LoadFileReport(ctx context.Context, path string, opts ...LoadOption) (*Report, error) {
	entries, err := ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	if entries.Len() == 0 {
		f.logger.DebugContext(ctx, "env file empty or not found", "path", path)
	}

	return f.Apply(ctx, entries, "file:"+filepath.Base(path))
}

// LoadReader loads an env file from r.
// An empty reader sets nothing and is not an error.
func (f *EnvFile) LoadReader(ctx context.Context, r io.Reader) error {
	entries, err := Parse(r)
	if err != nil {
		return err
	}

	_, err = f.Apply(ctx, entries, "reader")
	return err
}

// Apply writes entries to the store in insertion order.
// source names the origin in the returned report.
func (f *EnvFile) Apply(ctx context.Context, entries *Entries, source string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Source: source}

	for _, e := range entries.All() {
		_, exists := f.store.Get(e.Key)
		applied := !exists || f.override

		if err := f.store.Set(e.Key, e.Value, f.override); err != nil {
			return report, fmt.Errorf("apply %s from %s: %w", e.Key, source, err)
		}

		if applied {
			f.logger.DebugContext(ctx, "env variable set", "key", e.Key, "source", source, "line", e.Line)
		} else {
			f.logger.DebugContext(ctx, "env variable already set, keeping existing value", "key", e.Key, "source", source, "line", e.Line)
		}

		report.Entries = append(report.Entries, EntryProvenance{
			Key:     e.Key,
			Value:   e.Value,
			Line:    e.Line,
			Source:  source,
			Applied: applied,
		})
	}

	return report, nil
}

// Load loads the given env files, in order, into the process environment
// using Default. With no paths, DefaultPath is loaded. opts apply to every file.
//
//	dotenv.Load(ctx, nil)                                          // ./.env, must exist
//	dotenv.Load(ctx, []string{".env", ".env.local"}, dotenv.AllowMissing())
func Load(ctx context.Context, paths []string, opts ...LoadOption) error {
	if len(paths) == 0 {
		paths = []string{DefaultPath}
	}
	for _, path := range paths {
		if err := Default().LoadFile(ctx, path, opts...); err != nil {
			return err
		}
	}
	return nil
}
