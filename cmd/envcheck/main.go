// Command envcheck loads env files and verifies that required variables are set.
//
//	envcheck -f .env -f .env.local DATABASE_URL API_KEY
//	envcheck --schema env.schema.yaml --dump --redact API_KEY
//	envcheck --allow-missing --list APP_
//
// Exit status is 0 when every required variable is set, 1 when loading or
// validation fails, and 2 on bad usage.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
	"github.com/spf13/pflag"

	"github.com/Azhovan/dotenv"
	"github.com/Azhovan/dotenv/envstore"
	"github.com/Azhovan/dotenv/schemafile"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, envstore.OS{}))
}

// store is the environment envcheck loads into and validates against.
type store interface {
	dotenv.Store
	Environ(opts envstore.Options) map[string]string
}

// options holds parsed command line flags.
type options struct {
	files        []string
	allowMissing bool
	override     bool
	schema       string
	dump         bool
	asJSON       bool
	redact       []string
	list         string
	verbose      bool
	names        []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("envcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: envcheck [flags] [NAME...]")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringArrayVarP(&opts.files, "file", "f", nil, "env file to load (repeatable, default "+dotenv.DefaultPath+" when no schema files are given)")
	fs.BoolVar(&opts.allowMissing, "allow-missing", false, "skip env files that do not exist")
	fs.BoolVar(&opts.override, "override", false, "replace variables that are already set")
	fs.StringVarP(&opts.schema, "schema", "s", "", "YAML, JSON or TOML manifest of required variables")
	fs.BoolVar(&opts.dump, "dump", false, "print loaded entries to stdout")
	fs.BoolVar(&opts.asJSON, "json", false, "print dump as JSON")
	fs.StringSliceVar(&opts.redact, "redact", nil, "keys whose values are hidden in the dump, in addition to the schema's secret list")
	fs.StringVar(&opts.list, "list", "", "after loading, print variables whose name starts with `prefix`")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log every key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.names = fs.Args()
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: "envcheck",
		Level:  level,
	})
	return slog.New(handler)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, env store) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := newLogger(stderr, opts.verbose)

	manifest := &schemafile.Manifest{}
	if opts.schema != "" {
		manifest, err = schemafile.Load(opts.schema, schemafile.Options{Required: true})
		if err != nil {
			logger.Error("load schema failed", "err", err)
			return 1
		}
	}

	envFile := dotenv.NewEnvFile(env,
		dotenv.WithLogger(logger),
		dotenv.WithOverride(opts.override),
	)

	var loadOpts []dotenv.LoadOption
	if opts.allowMissing {
		loadOpts = append(loadOpts, dotenv.AllowMissing())
	}

	redact := slices.Concat(opts.redact, manifest.Secret)
	dumpOpts := []dotenv.DumpOption{dotenv.WithRedact(redact...)}
	if opts.asJSON {
		dumpOpts = append(dumpOpts, dotenv.AsJSON())
	}
	if opts.verbose {
		dumpOpts = append(dumpOpts, dotenv.WithSources())
	}

	files := slices.Concat(opts.files, manifest.Files)
	if len(files) == 0 {
		files = []string{dotenv.DefaultPath}
	}
	for _, path := range files {
		report, err := envFile.LoadFileReport(ctx, path, loadOpts...)
		if err != nil {
			logger.Error("load env file failed", "file", path, "err", err)
			return 1
		}
		logger.Info("loaded env file", "file", path, "applied", len(report.Applied()), "kept", len(report.Kept()))

		if opts.dump {
			if err := dotenv.DumpReport(stdout, report, dumpOpts...); err != nil {
				logger.Error("dump failed", "err", err)
				return 1
			}
		}
	}

	if opts.list != "" {
		if err := listVars(stdout, env, opts.list, redact); err != nil {
			logger.Error("list failed", "err", err)
			return 1
		}
	}

	names := uniqueNames(slices.Concat(opts.names, manifest.Required))
	result := dotenv.NewValidator(env).Validate(names...)
	if result.HasErrors() {
		for _, msg := range result.Errors {
			fmt.Fprintln(stderr, msg)
		}
		logger.Error("validation failed", "missing", len(result.Errors), "required", len(names))
		return 1
	}

	logger.Info("all required variables set", "required", len(names))
	return 0
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// listVars prints KEY=value for each variable matching prefix, sorted by name.
func listVars(w io.Writer, env store, prefix string, redact []string) error {
	hidden := make(map[string]bool, len(redact))
	for _, k := range redact {
		hidden[strings.ToLower(k)] = true
	}

	vars := env.Environ(envstore.Options{Prefix: prefix})
	for _, name := range envstore.Names(vars) {
		value := vars[name]
		if hidden[strings.ToLower(name)] {
			value = "***redacted***"
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, value); err != nil {
			return err
		}
	}
	return nil
}
