// Package dotenv loads KEY=VALUE env files into the process environment and
// validates that required variables are set.
//
// Quick Start:
//
//	if err := dotenv.Default().Load(ctx, dotenv.AllowMissing()); err != nil {
//	    log.Fatal(err)
//	}
//
//	type Config struct {
//	    DatabaseURL string `conf:"env:DATABASE_URL"`
//	    LogLevel    string `conf:"optional"`
//	}
//
//	if err := dotenv.ValidateFor[Config](dotenv.DefaultValidator()).Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// File format: one assignment per line, `KEY = value`. Keys are letters,
// digits, '_', '.' and '-'. Values are trimmed; a value wrapped in matching
// single or double quotes loses the quotes. Blank lines, comments and any
// other line that is not an assignment are skipped.
//
// Variables that are already set are kept unless WithOverride(true) is given.
//
// See example_test.go for detailed usage.
package dotenv
