// Package envstore provides environment variable stores for dotenv.
//
// OS wraps the process environment. Map is an in-memory substitute for tests
// and for callers that want to parse without touching process state.
//
// Example:
//
//	store := envstore.NewMap(nil)
//	envFile := dotenv.NewEnvFile(store)
//	err := envFile.LoadFile(ctx, ".env")
package envstore
