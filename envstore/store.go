package envstore

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Options filters the variables returned by Environ.
type Options struct {
	// Prefix keeps only variables starting with prefix. The prefix is kept in
	// the returned names. Empty = all vars.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	// When false, APP_ matches app_, App_, etc.
	CaseSensitive bool
}

func (o Options) match(name string) bool {
	if o.Prefix == "" {
		return true
	}
	if o.CaseSensitive {
		return strings.HasPrefix(name, o.Prefix)
	}
	return strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(o.Prefix))
}

// OS reads and writes the process environment.
type OS struct{}

// Get returns the variable's value and whether it is set.
func (OS) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set writes name when it is unset, or when override is true.
func (OS) Set(name, value string, override bool) error {
	if _, ok := os.LookupEnv(name); ok && !override {
		return nil
	}
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}

// Environ returns the process variables accepted by opts.
func (OS) Environ(opts Options) map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || name == "" {
			continue
		}
		if !opts.match(name) {
			continue
		}
		result[name] = value
	}

	return result
}

// Map is an in-memory store. The zero value is ready to use.
// Thread-safe.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap creates a Map holding a copy of seed.
func NewMap(seed map[string]string) *Map {
	m := &Map{vars: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.vars[k] = v
	}
	return m
}

// Get returns the variable's value and whether it is set.
func (m *Map) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[name]
	return v, ok
}

// Set writes name when it is unset, or when override is true.
func (m *Map) Set(name, value string, override bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	if _, ok := m.vars[name]; ok && !override {
		return nil
	}
	m.vars[name] = value
	return nil
}

// Len returns the number of variables held.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vars)
}

// Environ returns a copy of the variables accepted by opts.
func (m *Map) Environ(opts Options) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string)
	for k, v := range m.vars {
		if opts.match(k) {
			result[k] = v
		}
	}
	return result
}

// Names returns the keys of vars in sorted order.
func Names(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
