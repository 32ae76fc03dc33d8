package dotenv

// Store is the environment variable namespace that env files are loaded into
// and that validation reads from. envstore.OS wraps the process environment;
// envstore.Map is an in-memory substitute.
type Store interface {
	// Get returns the value of name and whether it is set.
	Get(name string) (string, bool)

	// Set writes name when it is unset. When name is already set the write
	// only happens if override is true.
	Set(name, value string, override bool) error
}

// Entry is one parsed assignment.
type Entry struct {
	Key   string
	Value string
	Line  int // 1-based line number in the source; 0 if unknown
}

// Entries is an insertion-ordered set of parsed assignments.
// A repeated key keeps its first position and takes the last value.
type Entries struct {
	index map[string]int
	items []Entry
}

// NewEntries creates an empty set.
func NewEntries() *Entries {
	return &Entries{index: make(map[string]int)}
}

// Set inserts or replaces the entry for e.Key.
func (s *Entries) Set(e Entry) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[e.Key]; ok {
		s.items[i] = e
		return
	}
	s.index[e.Key] = len(s.items)
	s.items = append(s.items, e)
}

// Get returns the value for key.
func (s *Entries) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.items[i].Value, true
}

// Len returns the number of distinct keys.
func (s *Entries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Keys returns the keys in insertion order.
func (s *Entries) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.items))
	for i, e := range s.items {
		out[i] = e.Key
	}
	return out
}

// All returns the entries in insertion order.
func (s *Entries) All() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.items))
	copy(out, s.items)
	return out
}

// Map returns the entries as a plain map.
func (s *Entries) Map() map[string]string {
	out := make(map[string]string, s.Len())
	if s == nil {
		return out
	}
	for _, e := range s.items {
		out[e.Key] = e.Value
	}
	return out
}
