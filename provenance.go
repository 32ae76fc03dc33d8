package dotenv

// Report describes what a load did with each parsed entry.
type Report struct {
	Source  string // Source identifier (e.g., "file:.env", "reader")
	Entries []EntryProvenance
}

// EntryProvenance describes where an entry came from and whether it was written.
type EntryProvenance struct {
	Key     string
	Value   string // Value parsed from the source
	Line    int    // 1-based line in the source
	Source  string // Source identifier, same as Report.Source
	Applied bool   // False when the store already held the key and override was off
}

// Applied returns the keys written to the store, in load order.
func (r *Report) Applied() []string {
	return r.keys(true)
}

// Kept returns the keys skipped because the store already held them.
func (r *Report) Kept() []string {
	return r.keys(false)
}

func (r *Report) keys(applied bool) []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, e := range r.Entries {
		if e.Applied == applied {
			out = append(out, e.Key)
		}
	}
	return out
}
