package domain

// HistoryEntry is the record of one stopped session. It is never mutated.
type HistoryEntry struct {
	Color    string
	Duration int
	Name     string
}

// History is the append-only list of stopped sessions, oldest first
type History struct {
	entries []HistoryEntry
	version uint64
}

// Append adds an entry to the end of the history
func (h *History) Append(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
	h.version++
}

// Entries returns a copy of the entries in insertion order
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Version increases on every Append. Projections of the history can be
// cached against it.
func (h *History) Version() uint64 {
	return h.version
}

// Categories holds the history partitioned by band
type Categories struct {
	Good    []HistoryEntry
	Great   []HistoryEntry
	Okay    []HistoryEntry
	TooMuch []HistoryEntry
}

// Categorize partitions entries into the four band buckets, keeping insertion
// order within each bucket
func Categorize(entries []HistoryEntry) Categories {
	var c Categories
	for _, e := range entries {
		switch BandFor(e.Duration) {
		case BandOkay:
			c.Okay = append(c.Okay, e)
		case BandGood:
			c.Good = append(c.Good, e)
		case BandGreat:
			c.Great = append(c.Great, e)
		case BandTooMuch:
			c.TooMuch = append(c.TooMuch, e)
		}
	}
	return c
}

// Bucket returns the entries of a single band
func (c Categories) Bucket(b Band) []HistoryEntry {
	switch b {
	case BandGood:
		return c.Good
	case BandGreat:
		return c.Great
	case BandTooMuch:
		return c.TooMuch
	}
	return c.Okay
}
