package recency

import "slices"

// MaxHistoryItems is the default capacity of the recency log.
const MaxHistoryItems = 10

// HistoryEntry records the most recent visit to a path.
type HistoryEntry struct {
	Path      string `json:"path"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// Visit returns a new log with path moved (or added) to the front with
// timestamp ts, truncated to max entries. The input slice is not modified.
//
// The order of the three steps matters: removing the old occurrence first
// keeps paths unique, and truncating from the tail evicts the entries that
// were visited least recently.
func Visit(log []HistoryEntry, path string, ts int64, max int) []HistoryEntry {
	if max <= 0 {
		max = MaxHistoryItems
	}

	// remove
	next := make([]HistoryEntry, 0, len(log)+1)
	for _, e := range log {
		if e.Path != path {
			next = append(next, e)
		}
	}

	// prepend
	next = slices.Insert(next, 0, HistoryEntry{Path: path, Timestamp: ts})

	// truncate
	if len(next) > max {
		next = next[:max]
	}
	return next
}

// Normalize restores the log invariants on data from outside the process:
// later duplicates of a path are dropped and the log is cut to max entries.
func Normalize(log []HistoryEntry, max int) []HistoryEntry {
	if max <= 0 {
		max = MaxHistoryItems
	}

	seen := make(map[string]struct{}, len(log))
	out := make([]HistoryEntry, 0, min(len(log), max))
	for _, e := range log {
		if _, dup := seen[e.Path]; dup {
			continue
		}
		seen[e.Path] = struct{}{}
		out = append(out, e)
		if len(out) == max {
			break
		}
	}
	return out
}

// Paths projects the path out of each entry, keeping order.
func Paths(log []HistoryEntry) []string {
	paths := make([]string, len(log))
	for i, e := range log {
		paths[i] = e.Path
	}
	return paths
}
