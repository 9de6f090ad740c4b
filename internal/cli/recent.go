package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

type jsonHistoryEntry struct {
	Path      string `json:"path"`
	Timestamp int64  `json:"timestamp"`
	VisitedAt string `json:"visited_at"`
	Favorite  bool   `json:"favorite"`
}

type jsonRecentOutput struct {
	Count    int                `json:"count"`
	MaxItems int                `json:"max_items"`
	Entries  []jsonHistoryEntry `json:"entries"`
}

// Execute implements the go-flags Commander interface for RecentCommand.
func (c *RecentCommand) Execute(args []string) error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	return withSession(c.globals, c.run)
}

func (c *RecentCommand) run(s *session) error {
	entries := s.history.Snapshot()
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	if wantJSON(c.globals) {
		out := jsonRecentOutput{
			Count:    len(entries),
			MaxItems: s.cfg.History.MaxItems,
			Entries:  make([]jsonHistoryEntry, len(entries)),
		}
		for i, e := range entries {
			out.Entries[i] = jsonHistoryEntry{
				Path:      e.Path,
				Timestamp: e.Timestamp,
				VisitedAt: formatRFC3339Millis(e.Timestamp),
				Favorite:  s.favorites.IsMember(e.Path),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if c.PathsOnly {
		for _, e := range entries {
			fmt.Println(e.Path)
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No recently visited tools.")
		return nil
	}

	fmt.Println(titleColor.Sprintf("Recently visited (%d of %d)", len(entries), s.cfg.History.MaxItems))
	for i, e := range entries {
		star := " "
		if s.favorites.IsMember(e.Path) {
			star = starColor.Sprint("*")
		}
		fmt.Printf("%s %2d. %-40s %s\n", star, i+1, pathColor.Sprint(e.Path), dimColor.Sprint(formatMillis(e.Timestamp)))
	}
	return nil
}
