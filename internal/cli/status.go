package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version        string             `json:"version"`
	Backend        string             `json:"backend"`
	HistoryKey     string             `json:"history_key"`
	HistoryCount   int                `json:"history_count"`
	HistoryMax     int                `json:"history_max"`
	FavoritesKey   string             `json:"favorites_key"`
	FavoritesCount int                `json:"favorites_count"`
	Metrics        map[string]float64 `json:"metrics"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	return withSession(c.globals, c.run)
}

func (c *StatusCommand) run(s *session) error {
	values, err := s.metrics.Values()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	out := statusJSON{
		Version:        c.version,
		Backend:        backendName(s.cfg.Storage.Backend),
		HistoryKey:     s.cfg.History.Key,
		HistoryCount:   s.history.Len(),
		HistoryMax:     s.cfg.History.MaxItems,
		FavoritesKey:   s.cfg.Favorites.Key,
		FavoritesCount: s.favorites.Len(),
		Metrics:        values,
	}

	if wantJSON(c.globals) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return printStatusHuman(out)
}

func printStatusHuman(out statusJSON) error {
	fmt.Println(titleColor.Sprint("toolmarks Status"))
	fmt.Println("================")
	fmt.Printf("Version:       %s\n", out.Version)
	fmt.Printf("Backend:       %s\n", out.Backend)
	fmt.Printf("History:       %d/%d (%s)\n", out.HistoryCount, out.HistoryMax, out.HistoryKey)
	fmt.Printf("Favorites:     %d (%s)\n", out.FavoritesCount, out.FavoritesKey)

	if len(out.Metrics) > 0 {
		names := make([]string, 0, len(out.Metrics))
		for name := range out.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println()
		fmt.Println("Metrics:")
		for _, name := range names {
			fmt.Printf("  %-52s %g\n", name, out.Metrics[name])
		}
	}
	return nil
}

func backendName(b string) string {
	if b == "" {
		return "sqlite"
	}
	return b
}
