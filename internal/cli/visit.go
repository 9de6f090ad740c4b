package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Execute implements the go-flags Commander interface for VisitCommand.
func (c *VisitCommand) Execute(args []string) error {
	if len(c.Args.Paths) == 0 {
		return fmt.Errorf("at least one PATH is required for visit command")
	}
	return withSession(c.globals, c.run)
}

func (c *VisitCommand) run(s *session) error {
	for _, p := range c.Args.Paths {
		s.history.RecordVisit(p)
	}

	if wantJSON(c.globals) {
		out := map[string]interface{}{
			"recorded": c.Args.Paths,
			"recent":   s.history.RecentPaths(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, p := range c.Args.Paths {
		fmt.Printf("Recorded visit to %s\n", pathColor.Sprint(p))
	}
	return nil
}
