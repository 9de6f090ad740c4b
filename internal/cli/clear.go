package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// setInput allows tests to inject the confirmation input.
func (c *ClearCommand) setInput(r io.Reader) {
	c.in = r
}

// Execute implements the go-flags Commander interface for ClearCommand.
func (c *ClearCommand) Execute(args []string) error {
	clearHistory := c.History || c.All
	clearFavorites := c.Favorites || c.All
	if !clearHistory && !clearFavorites {
		return fmt.Errorf("clear requires --history, --favorites or --all")
	}

	if !c.Force {
		if err := c.confirm(clearHistory, clearFavorites); err != nil {
			return err
		}
	}

	return withSession(c.globals, func(s *session) error {
		return c.run(s, clearHistory, clearFavorites)
	})
}

func (c *ClearCommand) confirm(clearHistory, clearFavorites bool) error {
	fmt.Println("⚠ WARNING: This will permanently delete:")
	if clearHistory {
		fmt.Println("  - All recently visited tools")
	}
	if clearFavorites {
		fmt.Println("  - All favorites")
	}
	fmt.Println()
	fmt.Print(`Type "CLEAR" to confirm: `)

	in := c.in
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return fmt.Errorf("aborted: no input received")
	}
	if strings.TrimSpace(scanner.Text()) != "CLEAR" {
		return fmt.Errorf("aborted: confirmation text did not match")
	}
	return nil
}

func (c *ClearCommand) run(s *session, clearHistory, clearFavorites bool) error {
	if clearHistory {
		s.history.Clear()
	}
	if clearFavorites {
		s.favorites.Clear()
	}

	if wantJSON(c.globals) {
		out := map[string]interface{}{
			"history_cleared":   clearHistory,
			"favorites_cleared": clearFavorites,
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	switch {
	case clearHistory && clearFavorites:
		fmt.Println("Cleared recent history and favorites.")
	case clearHistory:
		fmt.Println("Cleared recent history.")
	default:
		fmt.Println("Cleared favorites.")
	}
	return nil
}
