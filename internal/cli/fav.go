package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

type jsonMembership struct {
	Path     string `json:"path"`
	Favorite bool   `json:"favorite"`
}

// Execute implements the go-flags Commander interface for FavCommand.
func (c *FavCommand) Execute(args []string) error {
	return withSession(c.globals, c.run)
}

func (c *FavCommand) run(s *session) error {
	added := s.favorites.Toggle(c.Args.Path)

	if wantJSON(c.globals) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonMembership{Path: c.Args.Path, Favorite: added})
	}

	if added {
		fmt.Printf("%s Added %s to favorites\n", starColor.Sprint("*"), pathColor.Sprint(c.Args.Path))
	} else {
		fmt.Printf("Removed %s from favorites\n", pathColor.Sprint(c.Args.Path))
	}
	return nil
}

// Execute implements the go-flags Commander interface for FavsCommand.
func (c *FavsCommand) Execute(args []string) error {
	return withSession(c.globals, c.run)
}

func (c *FavsCommand) run(s *session) error {
	if c.Check != "" {
		return c.printMembership(s)
	}

	members := s.favorites.Members()

	if wantJSON(c.globals) {
		out := map[string]interface{}{
			"count":     len(members),
			"favorites": members,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(members) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}

	fmt.Println(titleColor.Sprintf("Favorites (%d)", len(members)))
	for _, m := range members {
		fmt.Printf("%s %s\n", starColor.Sprint("*"), pathColor.Sprint(m))
	}
	return nil
}

func (c *FavsCommand) printMembership(s *session) error {
	member := s.favorites.IsMember(c.Check)

	if wantJSON(c.globals) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonMembership{Path: c.Check, Favorite: member})
	}

	if member {
		fmt.Printf("%s is a favorite\n", c.Check)
	} else {
		fmt.Printf("%s is not a favorite\n", c.Check)
	}
	return nil
}
