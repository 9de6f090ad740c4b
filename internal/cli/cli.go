package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Visit  *VisitCommand
	Recent *RecentCommand
	Fav    *FavCommand
	Favs   *FavsCommand
	Clear  *ClearCommand
	Status *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "toolmarks"
	parser.LongDescription = "Recently visited and favorite tools for the tool catalog."

	cmds := &commands{
		Visit:  &VisitCommand{globals: &globals, version: version},
		Recent: &RecentCommand{globals: &globals, version: version},
		Fav:    &FavCommand{globals: &globals, version: version},
		Favs:   &FavsCommand{globals: &globals, version: version},
		Clear:  &ClearCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("visit", "Record a visit to a path", "Record a visit to one or more paths, moving each to the front of the recent list.", cmds.Visit)
	parser.AddCommand("recent", "List recently visited paths", "List recently visited paths, most recent first.", cmds.Recent)
	parser.AddCommand("fav", "Toggle a favorite", "Add PATH to favorites, or remove it if it is already a favorite.", cmds.Fav)
	parser.AddCommand("favs", "List favorites", "List favorites, or check whether a single path is a favorite.", cmds.Favs)
	parser.AddCommand("clear", "Clear history and/or favorites", "Clear the recent list and/or favorites. Destructive operation with safety prompt.", cmds.Clear)
	parser.AddCommand("status", "Show storage and counts", "Show the storage backend, item counts and in-process metrics.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the toolmarks CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("toolmarks %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
