package cli

import "io"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable debug logging"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// VisitCommand records one or more visits, in the order given.
type VisitCommand struct {
	Args struct {
		Paths []string `positional-arg-name:"PATH" required:"1"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// RecentCommand lists the recency log, most recent first.
type RecentCommand struct {
	Limit     int  `long:"limit" description:"Maximum entries to show (0 = all)" default:"0"`
	PathsOnly bool `long:"paths" description:"Print bare paths, one per line"`

	globals *GlobalFlags
	version string
}

// FavCommand toggles a favorite.
type FavCommand struct {
	Args struct {
		Path string `positional-arg-name:"PATH" required:"yes"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// FavsCommand lists favorites or checks membership of one path.
type FavsCommand struct {
	Check string `long:"check" description:"Report whether PATH is a favorite" value-name:"PATH"`

	globals *GlobalFlags
	version string
}

// ClearCommand empties the recency log and/or the favorites set.
type ClearCommand struct {
	History   bool `long:"history" description:"Clear the recently visited list"`
	Favorites bool `long:"favorites" description:"Clear all favorites"`
	All       bool `long:"all" description:"Clear both"`
	Force     bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
	in      io.Reader // injectable for testing; nil means os.Stdin
}

// StatusCommand shows backend, counts and in-process metrics.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
