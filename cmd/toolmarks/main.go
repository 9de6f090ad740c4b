package main

import (
	"os"

	"github.com/runnerr0/toolmarks/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		// go-flags has already printed the error
		os.Exit(1)
	}
}
