package main

import (
	"os"

	"github.com/mrlokans/bookstore/internal/cli"
)

// Version information - set at build time via ldflags
var Version = "dev"

func main() {
	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
