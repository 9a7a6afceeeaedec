package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/userenv/cmd/userenv/commands"
	"github.com/arthur-debert/userenv/internal/version"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	header := &doc.GenManHeader{
		Title:   "USERENV",
		Section: "1",
		Source:  "userenv " + version.Version,
		Manual:  "userenv manual",
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}
	// One page per command: userenv.1, userenv-set.1, ...
	if err := doc.GenManTree(commands.NewRootCmd(), header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
