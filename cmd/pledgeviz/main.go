// Package main provides the entry point for the pledgeviz CLI tool.
package main

import (
	"fmt"
	"os"

	"pledgeviz/cmd/pledgeviz/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
