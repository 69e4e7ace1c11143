// Package main is the entry point for the fincalc CLI.
package main

import (
	"os"

	"fincalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
