// Package main is the entry point for the plan-migrate CLI.
package main

import (
	"os"

	"plan-migrate/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
