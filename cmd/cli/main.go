// Package main is the entry point for the databricks-cost CLI.
package main

import (
	"os"

	"databricks-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
