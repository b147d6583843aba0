// Package main is the entry point for the promo-boost CLI.
package main

import (
	"os"

	"promo-boost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
