// Package main is the entry point for the geokrige CLI.
package main

import (
	"os"

	"github.com/jakobetzel/geokrige/cmd/geokrige/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
