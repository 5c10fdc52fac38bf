// Package main is the entry point for the logaudit CLI.
package main

import (
	"os"

	"github.com/watchfire-io/logaudit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
