// Package main is the entry point for the turso-sync CLI.
package main

import (
	"os"

	"github.com/sakima-lc/accounting/cmd/turso-sync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
