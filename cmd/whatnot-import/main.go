// Package main is the entry point for the whatnot-import CLI.
package main

import (
	"os"

	"github.com/sakima-lc/accounting/cmd/whatnot-import/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
