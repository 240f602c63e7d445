package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakima-lc/accounting/pkg/csvio"
	"github.com/sakima-lc/accounting/pkg/importer"
	"github.com/sakima-lc/accounting/pkg/journal"
	"github.com/spf13/cobra"
)

var earningsOutput string

// earningsCmd imports one or more weekly earnings statements.
var earningsCmd = &cobra.Command{
	Use:   "earnings [file]",
	Short: "Import Whatnot weekly earnings statements",
	Long: `Import weekly earnings CSV statements into a single hledger journal.

With no argument, every *_earnings.csv file in the import directory is
processed and merged into one journal. Earnings rows carry the full fee
breakdown, so each sale is split into gross revenue, platform fees, and
the net pending amount.

Example:
  whatnot-import earnings
  whatnot-import earnings import/2025-11-03_earnings.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEarnings,
}

func init() {
	earningsCmd.Flags().StringVar(&earningsOutput, "output", "", "output journal file (default {journals}/whatnot_earnings.journal)")
}

func runEarnings(cmd *cobra.Command, args []string) {
	_, accounts, resolver := setup()

	explicit := len(args) == 1

	var files []string
	if explicit {
		files = args
	} else {
		var err error
		files, err = resolver.EarningsFiles()
		exitOnError(err, "failed to scan import directory")
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "No *_earnings.csv files found in %s\n", resolver.ImportDir())
			os.Exit(1)
		}
	}

	profile := importer.EarningsProfile()
	builder := journal.NewBuilder(accounts)

	var entries []journal.Entry
	var total importer.Summary
	var fileSummaries []importer.Summary

	for _, path := range files {
		fmt.Printf("Processing %s...\n", filepath.Base(path))

		file, err := csvio.Read(path)
		if err != nil {
			if explicit {
				exitOnError(err, "failed to read earnings statement")
			}
			slog.Error("skipping unreadable file", "file", path, "error", err)
			continue
		}

		fileEntries, summary, err := importer.Run(profile, file, builder)
		if err != nil {
			if explicit {
				exitOnError(err, "failed to import earnings statement")
			}
			slog.Error("skipping file", "file", path, "error", err)
			continue
		}

		entries = append(entries, fileEntries...)
		total.Merge(summary)
		fileSummaries = append(fileSummaries, summary)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No earnings transactions imported")
		os.Exit(1)
	}

	out := earningsOutput
	if out == "" {
		out = resolver.JournalPath("whatnot_earnings.journal")
	}

	source := fmt.Sprintf("%d earnings statement(s)", len(fileSummaries))
	exitOnError(resolver.EnsureParentDir(out), "failed to create journals directory")
	writer := importer.NewWriter(profile, source, accounts)
	exitOnError(writer.WriteFile(out, entries), "failed to write journal")

	printSummary(total, out)
	for _, summary := range fileSummaries {
		recordRun(resolver, profile.Name, summary, out)
	}
}
