package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sakima-lc/accounting/pkg/csvio"
	"github.com/sakima-lc/accounting/pkg/importer"
	"github.com/sakima-lc/accounting/pkg/journal"
	"github.com/spf13/cobra"
)

var (
	purchasesOutput string
	scanDownloads   bool
)

// purchasesCmd imports purchase history for COGS tracking.
var purchasesCmd = &cobra.Command{
	Use:   "purchases [file]",
	Short: "Import purchase history for COGS tracking",
	Long: `Import purchase CSV exports into an inventory (COGS) journal.

Each purchase debits inventory and credits the credit card account.
The command recognizes Whatnot order exports, a simple manual
Date/Item/Cost format, and falls back to fuzzy column matching for
other spreadsheets.

With --scan-downloads, the downloads directory is scanned for
purchase-looking CSV files instead of naming one.

Example:
  whatnot-import purchases ~/Downloads/whatnot_orders.csv
  whatnot-import purchases --scan-downloads`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPurchases,
}

func init() {
	purchasesCmd.Flags().StringVar(&purchasesOutput, "output", "", "output journal file (default {journals}/purchases.journal)")
	purchasesCmd.Flags().BoolVar(&scanDownloads, "scan-downloads", false, "scan the downloads directory for purchase CSV files")
}

func runPurchases(cmd *cobra.Command, args []string) {
	_, accounts, resolver := setup()

	var files []string
	switch {
	case scanDownloads:
		var err error
		files, err = resolver.PurchaseDownloads()
		exitOnError(err, "failed to scan downloads directory")
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "No purchase CSV files found in %s\n", resolver.DownloadsDir())
			os.Exit(1)
		}
	case len(args) == 1:
		files = args
	default:
		_ = cmd.Help()
		os.Exit(1)
	}

	explicit := !scanDownloads
	builder := journal.NewBuilder(accounts)

	var entries []journal.Entry
	var total importer.Summary
	var profile importer.Profile
	var fileSummaries []importer.Summary
	var sources []string

	for _, path := range files {
		fmt.Printf("Processing %s...\n", filepath.Base(path))

		file, err := csvio.Read(path)
		if err != nil {
			if explicit {
				exitOnError(err, "failed to read purchase export")
			}
			slog.Error("skipping unreadable file", "file", path, "error", err)
			continue
		}

		fileProfile, err := importer.PurchasesProfile(file)
		if err != nil {
			if explicit {
				exitOnError(err, "failed to detect purchase format")
			}
			slog.Warn("skipping file with unrecognized format", "file", path)
			continue
		}

		fileEntries, summary, err := importer.Run(fileProfile, file, builder)
		if err != nil {
			if explicit {
				exitOnError(err, "failed to import purchases")
			}
			slog.Error("skipping file", "file", path, "error", err)
			continue
		}

		profile = fileProfile
		entries = append(entries, fileEntries...)
		total.Merge(summary)
		fileSummaries = append(fileSummaries, summary)
		sources = append(sources, filepath.Base(path))
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No purchases imported")
		os.Exit(1)
	}

	out := purchasesOutput
	if out == "" {
		out = resolver.JournalPath("purchases.journal")
	}

	exitOnError(resolver.EnsureParentDir(out), "failed to create journals directory")
	writer := importer.NewWriter(profile, strings.Join(sources, ", "), accounts)
	exitOnError(writer.WriteFile(out, entries), "failed to write journal")

	printSummary(total, out)
	for _, summary := range fileSummaries {
		recordRun(resolver, profile.Name, summary, out)
	}
}
