package cmd

import (
	"path/filepath"

	"github.com/sakima-lc/accounting/pkg/csvio"
	"github.com/sakima-lc/accounting/pkg/importer"
	"github.com/sakima-lc/accounting/pkg/journal"
	"github.com/spf13/cobra"
)

var ledgerOutput string

// ledgerCmd imports a full transaction ledger export.
var ledgerCmd = &cobra.Command{
	Use:   "ledger <file>",
	Short: "Import a Whatnot transaction ledger export",
	Long: `Import the full transaction ledger CSV export into an hledger journal.

Every row becomes one balanced double-entry transaction: sales and tips
accrue to the pending balance, payouts move pending funds to checking,
and giveaways, refunds, and adjustments hit their expense accounts.

Example:
  whatnot-import ledger ~/Downloads/whatnot_ledger.csv
  whatnot-import ledger export.csv --output journals/ledger.journal`,
	Args: cobra.ExactArgs(1),
	Run:  runLedger,
}

func init() {
	ledgerCmd.Flags().StringVar(&ledgerOutput, "output", "", "output journal file (default {journals}/whatnot_ledger.journal)")
}

func runLedger(cmd *cobra.Command, args []string) {
	_, accounts, resolver := setup()

	path := args[0]
	file, err := csvio.Read(path)
	exitOnError(err, "failed to read ledger export")

	profile := importer.LedgerProfile()
	builder := journal.NewBuilder(accounts)
	entries, summary, err := importer.Run(profile, file, builder)
	exitOnError(err, "failed to import ledger")

	out := ledgerOutput
	if out == "" {
		out = resolver.JournalPath("whatnot_ledger.journal")
	}

	exitOnError(resolver.EnsureParentDir(out), "failed to create journals directory")
	writer := importer.NewWriter(profile, filepath.Base(path), accounts)
	exitOnError(writer.WriteFile(out, entries), "failed to write journal")

	printSummary(summary, out)
	recordRun(resolver, profile.Name, summary, out)
}
