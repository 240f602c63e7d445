// Package cmd provides CLI commands for whatnot-import.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/sakima-lc/accounting/pkg/config"
	"github.com/sakima-lc/accounting/pkg/history"
	"github.com/sakima-lc/accounting/pkg/importer"
	"github.com/sakima-lc/accounting/pkg/journal"
	"github.com/sakima-lc/accounting/pkg/pathutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "whatnot-import",
	Short: "Import Whatnot exports into hledger journals",
	Long: `whatnot-import converts Whatnot CSV exports into hledger journal
files with balanced double-entry postings.

It supports:
- The full transaction ledger export (transaction-by-transaction history)
- Weekly earnings statements with fee breakdowns
- Purchase history for COGS tracking

Example:
  whatnot-import ledger ~/Downloads/ledger.csv
  whatnot-import earnings
  whatnot-import purchases --scan-downloads
  whatnot-import stats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(earningsCmd)
	rootCmd.AddCommand(purchasesCmd)
	rootCmd.AddCommand(statsCmd)
}

func getConfigFile() string {
	return cfgFile
}

// setup loads configuration, the chart of accounts, and the path resolver
// shared by every import command.
func setup() (*config.Config, journal.Accounts, *pathutil.Resolver) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	accounts := journal.DefaultAccounts()
	if cfg.Journals.AccountsFile != "" {
		accounts, err = journal.LoadAccounts(cfg.Journals.AccountsFile)
		exitOnError(err, "failed to load chart of accounts")
	}

	resolver := pathutil.New(pathutil.Config{
		JournalsDir:   cfg.Journals.Dir,
		ImportDir:     cfg.Journals.ImportDir,
		DownloadsDir:  cfg.Journals.DownloadsDir,
		HistoryDBPath: cfg.Journals.HistoryDBPath,
	})

	return cfg, accounts, resolver
}

// recordRun appends one import-run record to the history database. History
// is observational: failures are logged, never fatal to the import.
func recordRun(resolver *pathutil.Resolver, source string, summary importer.Summary, journalFile string) {
	conn, err := history.Open(resolver.HistoryDBPath())
	if err != nil {
		slog.Warn("failed to open history database", "error", err)
		return
	}
	defer conn.Close()

	net := decimal.Zero
	for _, total := range summary.Totals {
		net = net.Add(total)
	}

	store := history.NewStore(conn)
	err = store.RecordRun(history.Run{
		Source:      source,
		File:        summary.File,
		Rows:        summary.Rows,
		Imported:    summary.Imported,
		Skipped:     summary.Skipped,
		NetTotal:    net.StringFixed(2),
		JournalFile: journalFile,
	})
	if err != nil {
		slog.Warn("failed to record import run", "error", err)
		return
	}

	if err := store.SetMetadata("last_journal_file", journalFile); err != nil {
		slog.Warn("failed to update import metadata", "error", err)
	}
}

func printSummary(summary importer.Summary, journalFile string) {
	fmt.Println("\nImport complete!")
	fmt.Printf("Transactions imported: %d\n", summary.Imported)
	if summary.Skipped > 0 {
		fmt.Printf("Rows skipped:          %d\n", summary.Skipped)
	}

	categories := make([]string, 0, len(summary.Totals))
	for category := range summary.Totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Printf("Total %-17s $%s\n", category+":", summary.Totals[category].StringFixed(2))
	}

	fmt.Printf("Journal file: %s\n", journalFile)
	fmt.Printf("\nVerify with: hledger -f %s balance\n", journalFile)
}

// exitOnError handles errors and exits.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
