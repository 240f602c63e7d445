package cmd

import (
	"fmt"
	"os"

	"github.com/sakima-lc/accounting/pkg/history"
	"github.com/spf13/cobra"
)

// statsCmd shows import-history statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show import history statistics",
	Long: `Show aggregate statistics from the import-history database: how many
runs have been recorded, how many rows were imported or skipped, and
the most recent runs per source.`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	_, _, resolver := setup()

	if !resolver.FileExists(resolver.HistoryDBPath()) {
		fmt.Println("No import history recorded yet.")
		os.Exit(0)
	}

	conn, err := history.Open(resolver.HistoryDBPath())
	exitOnError(err, "failed to open history database")
	defer conn.Close()

	store := history.NewStore(conn)
	stats, err := store.GetStats()
	exitOnError(err, "failed to get statistics")

	fmt.Println("Import History Statistics")
	fmt.Println("=========================")
	fmt.Printf("Total runs:     %d\n", stats.TotalRuns)
	fmt.Printf("Rows imported:  %d\n", stats.TotalImported)
	fmt.Printf("Rows skipped:   %d\n", stats.TotalSkipped)
	if stats.LastImport.Valid {
		fmt.Printf("Last import:    %s\n", stats.LastImport.String)
	}
	lastJournal, err := store.GetMetadata("last_journal_file")
	exitOnError(err, "failed to get metadata")
	if lastJournal != "" {
		fmt.Printf("Last journal:   %s\n", lastJournal)
	}

	for _, source := range []string{"ledger", "earnings", "whatnot_orders", "manual", "generic"} {
		runs, err := store.RunsBySource(source)
		exitOnError(err, "failed to get runs")
		if len(runs) == 0 {
			continue
		}

		fmt.Printf("\nRecent %s runs:\n", source)
		limit := len(runs)
		if limit > 5 {
			limit = 5
		}
		for _, run := range runs[:limit] {
			fmt.Printf("  %s  %-32s %4d imported, %3d skipped, net $%s\n",
				run.ImportedAt.Format("2006-01-02 15:04"),
				run.File, run.Imported, run.Skipped, run.NetTotal)
		}
	}
}
