// Package cmd provides CLI commands for turso-sync.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sakima-lc/accounting/pkg/config"
	"github.com/sakima-lc/accounting/pkg/turso"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "turso-sync",
	Short: "Push local JSON snapshots to a Turso database",
	Long: `turso-sync replaces remote table contents with the local JSON
snapshots in the data directory. Each table is synced as one ordered
batch: delete everything, then insert every record, so re-running
with the same input is a no-op.

Example:
  turso-sync init
  turso-sync all
  turso-sync shows
  turso-sync items`,
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

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showsCmd)
	rootCmd.AddCommand(itemsCmd)
}

// newSyncer resolves configuration and credentials, failing before any
// network or file I/O when the token or URL is missing.
func newSyncer() *turso.Syncer {
	cfg, err := config.Load(cfgFile)
	exitOnError(err, "failed to load configuration")

	exitOnError(cfg.ValidateTurso(), "invalid configuration")

	token, err := cfg.Turso.ResolveToken(config.KeychainLookup)
	exitOnError(err, "failed to resolve auth token")

	client := turso.NewClient(turso.ClientConfig{
		URL:   cfg.Turso.HTTPURL(),
		Token: token,
	})

	return turso.NewSyncer(client, cfg.Turso.DataDir)
}

// exitOnError handles errors and exits.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
