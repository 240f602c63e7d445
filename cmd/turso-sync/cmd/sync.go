package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// allCmd creates the tables and syncs every snapshot.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Create tables and sync all snapshots",
	Run:   runAll,
}

// initCmd creates the remote tables without syncing.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the remote tables and indexes",
	Run:   runInit,
}

// showsCmd syncs shows.json only.
var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "Sync shows.json to the shows table",
	Run:   runShows,
}

// itemsCmd syncs listings.json only.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Sync listings.json to the items table",
	Run:   runItems,
}

func runAll(cmd *cobra.Command, args []string) {
	syncer := newSyncer()

	exitOnError(syncer.CreateTables(), "failed to create tables")
	exitOnError(syncer.SyncShows(), "failed to sync shows")
	exitOnError(syncer.SyncItems(), "failed to sync items")

	fmt.Println("Sync complete!")
}

func runInit(cmd *cobra.Command, args []string) {
	syncer := newSyncer()
	exitOnError(syncer.CreateTables(), "failed to create tables")
	fmt.Println("Tables ready!")
}

func runShows(cmd *cobra.Command, args []string) {
	syncer := newSyncer()
	exitOnError(syncer.SyncShows(), "failed to sync shows")
}

func runItems(cmd *cobra.Command, args []string) {
	syncer := newSyncer()
	exitOnError(syncer.SyncItems(), "failed to sync items")
}
