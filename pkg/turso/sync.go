package turso

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Syncer replaces remote table contents with local JSON snapshots. Each
// sync is a delete-all plus one insert per record, submitted as a single
// ordered batch, so re-running with the same input is observably a no-op.
type Syncer struct {
	client  *Client
	dataDir string
}

// NewSyncer creates a Syncer reading snapshots from dataDir.
func NewSyncer(client *Client, dataDir string) *Syncer {
	return &Syncer{client: client, dataDir: dataDir}
}

// CreateTables creates the remote tables and indexes if they don't exist.
func (s *Syncer) CreateTables() error {
	if _, err := s.client.Execute(schemaStatements); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	slog.Info("tables created or verified")
	return nil
}

// SyncShows replaces the shows table with the contents of shows.json.
// A missing snapshot file is skipped, not an error.
func (s *Syncer) SyncShows() error {
	path := filepath.Join(s.dataDir, "shows.json")

	var shows []Show
	found, err := loadSnapshot(path, &shows)
	if err != nil {
		return err
	}
	if !found {
		slog.Info("no shows.json found, skipping")
		return nil
	}
	if len(shows) == 0 {
		slog.Info("no shows to sync")
		return nil
	}

	stmts := []Stmt{{SQL: "DELETE FROM sakima_shows"}}
	for _, show := range shows {
		tags, err := json.Marshal(show.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for %q: %w", show.Title, err)
		}
		stmts = append(stmts, Stmt{
			SQL: `INSERT INTO sakima_shows (title, date, image, rsvp, tags, updated_at)
				VALUES (?, ?, ?, ?, ?, datetime('now'))`,
			Args: []Arg{
				Text(show.Title),
				Text(show.Date),
				Text(show.Image),
				Integer(show.RSVP),
				Text(string(tags)),
			},
		})
	}

	if _, err := s.client.Execute(stmts); err != nil {
		return fmt.Errorf("failed to sync shows: %w", err)
	}

	slog.Info("synced shows", "count", len(shows))
	return nil
}

// SyncItems replaces the items table with the contents of listings.json.
func (s *Syncer) SyncItems() error {
	path := filepath.Join(s.dataDir, "listings.json")

	var items []Item
	found, err := loadSnapshot(path, &items)
	if err != nil {
		return err
	}
	if !found {
		slog.Info("no listings.json found, skipping")
		return nil
	}
	if len(items) == 0 {
		slog.Info("no items to sync")
		return nil
	}

	stmts := []Stmt{{SQL: "DELETE FROM sakima_items"}}
	for _, item := range items {
		options, err := json.Marshal(item.BuyingOptions)
		if err != nil {
			return fmt.Errorf("failed to encode buying options for %q: %w", item.Title, err)
		}
		platform := item.Platform
		if platform == "" {
			platform = "eBay"
		}
		stmts = append(stmts, Stmt{
			SQL: `INSERT INTO sakima_items (title, price, bin_price, buying_options, bids, end_date, image, url, platform, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
			Args: []Arg{
				Text(item.Title),
				Text(item.Price),
				Text(item.BinPrice),
				Text(string(options)),
				Integer(item.Bids),
				Text(item.EndDate),
				Text(item.Image),
				Text(item.URL),
				Text(platform),
			},
		})
	}

	if _, err := s.client.Execute(stmts); err != nil {
		return fmt.Errorf("failed to sync items: %w", err)
	}

	slog.Info("synced items", "count", len(items))
	return nil
}

// loadSnapshot reads a JSON array file into out. The first return is
// false when the file does not exist.
func loadSnapshot(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return true, nil
}
