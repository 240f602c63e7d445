// Package pathutil provides centralized path management for journal
// files, import sources, and the history database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver manages paths for journal output, import discovery, and the
// import-history database.
type Resolver struct {
	journalsDir   string
	importDir     string
	downloadsDir  string
	historyDBPath string
}

// Config represents the configuration for Resolver.
type Config struct {
	// JournalsDir is the directory journal files are written to.
	JournalsDir string
	// ImportDir is the drop directory scanned for earnings exports.
	ImportDir string
	// DownloadsDir is scanned for purchase exports in discovery mode.
	DownloadsDir string
	// HistoryDBPath is the SQLite import-history database file.
	HistoryDBPath string
}

// New creates a Resolver with the given configuration.
// If ImportDir is empty, it defaults to {JournalsDir}/../import.
// If DownloadsDir is empty, it defaults to ~/Downloads.
// If HistoryDBPath is empty, it defaults to {JournalsDir}/.history/imports.db.
func New(config Config) *Resolver {
	importDir := config.ImportDir
	if importDir == "" {
		importDir = filepath.Join(config.JournalsDir, "..", "import")
	}

	downloadsDir := config.DownloadsDir
	if downloadsDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			downloadsDir = filepath.Join(home, "Downloads")
		}
	}

	historyDBPath := config.HistoryDBPath
	if historyDBPath == "" {
		historyDBPath = filepath.Join(config.JournalsDir, ".history", "imports.db")
	}

	return &Resolver{
		journalsDir:   config.JournalsDir,
		importDir:     importDir,
		downloadsDir:  downloadsDir,
		historyDBPath: historyDBPath,
	}
}

// JournalsDir returns the journal output directory.
func (r *Resolver) JournalsDir() string {
	return r.journalsDir
}

// ImportDir returns the drop directory scanned for earnings exports.
func (r *Resolver) ImportDir() string {
	return r.importDir
}

// DownloadsDir returns the directory scanned for purchase exports.
func (r *Resolver) DownloadsDir() string {
	return r.downloadsDir
}

// HistoryDBPath returns the import-history database file path.
func (r *Resolver) HistoryDBPath() string {
	return r.historyDBPath
}

// JournalPath returns the output path for a named journal file.
func (r *Resolver) JournalPath(name string) string {
	return filepath.Join(r.journalsDir, name)
}

// EarningsFiles returns the earnings exports in the import directory,
// sorted by name so weekly statements import in order.
func (r *Resolver) EarningsFiles() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(r.importDir, "*_earnings.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan import directory: %w", err)
	}
	return matches, nil
}

// PurchaseDownloads scans the downloads directory for purchase exports.
func (r *Resolver) PurchaseDownloads() ([]string, error) {
	patterns := []string{
		"*purchase*.csv",
		"*order*.csv",
		"*inventory*.csv",
		"*COGS*.csv",
	}

	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(r.downloadsDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan downloads: %w", err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	return files, nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (r *Resolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (r *Resolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
