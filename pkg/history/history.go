package history

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded importer invocation against one source file.
type Run struct {
	ID          int64
	Source      string
	File        string
	Rows        int
	Imported    int
	Skipped     int
	NetTotal    string
	JournalFile string
	ImportedAt  time.Time
}

// Store manages import-run records.
type Store struct {
	conn *Connection
}

// NewStore creates a Store over an open connection.
func NewStore(conn *Connection) *Store {
	return &Store{conn: conn}
}

// RecordRun appends one import-run record.
func (s *Store) RecordRun(run Run) error {
	query := `
		INSERT INTO import_runs (source, file, rows, imported, skipped, net_total, journal_file)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn.db.Exec(query,
		run.Source,
		run.File,
		run.Rows,
		run.Imported,
		run.Skipped,
		run.NetTotal,
		run.JournalFile,
	)
	if err != nil {
		return fmt.Errorf("failed to record import run: %w", err)
	}

	return nil
}

// RunsBySource retrieves all runs for one source, newest first.
func (s *Store) RunsBySource(source string) ([]Run, error) {
	query := `
		SELECT id, source, file, rows, imported, skipped, net_total, journal_file, imported_at
		FROM import_runs
		WHERE source = ?
		ORDER BY imported_at DESC
	`

	rows, err := s.conn.db.Query(query, source)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs by source: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.Source,
			&run.File,
			&run.Rows,
			&run.Imported,
			&run.Skipped,
			&run.NetTotal,
			&run.JournalFile,
			&run.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// Stats represents aggregate import statistics.
type Stats struct {
	TotalRuns     int
	TotalImported int
	TotalSkipped  int
	LastImport    sql.NullString
}

// GetStats retrieves aggregate statistics across all recorded runs.
func (s *Store) GetStats() (*Stats, error) {
	var stats Stats

	err := s.conn.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(imported), 0), COALESCE(SUM(skipped), 0)
		FROM import_runs
	`).Scan(&stats.TotalRuns, &stats.TotalImported, &stats.TotalSkipped)
	if err != nil {
		return nil, fmt.Errorf("failed to get run totals: %w", err)
	}

	err = s.conn.db.QueryRow(`SELECT MAX(imported_at) FROM import_runs`).Scan(&stats.LastImport)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last import time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value. Missing keys return "".
func (s *Store) GetMetadata(key string) (string, error) {
	var value string
	err := s.conn.db.QueryRow(`SELECT value FROM import_metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}
	return value, nil
}

// SetMetadata sets a metadata value.
func (s *Store) SetMetadata(key, value string) error {
	query := `
		INSERT INTO import_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.conn.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
