// Package importer wires the CSV -> classify -> journal pipeline. One
// parameterized pipeline serves every source; a Profile supplies the
// per-source column mapping and classification rule.
package importer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/sakima-lc/accounting/pkg/classify"
	"github.com/sakima-lc/accounting/pkg/csvio"
	"github.com/sakima-lc/accounting/pkg/journal"
	"github.com/shopspring/decimal"
)

// Profile describes one source shape: which columns it requires, how a
// row becomes a normalized transaction, how transactions are classified,
// and how the resulting journal file is framed.
type Profile struct {
	Name     string
	Required []string
	Title    string

	// Parse extracts a normalized transaction from one record. ok=false
	// drops the row without a warning (e.g. non-positive purchase totals);
	// an error drops it with one.
	Parse func(rec csvio.Record) (txn classify.Transaction, ok bool, err error)

	// Classify maps a parsed transaction to its category.
	Classify func(txn classify.Transaction) (classify.Category, string)

	// Declarations and OpeningAccount select accounts from the active
	// chart for the journal preamble.
	Declarations   func(a journal.Accounts) []string
	OpeningAccount func(a journal.Accounts) string
}

// Summary reports what one processed file contributed.
type Summary struct {
	File     string
	Rows     int
	Imported int
	Skipped  int
	Totals   map[string]decimal.Decimal
}

// Merge folds another file's summary into this one.
func (s *Summary) Merge(other Summary) {
	s.Rows += other.Rows
	s.Imported += other.Imported
	s.Skipped += other.Skipped
	if s.Totals == nil {
		s.Totals = make(map[string]decimal.Decimal)
	}
	for category, total := range other.Totals {
		s.Totals[category] = s.Totals[category].Add(total)
	}
}

// Run processes one parsed file through the pipeline and returns its
// journal entries in source-native order. Rows with unparseable fields
// are logged and dropped; rows with zero amounts are dropped silently.
// A file missing required columns fails as a whole.
func Run(profile Profile, file *csvio.File, builder *journal.Builder) ([]journal.Entry, Summary, error) {
	if missing := file.MissingColumns(profile.Required...); len(missing) > 0 {
		return nil, Summary{}, fmt.Errorf("%s: missing required columns %v", file.Path, missing)
	}

	summary := Summary{
		File:   filepath.Base(file.Path),
		Totals: make(map[string]decimal.Decimal),
	}

	var entries []journal.Entry
	for _, rec := range file.Records {
		summary.Rows++

		txn, ok, err := profile.Parse(rec)
		if err != nil {
			slog.Warn("skipping row", "file", summary.File, "error", err)
			summary.Skipped++
			continue
		}
		if !ok || txn.Amount.IsZero() {
			summary.Skipped++
			continue
		}

		category, _ := profile.Classify(txn)
		entries = append(entries, builder.Build(txn, category))

		summary.Imported++
		summary.Totals[category.String()] = summary.Totals[category.String()].Add(txn.Amount)
	}

	return entries, summary, nil
}

// NewWriter builds the journal writer for a profile against the active
// chart of accounts.
func NewWriter(profile Profile, source string, accounts journal.Accounts) *journal.Writer {
	return journal.NewWriter(
		profile.Title,
		source,
		profile.Declarations(accounts),
		profile.OpeningAccount(accounts),
		accounts.Opening,
	)
}
