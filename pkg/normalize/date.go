// Package normalize converts raw export fields into canonical values:
// dates in YYYY/MM/DD form and amounts as exact decimals.
package normalize

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalDateLayout is the date form used throughout the journals.
const CanonicalDateLayout = "2006/01/02"

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"Jan 2, 2006, 3:04:05 PM", // ledger export: "Nov 9, 2025, 7:27:37 PM"
	"Jan 2, 2006",
	"2006-01-02 15:04:05", // earnings export (UTC timestamps)
	"2006-01-02",
	CanonicalDateLayout,
	"1/2/2006",
}

// ParseDate parses a source date string and renders it as YYYY/MM/DD.
// Time-of-day is discarded. Already-canonical input round-trips unchanged.
// An empty or unrecognized string returns an error naming the literal so
// the caller can log it before dropping the row.
func ParseDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(CanonicalDateLayout), nil
		}
	}

	return "", fmt.Errorf("unrecognized date format: %q", trimmed)
}
