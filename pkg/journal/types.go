// Package journal builds balanced double-entry journal entries and writes
// complete hledger journal files.
package journal

import (
	"github.com/shopspring/decimal"
)

// Posting is one account/amount line within an entry. Elide marks the
// balancing leg whose amount is left implicit in the output.
type Posting struct {
	Account string
	Amount  decimal.Decimal
	Elide   bool
}

// Entry is one dated journal transaction: a description line, metadata
// comment lines, and two or more postings that sum to zero.
type Entry struct {
	Date        string // YYYY/MM/DD
	Description string
	Comments    []string
	Postings    []Posting
}

// Balanced reports whether the postings sum to exactly zero under decimal
// arithmetic. A single elided posting counts as the negated sum of the
// explicit ones; more than one elided posting is never balanced.
func (e Entry) Balanced() bool {
	if len(e.Postings) < 2 {
		return false
	}

	sum := decimal.Zero
	elided := 0
	for _, p := range e.Postings {
		if p.Elide {
			elided++
			continue
		}
		sum = sum.Add(p.Amount)
	}

	if elided > 0 {
		return elided == 1
	}
	return sum.IsZero()
}
