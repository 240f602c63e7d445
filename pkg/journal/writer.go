package journal

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Writer assembles journal entries into a complete hledger file: comment
// preamble, account declarations, an opening-balance entry anchored at the
// earliest transaction date, then every entry in chronological order.
type Writer struct {
	Title          string   // first preamble comment line
	Source         string   // source description for the preamble
	Declarations   []string // accounts declared at the top of the file
	OpeningAccount string   // asset account for the opening balance
	EquityAccount  string   // equity side of the opening balance

	now func() time.Time
}

// NewWriter creates a Writer for one journal file.
func NewWriter(title, source string, declarations []string, openingAccount, equityAccount string) *Writer {
	return &Writer{
		Title:          title,
		Source:         source,
		Declarations:   declarations,
		OpeningAccount: openingAccount,
		EquityAccount:  equityAccount,
		now:            time.Now,
	}
}

// Render produces the full journal text. Entries arrive in source-native
// order; when the first entry is dated after the last the input is
// newest-first and gets reversed, so output is always oldest-first.
func (w *Writer) Render(entries []Entry) string {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	if len(ordered) > 1 && ordered[0].Date > ordered[len(ordered)-1].Date {
		slices.Reverse(ordered)
	}

	var sb strings.Builder

	sb.WriteString("; " + w.Title + "\n")
	sb.WriteString("; Generated: " + w.now().Format("2006-01-02 15:04:05") + "\n")
	if w.Source != "" {
		sb.WriteString("; Source: " + w.Source + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("; Account declarations\n")
	for _, account := range w.Declarations {
		sb.WriteString("account " + account + "\n")
	}
	sb.WriteString("\n")

	if earliest := earliestDate(ordered); earliest != "" {
		sb.WriteString("; Opening balance\n")
		sb.WriteString(earliest + " * Opening Balance\n")
		sb.WriteString(postingLine(w.OpeningAccount, "$0.00"))
		sb.WriteString(postingLine(w.EquityAccount, "$0.00"))
		sb.WriteString("\n")
	}

	for i, entry := range ordered {
		if i > 0 {
			sb.WriteString("\n")
		}
		renderEntry(&sb, entry)
	}

	return sb.String()
}

// WriteFile renders the journal and writes it as the complete contents of
// path. The parent directory must already exist.
func (w *Writer) WriteFile(path string, entries []Entry) error {
	if err := os.WriteFile(path, []byte(w.Render(entries)), 0644); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	return nil
}

func renderEntry(sb *strings.Builder, entry Entry) {
	sb.WriteString(entry.Date + " * " + entry.Description + "\n")
	for _, comment := range entry.Comments {
		sb.WriteString("    ; " + comment + "\n")
	}
	for _, posting := range entry.Postings {
		if posting.Elide {
			sb.WriteString("    " + posting.Account + "\n")
			continue
		}
		sb.WriteString(postingLine(posting.Account, formatAmount(posting.Amount)))
	}
}

// postingLine renders one indented posting with the amount column aligned.
func postingLine(account, amount string) string {
	return fmt.Sprintf("    %-36s%s\n", account, amount)
}

// formatAmount renders a decimal as a currency string with two decimal
// places and the sign before the dollar symbol, e.g. "-$500.00".
func formatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func earliestDate(entries []Entry) string {
	earliest := ""
	for _, entry := range entries {
		if earliest == "" || entry.Date < earliest {
			earliest = entry.Date
		}
	}
	return earliest
}
