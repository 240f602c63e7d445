package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a currency string such as "$1,234.56" or "-45.00"
// into an exact decimal. The dollar sign and thousands separators are
// stripped first. Blank input is exactly zero. Anything else that fails to
// parse is an error; it is never coerced to zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return decimal.Zero, nil
	}

	clean = strings.ReplaceAll(clean, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	return amount, nil
}
