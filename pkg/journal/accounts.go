package journal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Accounts is the chart of accounts used as posting targets. Field values
// are full hledger account names.
type Accounts struct {
	Pending      string `yaml:"pending"`
	Checking     string `yaml:"checking"`
	Sales        string `yaml:"sales"`
	Tips         string `yaml:"tips"`
	OtherRevenue string `yaml:"other_revenue"`
	Fees         string `yaml:"fees"`
	Giveaways    string `yaml:"giveaways"`
	Marketing    string `yaml:"marketing"`
	Adjustments  string `yaml:"adjustments"`
	Inventory    string `yaml:"inventory"`
	CreditCard   string `yaml:"credit_card"`
	Opening      string `yaml:"opening"`
}

// DefaultAccounts returns the built-in chart of accounts.
func DefaultAccounts() Accounts {
	return Accounts{
		Pending:      "Assets:Whatnot:Pending",
		Checking:     "Assets:Checking",
		Sales:        "Revenue:Sales",
		Tips:         "Revenue:Tips",
		OtherRevenue: "Revenue:Other",
		Fees:         "Expenses:Fees",
		Giveaways:    "Expenses:Giveaways",
		Marketing:    "Expenses:Marketing",
		Adjustments:  "Expenses:Adjustments",
		Inventory:    "Assets:Inventory",
		CreditCard:   "Liabilities:CreditCard",
		Opening:      "Equity:Opening",
	}
}

// LoadAccounts reads a YAML chart-of-accounts file and overlays it on the
// defaults. Fields not present in the file keep their default names.
func LoadAccounts(path string) (Accounts, error) {
	accounts := DefaultAccounts()

	data, err := os.ReadFile(path)
	if err != nil {
		return accounts, fmt.Errorf("failed to read accounts file: %w", err)
	}

	if err := yaml.Unmarshal(data, &accounts); err != nil {
		return accounts, fmt.Errorf("failed to parse accounts file: %w", err)
	}

	return accounts, nil
}
