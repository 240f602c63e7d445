package journal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAccountsOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.yaml")

	yaml := `
pending: Assets:Marketplace:Pending
fees: Expenses:Platform:Fees
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	accounts, err := LoadAccounts(path)
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}

	if accounts.Pending != "Assets:Marketplace:Pending" {
		t.Errorf("Pending = %q, want overridden value", accounts.Pending)
	}
	if accounts.Fees != "Expenses:Platform:Fees" {
		t.Errorf("Fees = %q, want overridden value", accounts.Fees)
	}
	// Untouched fields keep their defaults.
	if accounts.Sales != "Revenue:Sales" {
		t.Errorf("Sales = %q, want default", accounts.Sales)
	}
	if accounts.Opening != "Equity:Opening" {
		t.Errorf("Opening = %q, want default", accounts.Opening)
	}
}

func TestLoadAccountsMissingFile(t *testing.T) {
	if _, err := LoadAccounts(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing accounts file")
	}
}

func TestLoadAccountsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	if err := os.WriteFile(path, []byte("pending: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAccounts(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
