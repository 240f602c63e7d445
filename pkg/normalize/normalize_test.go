package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "ledger timestamp", input: "Nov 9, 2025, 7:27:37 PM", want: "2025/11/09"},
		{name: "ledger date only", input: "Nov 9, 2025", want: "2025/11/09"},
		{name: "earnings timestamp", input: "2025-11-03 14:22:05", want: "2025/11/03"},
		{name: "iso date", input: "2025-11-03", want: "2025/11/03"},
		{name: "canonical round-trips", input: "2025/11/09", want: "2025/11/09"},
		{name: "us slash date", input: "11/9/2025", want: "2025/11/09"},
		{name: "surrounding whitespace", input: "  Nov 9, 2025  ", want: "2025/11/09"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "dollar amount", input: "$45.00", want: "45"},
		{name: "negative dollar amount", input: "-$10.00", want: "-10"},
		{name: "thousands separator", input: "$1,234.56", want: "1234.56"},
		{name: "plain number", input: "12.50", want: "12.5"},
		{name: "negative plain", input: "-45.00", want: "-45"},
		{name: "blank is zero", input: "", want: "0"},
		{name: "whitespace is zero", input: "   ", want: "0"},
		{name: "padded", input: " $5.00 ", want: "5"},
		{name: "garbage", input: "N/A", wantErr: true},
		{name: "double sign", input: "--5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %s, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tt.input, err)
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseAmountExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	a, err := ParseAmount("0.1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseAmount("0.2")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Add(b).StringFixed(2); got != "0.30" {
		t.Errorf("0.1 + 0.2 = %s, want 0.30", got)
	}
}
