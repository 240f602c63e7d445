package classify

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		txn        Transaction
		want       Category
		wantReason string
	}{
		{
			name: "positive sale",
			txn:  Transaction{TypeTag: TagSales, Amount: amt("45.00"), Message: "Earnings for selling a Vintage Lamp"},
			want: Sale,
		},
		{
			name: "order earnings is a sale",
			txn:  Transaction{TypeTag: TagOrderEarnings, Amount: amt("12.00")},
			want: Sale,
		},
		{
			name:       "negative sale with giveaway token",
			txn:        Transaction{TypeTag: TagSales, Amount: amt("-10.00"), Message: "Giveaway deduction"},
			want:       GiveawayExpense,
			wantReason: ReasonGiveaway,
		},
		{
			name:       "giveaway token is case-insensitive",
			txn:        Transaction{TypeTag: TagSales, Amount: amt("-10.00"), Message: "GIVEAWAY item shipped"},
			want:       GiveawayExpense,
			wantReason: ReasonGiveaway,
		},
		{
			name: "negative sale without token",
			txn:  Transaction{TypeTag: TagSales, Amount: amt("-3.00"), Message: "Correction"},
			want: GenericAdjustment,
		},
		{
			name: "payout ignores sign and message",
			txn:  Transaction{TypeTag: TagPayout, Amount: amt("-500.00"), Message: "STRIPE TRANSFER"},
			want: Payout,
		},
		{
			name:       "adjustment reversal",
			txn:        Transaction{TypeTag: TagAdjustment, Amount: amt("-20.00"), Message: "Reversal of sale"},
			want:       SaleReversal,
			wantReason: ReasonReversal,
		},
		{
			name:       "adjustment reversing variant",
			txn:        Transaction{TypeTag: TagAdjustment, Amount: amt("-20.00"), Message: "Reversing earlier charge"},
			want:       SaleReversal,
			wantReason: ReasonReversal,
		},
		{
			name:       "adjustment promotion",
			txn:        Transaction{TypeTag: TagAdjustment, Amount: amt("-5.00"), Message: "Promotion credit applied"},
			want:       MarketingExpense,
			wantReason: ReasonPromotion,
		},
		{
			name: "positive adjustment ignores reversal token",
			txn:  Transaction{TypeTag: TagAdjustment, Amount: amt("20.00"), Message: "Reversal of sale"},
			want: GenericAdjustment,
		},
		{
			name: "positive adjustment ignores promotion token",
			txn:  Transaction{TypeTag: TagAdjustment, Amount: amt("5.00"), Message: "Promotion credit applied"},
			want: GenericAdjustment,
		},
		{
			name: "adjustment without token",
			txn:  Transaction{TypeTag: TagAdjustment, Amount: amt("2.00"), Message: "Balance correction"},
			want: GenericAdjustment,
		},
		{
			name: "refund",
			txn:  Transaction{TypeTag: TagRefund, Amount: amt("-15.00")},
			want: Refund,
		},
		{
			name: "tip",
			txn:  Transaction{TypeTag: TagTip, Amount: amt("5.00")},
			want: Tip,
		},
		{
			name: "unrecognized tag",
			txn:  Transaction{TypeTag: "MYSTERY", Amount: amt("1.00")},
			want: Unknown,
		},
		{
			name: "empty tag",
			txn:  Transaction{Amount: amt("1.00")},
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := Classify(tt.txn)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
			if reason != tt.wantReason {
				t.Errorf("Classify() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	if got := Sale.String(); got != "sale" {
		t.Errorf("Sale.String() = %q", got)
	}
	if got := Category(99).String(); got != "unknown" {
		t.Errorf("Category(99).String() = %q", got)
	}
}
