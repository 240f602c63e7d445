// Package classify assigns normalized Whatnot transactions to bookkeeping
// categories.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized source row ready for classification. Date
// is canonical YYYY/MM/DD; Amount is the signed net amount.
type Transaction struct {
	Date    string
	Amount  decimal.Decimal
	TypeTag string
	Message string

	// Correlation metadata, carried into journal comments only.
	OrderID       string
	ListingID     string
	SKU           string
	TransactionID string
	Listing       string
	Buyer         string
	Seller        string
	Notes         string

	// Fee breakdown, present only on earnings exports.
	BuyerPaid     decimal.Decimal
	CommissionFee decimal.Decimal
	ProcessingFee decimal.Decimal
	ShippingFee   decimal.Decimal
}

// Category is the closed set of bookkeeping categories a transaction maps
// to. Every category has a fixed posting template in the journal builder.
type Category int

const (
	Unknown Category = iota
	Sale
	Tip
	Payout
	Refund
	GiveawayExpense
	MarketingExpense
	SaleReversal
	GenericAdjustment
	Purchase
)

// String returns the category name used in summaries and history records.
func (c Category) String() string {
	switch c {
	case Sale:
		return "sale"
	case Tip:
		return "tip"
	case Payout:
		return "payout"
	case Refund:
		return "refund"
	case GiveawayExpense:
		return "giveaway"
	case MarketingExpense:
		return "marketing"
	case SaleReversal:
		return "reversal"
	case GenericAdjustment:
		return "adjustment"
	case Purchase:
		return "purchase"
	}
	return "unknown"
}

// Transaction type tags as they appear in Whatnot exports. The ledger
// export tags sales rows SALES; the earnings export tags the same economic
// event ORDER_EARNINGS.
const (
	TagSales         = "SALES"
	TagOrderEarnings = "ORDER_EARNINGS"
	TagPayout        = "PAYOUT"
	TagAdjustment    = "ADJUSTMENT"
	TagRefund        = "REFUND"
	TagTip           = "TIP"
)

// Sub-classification reasons derived from message tokens.
const (
	ReasonGiveaway  = "giveaway"
	ReasonReversal  = "reversal"
	ReasonPromotion = "promotion"
)

// Classify maps a transaction to exactly one category plus the message
// token that drove the decision ("" when none did). Decision order: type
// tag first, then amount sign, then case-insensitive message tokens; the
// first matching rule wins. Zero-amount rows are filtered before this
// point and never reach Classify.
func Classify(txn Transaction) (Category, string) {
	msg := strings.ToLower(txn.Message)

	switch txn.TypeTag {
	case TagSales, TagOrderEarnings:
		if txn.Amount.IsNegative() {
			if strings.Contains(msg, "giveaway") {
				return GiveawayExpense, ReasonGiveaway
			}
			return GenericAdjustment, ""
		}
		return Sale, ""

	case TagPayout:
		return Payout, ""

	case TagAdjustment:
		// Tokens refine negative adjustments only; a positive adjustment is
		// income regardless of wording.
		if txn.Amount.IsNegative() {
			switch {
			case strings.Contains(msg, "reversal") || strings.Contains(msg, "reversing"):
				return SaleReversal, ReasonReversal
			case strings.Contains(msg, "promotion"):
				return MarketingExpense, ReasonPromotion
			}
		}
		return GenericAdjustment, ""

	case TagRefund:
		return Refund, ""

	case TagTip:
		return Tip, ""
	}

	return Unknown, ""
}
