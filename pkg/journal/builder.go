package journal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakima-lc/accounting/pkg/classify"
	"github.com/shopspring/decimal"
)

// Builder renders classified transactions into balanced journal entries.
// Each category has a fixed posting template; the transaction's signed
// amount always lands on the Whatnot pending account (or inventory, for
// purchases) so the running balance tracks the source ledger.
type Builder struct {
	accounts Accounts
}

// NewBuilder creates a Builder posting to the given chart of accounts.
func NewBuilder(accounts Accounts) *Builder {
	return &Builder{accounts: accounts}
}

// Build returns the journal entry for a classified transaction. Rows with
// zero amounts or unparseable dates must be filtered before this point.
// Every returned entry balances to zero.
func (b *Builder) Build(txn classify.Transaction, category classify.Category) Entry {
	entry := Entry{Date: txn.Date}
	amount := txn.Amount

	switch category {
	case classify.Sale:
		entry.Description = saleDescription(txn)
		entry.Comments = saleComments(txn)
		if txn.BuyerPaid.IsPositive() {
			// Three-way split: gross charged, fees, net received.
			fees := txn.BuyerPaid.Sub(amount)
			b.checkFeeSplit(txn, fees)
			entry.Postings = []Posting{
				{Account: b.accounts.Pending, Amount: amount},
				{Account: b.accounts.Fees, Amount: fees},
				{Account: b.accounts.Sales, Amount: txn.BuyerPaid.Neg()},
			}
		} else {
			entry.Postings = []Posting{
				{Account: b.accounts.Pending, Amount: amount},
				{Account: b.accounts.Sales, Elide: true},
			}
		}

	case classify.Tip:
		entry.Description = "Tip from " + orUnknown(txn.Buyer)
		entry.Comments = keyComments("transaction_id", txn.TransactionID)
		entry.Postings = []Posting{
			{Account: b.accounts.Pending, Amount: amount},
			{Account: b.accounts.Tips, Amount: amount.Neg()},
		}

	case classify.Payout:
		entry.Description = payoutDescription(txn)
		entry.Comments = payoutComments(txn)
		// Source reports the outflow as negative; the cash leg negates it.
		entry.Postings = []Posting{
			{Account: b.accounts.Checking, Amount: amount.Neg()},
			{Account: b.accounts.Pending, Amount: amount},
		}

	case classify.Refund:
		entry.Description = refundDescription(txn)
		entry.Comments = keyComments("order_id", txn.OrderID)
		entry.Postings = []Posting{
			{Account: b.accounts.Pending, Amount: amount},
			{Account: b.accounts.Sales, Amount: amount.Neg()},
		}

	case classify.GiveawayExpense:
		entry.Description = giveawayDescription(txn)
		entry.Comments = keyComments("order_id", txn.OrderID, "listing_id", txn.ListingID)
		entry.Postings = []Posting{
			{Account: b.accounts.Giveaways, Amount: amount.Neg()},
			{Account: b.accounts.Pending, Amount: amount},
		}

	case classify.MarketingExpense:
		entry.Description = adjustmentDescription(txn, "Account adjustment")
		entry.Comments = keyComments("listing_id", txn.ListingID, "order_id", txn.OrderID)
		entry.Postings = []Posting{
			{Account: b.accounts.Marketing, Amount: amount.Neg()},
			{Account: b.accounts.Pending, Amount: amount},
		}

	case classify.SaleReversal:
		entry.Description = adjustmentDescription(txn, "Account adjustment")
		entry.Comments = keyComments("listing_id", txn.ListingID, "order_id", txn.OrderID)
		entry.Postings = []Posting{
			{Account: b.accounts.Sales, Amount: amount},
			{Account: b.accounts.Pending, Amount: amount.Neg()},
		}

	case classify.GenericAdjustment:
		fallback := "Account adjustment"
		if txn.TypeTag == classify.TagSales || txn.TypeTag == classify.TagOrderEarnings {
			fallback = "Sales adjustment"
		}
		entry.Description = adjustmentDescription(txn, fallback)
		entry.Comments = keyComments("listing_id", txn.ListingID, "order_id", txn.OrderID)
		if amount.IsNegative() {
			entry.Postings = []Posting{
				{Account: b.accounts.Adjustments, Amount: amount.Neg()},
				{Account: b.accounts.Pending, Amount: amount},
			}
		} else {
			entry.Postings = []Posting{
				{Account: b.accounts.Pending, Amount: amount},
				{Account: b.accounts.OtherRevenue, Elide: true},
			}
		}

	case classify.Purchase:
		entry.Description = purchaseDescription(txn)
		entry.Comments = purchaseComments(txn)
		entry.Postings = []Posting{
			{Account: b.accounts.Inventory, Amount: amount},
			{Account: b.accounts.CreditCard, Elide: true},
		}

	default:
		// Unknown type: a catch-all pair so nothing is silently dropped.
		entry.Description = fmt.Sprintf("%s: %s", txn.TypeTag, truncate(sanitize(txn.Message), 50))
		entry.Comments = keyComments("transaction_id", txn.TransactionID)
		entry.Postings = []Posting{
			{Account: b.accounts.Pending, Amount: amount},
			{Account: b.accounts.OtherRevenue, Amount: amount.Neg()},
		}
	}

	return entry
}

// reportedFees sums the source's own fee columns. Shipping is part of the
// buyer-paid-minus-net spread on shipped orders.
func reportedFees(txn classify.Transaction) decimal.Decimal {
	return txn.CommissionFee.Add(txn.ProcessingFee).Add(txn.ShippingFee)
}

// checkFeeSplit compares the derived fee amount against the source's own
// fee columns. The derived figure is used either way; a mismatch is only
// flagged.
func (b *Builder) checkFeeSplit(txn classify.Transaction, derived decimal.Decimal) {
	reported := reportedFees(txn)
	if reported.IsPositive() && !reported.Equal(derived) {
		slog.Warn("fee split mismatch",
			"order_id", txn.OrderID,
			"derived", derived.StringFixed(2),
			"reported", reported.StringFixed(2),
		)
	}
}

const earningsPrefix = "Earnings for selling a "

func saleDescription(txn classify.Transaction) string {
	if txn.Listing != "" {
		desc := "Sale: " + truncate(sanitize(txn.Listing), 40)
		if txn.Buyer != "" {
			desc += " - " + txn.Buyer
		}
		return desc
	}
	if strings.HasPrefix(txn.Message, earningsPrefix) {
		item := strings.TrimPrefix(txn.Message, earningsPrefix)
		return "Sale: " + truncate(sanitize(item), 50)
	}
	if txn.Message != "" {
		return truncate(sanitize(txn.Message), 60)
	}
	return "Sale"
}

func saleComments(txn classify.Transaction) []string {
	comments := keyComments(
		"order_id", txn.OrderID,
		"listing_id", txn.ListingID,
		"sku", txn.SKU,
	)
	if txn.CommissionFee.IsPositive() {
		comments = append(comments, "commission_fee: "+formatAmount(txn.CommissionFee))
	}
	if txn.ProcessingFee.IsPositive() {
		comments = append(comments, "processing_fee: "+formatAmount(txn.ProcessingFee))
	}
	if txn.ShippingFee.IsPositive() {
		comments = append(comments, "shipping_fee: "+formatAmount(txn.ShippingFee))
	}
	return comments
}

func payoutDescription(txn classify.Transaction) string {
	desc := "Payout to bank"
	if strings.Contains(txn.Message, "STRIPE") {
		desc += " (Stripe)"
	}
	return desc
}

func payoutComments(txn classify.Transaction) []string {
	var comments []string
	if txn.Message != "" {
		comments = append(comments, truncate(sanitize(txn.Message), 80))
	}
	return append(comments, keyComments("transaction_id", txn.TransactionID)...)
}

func refundDescription(txn classify.Transaction) string {
	if txn.Listing != "" {
		return "Refund: " + truncate(sanitize(txn.Listing), 40)
	}
	if txn.Message != "" {
		return truncate(sanitize(txn.Message), 60)
	}
	return "Refund"
}

func giveawayDescription(txn classify.Transaction) string {
	if txn.Listing != "" {
		return "Giveaway: " + truncate(sanitize(txn.Listing), 40)
	}
	return "Giveaway deduction"
}

func adjustmentDescription(txn classify.Transaction, fallback string) string {
	if txn.Message != "" {
		return truncate(sanitize(txn.Message), 60)
	}
	return fallback
}

func purchaseDescription(txn classify.Transaction) string {
	desc := "Purchase"
	if txn.Listing != "" {
		desc = "Purchase: " + truncate(sanitize(txn.Listing), 50)
	}
	if txn.Seller != "" && txn.Seller != "Unknown" {
		desc += " from " + txn.Seller
	}
	return desc
}

func purchaseComments(txn classify.Transaction) []string {
	comments := keyComments("order_id", txn.OrderID, "seller", txn.Seller)
	if txn.Notes != "" {
		comments = append(comments, "notes: "+truncate(sanitize(txn.Notes), 80))
	}
	return comments
}

// keyComments builds "key: value" comment lines from key/value pairs,
// skipping pairs with empty values.
func keyComments(pairs ...string) []string {
	var comments []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			comments = append(comments, pairs[i]+": "+pairs[i+1])
		}
	}
	return comments
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// sanitize normalizes embedded double quotes so descriptions cannot break
// the journal's quoting rules.
func sanitize(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

// truncate bounds a string to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
