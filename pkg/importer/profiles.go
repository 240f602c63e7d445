package importer

import (
	"fmt"
	"strings"

	"github.com/sakima-lc/accounting/pkg/classify"
	"github.com/sakima-lc/accounting/pkg/csvio"
	"github.com/sakima-lc/accounting/pkg/journal"
	"github.com/sakima-lc/accounting/pkg/normalize"
)

// LedgerProfile describes the full transaction ledger export: complete
// transaction-by-transaction history, newest-first in the file, net
// amounts only.
func LedgerProfile() Profile {
	return Profile{
		Name:     "ledger",
		Required: []string{"Date", "Amount", "Transaction Type", "Message", "Listing ID", "Order ID"},
		Title:    "Whatnot Transaction Ledger Import",
		Parse:    parseLedgerRow,
		Classify: classify.Classify,
		Declarations: func(a journal.Accounts) []string {
			return []string{
				a.Pending, a.Checking,
				a.Sales, a.OtherRevenue,
				a.Giveaways, a.Marketing, a.Adjustments,
				a.Opening,
			}
		},
		OpeningAccount: func(a journal.Accounts) string { return a.Pending },
	}
}

func parseLedgerRow(rec csvio.Record) (classify.Transaction, bool, error) {
	date, err := normalize.ParseDate(rec.Get("Date"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("date: %w", err)
	}

	amount, err := normalize.ParseAmount(rec.Get("Amount"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("amount: %w", err)
	}

	return classify.Transaction{
		Date:      date,
		Amount:    amount,
		TypeTag:   rec.Get("Transaction Type"),
		Message:   rec.Get("Message"),
		ListingID: rec.Get("Listing ID"),
		OrderID:   rec.Get("Order ID"),
	}, true, nil
}

// EarningsProfile describes the weekly earnings statement export: fee
// breakdowns per order, oldest-first in the file.
func EarningsProfile() Profile {
	return Profile{
		Name: "earnings",
		Required: []string{
			"TRANSACTION_COMPLETED_AT_UTC", "ORDER_PLACED_AT_UTC",
			"TRANSACTION_TYPE", "TRANSACTION_AMOUNT",
			"LISTING_TITLE", "BUYER_NAME", "ORDER_ID",
			"BUYER_PAID", "COMMISSION_FEE", "PAYMENT_PROCESSING_FEE", "SHIPPING_FEE",
			"SKU", "LEDGER_TRANSACTION_ID", "TRANSACTION_MESSAGE",
		},
		Title:    "Whatnot Earnings Import",
		Parse:    parseEarningsRow,
		Classify: classify.Classify,
		Declarations: func(a journal.Accounts) []string {
			return []string{
				a.Pending, a.Checking,
				a.Sales, a.Tips, a.OtherRevenue,
				a.Fees, a.Giveaways, a.Adjustments,
				a.Opening,
			}
		},
		OpeningAccount: func(a journal.Accounts) string { return a.Pending },
	}
}

func parseEarningsRow(rec csvio.Record) (classify.Transaction, bool, error) {
	rawDate := rec.Get("TRANSACTION_COMPLETED_AT_UTC")
	if strings.TrimSpace(rawDate) == "" {
		rawDate = rec.Get("ORDER_PLACED_AT_UTC")
	}
	date, err := normalize.ParseDate(rawDate)
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("date: %w", err)
	}

	amount, err := normalize.ParseAmount(rec.Get("TRANSACTION_AMOUNT"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("amount: %w", err)
	}
	buyerPaid, err := normalize.ParseAmount(rec.Get("BUYER_PAID"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("buyer paid: %w", err)
	}
	commission, err := normalize.ParseAmount(rec.Get("COMMISSION_FEE"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("commission fee: %w", err)
	}
	processing, err := normalize.ParseAmount(rec.Get("PAYMENT_PROCESSING_FEE"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("processing fee: %w", err)
	}
	shipping, err := normalize.ParseAmount(rec.Get("SHIPPING_FEE"))
	if err != nil {
		return classify.Transaction{}, false, fmt.Errorf("shipping fee: %w", err)
	}

	return classify.Transaction{
		Date:          date,
		Amount:        amount,
		TypeTag:       rec.Get("TRANSACTION_TYPE"),
		Message:       rec.Get("TRANSACTION_MESSAGE"),
		Listing:       rec.Get("LISTING_TITLE"),
		Buyer:         rec.Get("BUYER_NAME"),
		OrderID:       rec.Get("ORDER_ID"),
		SKU:           rec.Get("SKU"),
		TransactionID: rec.Get("LEDGER_TRANSACTION_ID"),
		BuyerPaid:     buyerPaid,
		CommissionFee: commission,
		ProcessingFee: processing,
		ShippingFee:   shipping,
	}, true, nil
}

// PurchasesProfile inspects a file's header and returns the matching
// purchase-record profile. Three shapes are recognized: Whatnot buyer
// order history, the manual tracking sheet, and a generic CSV with a
// date column and an amount column.
func PurchasesProfile(file *csvio.File) (Profile, error) {
	switch {
	case hasColumns(file, "Order Date", "Total"):
		return whatnotOrdersProfile(), nil
	case hasColumns(file, "Date", "Item", "Cost"):
		return manualPurchasesProfile(), nil
	}

	dateCol, dateOK := file.FindColumn("date", "purchase date", "order date", "transaction date")
	amountCol, amountOK := file.FindColumn("amount", "total", "cost", "price")
	if dateOK && amountOK {
		descCol, _ := file.FindColumn("description", "item", "title", "product")
		return genericPurchasesProfile(dateCol, amountCol, descCol), nil
	}

	return Profile{}, fmt.Errorf("%s: unrecognized purchase CSV format", file.Path)
}

func hasColumns(file *csvio.File, columns ...string) bool {
	return len(file.MissingColumns(columns...)) == 0
}

func purchaseFrame(name, title string) Profile {
	return Profile{
		Name:  name,
		Title: title,
		Classify: func(classify.Transaction) (classify.Category, string) {
			return classify.Purchase, ""
		},
		Declarations: func(a journal.Accounts) []string {
			return []string{a.Inventory, a.CreditCard, a.Opening}
		},
		OpeningAccount: func(a journal.Accounts) string { return a.Inventory },
	}
}

func whatnotOrdersProfile() Profile {
	p := purchaseFrame("whatnot_orders", "Whatnot Purchase History (COGS)")
	p.Required = []string{"Order Date", "Total"}
	p.Parse = func(rec csvio.Record) (classify.Transaction, bool, error) {
		date, err := normalize.ParseDate(rec.Get("Order Date"))
		if err != nil {
			return classify.Transaction{}, false, fmt.Errorf("date: %w", err)
		}
		total, err := normalize.ParseAmount(rec.Get("Total"))
		if err != nil {
			return classify.Transaction{}, false, fmt.Errorf("total: %w", err)
		}
		if !total.IsPositive() {
			return classify.Transaction{}, false, nil
		}

		item := rec.Get("Item")
		if item == "" {
			item = rec.Get("Title")
		}
		seller := rec.Get("Seller")
		if seller == "" {
			seller = "Unknown"
		}

		return classify.Transaction{
			Date:    date,
			Amount:  total,
			Listing: item,
			Seller:  seller,
			OrderID: rec.Get("Order ID"),
		}, true, nil
	}
	return p
}

func manualPurchasesProfile() Profile {
	p := purchaseFrame("manual", "Whatnot Purchase History (COGS)")
	p.Required = []string{"Date", "Item", "Cost"}
	p.Parse = func(rec csvio.Record) (classify.Transaction, bool, error) {
		date, err := normalize.ParseDate(rec.Get("Date"))
		if err != nil {
			return classify.Transaction{}, false, fmt.Errorf("date: %w", err)
		}
		cost, err := normalize.ParseAmount(rec.Get("Cost"))
		if err != nil {
			return classify.Transaction{}, false, fmt.Errorf("cost: %w", err)
		}
		if !cost.IsPositive() {
			return classify.Transaction{}, false, nil
		}

		seller := rec.Get("Seller")
		if seller == "" {
			seller = rec.Get("Source")
		}

		return classify.Transaction{
			Date:    date,
			Amount:  cost,
			Listing: rec.Get("Item"),
			Seller:  seller,
			Notes:   rec.Get("Notes"),
		}, true, nil
	}
	return p
}

func genericPurchasesProfile(dateCol, amountCol, descCol string) Profile {
	p := purchaseFrame("generic", "Whatnot Purchase History (COGS)")
	p.Parse = func(rec csvio.Record) (classify.Transaction, bool, error) {
		date, err := normalize.ParseDate(rec.Get(dateCol))
		if err != nil {
			return classify.Transaction{}, false, fmt.Errorf("date: %w", err)
		}
		amount, err := normalize.ParseAmount(rec.Get(amountCol))
		if err != nil {
			return classify.Transaction{}, false, fmt.Errorf("amount: %w", err)
		}
		if !amount.IsPositive() {
			return classify.Transaction{}, false, nil
		}

		txn := classify.Transaction{Date: date, Amount: amount}
		if descCol != "" {
			txn.Listing = rec.Get(descCol)
		}
		return txn, true, nil
	}
	return p
}
