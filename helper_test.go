package bilag

import (
	"time"

	"github.com/etnz/bilag/date"
)

// day is a helper for test to create dates in 2025.
func day(month time.Month, d int) date.Date { return date.New(2025, month, d) }

// tx is a helper for test to create a transaction with the fields used by the conversion.
func tx(kind Kind, on date.Date, company, isin, total, fees string) Transaction {
	return Transaction{Date: on, Company: company, ISIN: isin, Kind: kind, Total: total, Fees: fees}
}

// row is a comparable view of an Entry.
type row struct {
	Voucher int
	Date    string
	Text    string
	Amount  string
	Balance string
}

func rows(entries []Entry) []row {
	var r []row
	for _, e := range entries {
		r = append(r, row{e.Voucher, e.Date.Dinero(), e.Text, e.Amount.String(), e.BalanceAccount})
	}
	return r
}
