package bilag

import (
	"fmt"

	"github.com/etnz/bilag/date"
)

// Entry is one line of a Dinero voucher. All entries of a voucher share the
// same Voucher number.
type Entry struct {
	Voucher               int
	Date                  date.Date
	Text                  string
	Account               string
	AccountVatType        string
	Amount                Amount
	ForeignAmount         string
	BalanceAccount        string
	BalanceAccountVatType string
}

// newEntry returns an entry on the securities account, without VAT.
func newEntry(voucher int, on date.Date, text string, amount Amount, balance string) Entry {
	return Entry{
		Voucher:               voucher,
		Date:                  on,
		Text:                  text,
		Account:               AccountSecurities,
		AccountVatType:        NoVAT,
		Amount:                amount,
		ForeignAmount:         ZeroForeignAmount,
		BalanceAccount:        balance,
		BalanceAccountVatType: NoVAT,
	}
}

func purchaseText(company, isin string) string {
	return fmt.Sprintf("Køb af %s, ISIN: %s", company, isin)
}

const purchaseFeeText = "Kurtage af køb"

func dividendText(company, isin string) string {
	return fmt.Sprintf("Udbytte - %s, ISIN: %s", company, isin)
}

func dividendTaxText(company, isin string) string {
	return fmt.Sprintf("Udbytteskat - %s, ISIN: %s", company, isin)
}

const interestText = "Renter"
