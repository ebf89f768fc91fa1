package bilag

// Dinero chart of accounts used by the conversion. The securities account is
// always the booked account, the balance account depends on the transaction.
const (
	AccountSecurities     = "55020"
	AccountCash           = "51515"
	AccountFees           = "7220"
	AccountDividendIncome = "9020"
	AccountWithholdingTax = "54055"
	AccountInterestIncome = "9200"
)

// NoVAT is the Dinero VAT type for entries without VAT.
const NoVAT = "Ingen moms"

// ZeroForeignAmount is written in the foreign currency column, entries are
// always in the account currency.
const ZeroForeignAmount = "0,0"
