package bilag

import (
	"fmt"
	"log"
)

// Converter turns chronological Nordnet transactions into Dinero entries.
//
// It walks the transactions once with a one transaction lookahead, used to
// book a dividend and the withholding tax that immediately follows it in the
// same voucher. Voucher numbers are drawn from a counter starting at the
// given first voucher, once per purchase, dividend and interest transaction.
type Converter struct {
	transactions []Transaction
	first        int

	// state of a run.
	pos     int // index of the next unconsumed transaction.
	voucher int // next voucher number.
	summary Summary

	// Logger receives a line for every skipped transaction, if not nil.
	Logger *log.Logger
}

// NewConverter returns a Converter over transactions, sorted oldest first,
// numbering vouchers from first.
func NewConverter(transactions []Transaction, first int) *Converter {
	return &Converter{transactions: transactions, first: first}
}

// Convert converts transactions oldest first into entries, numbering vouchers
// from first.
func Convert(transactions []Transaction, first int) ([]Entry, error) {
	return NewConverter(transactions, first).Convert()
}

// Convert runs the conversion. Entries come in the order of their
// transactions, entries of the same voucher are contiguous.
//
// Any decoding error aborts the conversion, no entries are returned then.
// Convert can be called again, it always restarts from the first transaction
// and the first voucher.
func (c *Converter) Convert() ([]Entry, error) {
	if c.first < 1 {
		return nil, fmt.Errorf("invalid first voucher number %d: must be positive", c.first)
	}
	c.pos, c.voucher = 0, c.first
	c.summary = newSummary()

	var entries []Entry
	for {
		tx, ok := c.next()
		if !ok {
			break
		}
		items, err := c.convertTransaction(tx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, items...)
	}
	c.summary.Entries = len(entries)
	return entries, nil
}

// Summary describes the last run of Convert.
func (c *Converter) Summary() Summary { return c.summary }

// peek returns the next unconsumed transaction, without consuming it.
func (c *Converter) peek() (Transaction, bool) {
	if c.pos >= len(c.transactions) {
		return Transaction{}, false
	}
	return c.transactions[c.pos], true
}

// next consumes and returns the next transaction.
func (c *Converter) next() (Transaction, bool) {
	tx, ok := c.peek()
	if ok {
		c.pos++
	}
	return tx, ok
}

// nextVoucherNumber opens a new voucher and returns its number.
func (c *Converter) nextVoucherNumber() int {
	n := c.voucher
	c.voucher++
	if c.summary.FirstVoucher == 0 {
		c.summary.FirstVoucher = n
	}
	c.summary.LastVoucher = n
	return n
}

func (c *Converter) convertTransaction(tx Transaction) ([]Entry, error) {
	switch tx.Kind {
	case Purchase:
		return c.convertPurchase(tx)
	case Dividend:
		return c.convertDividend(tx)
	case Interest:
		return c.convertInterest(tx)
	default:
		// DividendTax not preceded by its dividend, and Payment.
		c.skip(tx)
		return nil, nil
	}
}

func (c *Converter) skip(tx Transaction) {
	c.summary.Skipped[tx.Kind]++
	if c.Logger != nil {
		c.Logger.Printf("skipping %s transaction on %s: %s %s", tx.Kind, tx.Date, tx.Company, tx.Description)
	}
}

func (c *Converter) convertPurchase(tx Transaction) ([]Entry, error) {
	net, err := tx.NetAmount()
	if err != nil {
		return nil, err
	}
	fees, err := tx.FeesAmount()
	if err != nil {
		return nil, err
	}

	voucher := c.nextVoucherNumber()
	c.summary.Converted[Purchase]++
	entries := []Entry{newEntry(voucher, tx.Date, purchaseText(tx.Company, tx.ISIN), net, AccountCash)}
	if fees.IsPositive() {
		entries = append(entries, newEntry(voucher, tx.Date, purchaseFeeText, fees.Neg(), AccountFees))
	}
	return entries, nil
}

func (c *Converter) convertDividend(tx Transaction) ([]Entry, error) {
	net, err := tx.NetAmount()
	if err != nil {
		return nil, err
	}

	voucher := c.nextVoucherNumber()
	c.summary.Converted[Dividend]++
	entries := []Entry{newEntry(voucher, tx.Date, dividendText(tx.Company, tx.ISIN), net, AccountDividendIncome)}

	tax, ok := c.peek()
	if !ok || tax.Kind != DividendTax {
		return entries, nil
	}
	taxNet, err := tax.NetAmount()
	if err != nil {
		return nil, err
	}
	c.next()
	c.summary.Converted[DividendTax]++
	// the tax is booked on the dividend day, and described by the dividend security.
	entries = append(entries, newEntry(voucher, tx.Date, dividendTaxText(tx.Company, tx.ISIN), taxNet, AccountWithholdingTax))
	return entries, nil
}

func (c *Converter) convertInterest(tx Transaction) ([]Entry, error) {
	net, err := tx.NetAmount()
	if err != nil {
		return nil, err
	}
	voucher := c.nextVoucherNumber()
	c.summary.Converted[Interest]++
	return []Entry{newEntry(voucher, tx.Date, interestText, net, AccountInterestIncome)}, nil
}
