package bilag

import (
	"fmt"

	"github.com/etnz/bilag/date"
)

// Transaction is one row of a Nordnet export. Columns are bound by their
// Danish header names. Transactions are never modified once decoded.
type Transaction struct {
	Date        date.Date `csv:"Bogføringsdag"`
	Company     string    `csv:"Værdipapirer"`
	ISIN        string    `csv:"ISIN"`
	Kind        Kind      `csv:"Transaktionstype"`
	Description string    `csv:"Transaktionstekst"`
	Quantity    Quantity  `csv:"Antal"`
	Price       string    `csv:"Kurs"`
	Fees        string    `csv:"Samlede afgifter"`
	Total       string    `csv:"Beløb"`
}

// FeesAmount returns the decoded fees. Nordnet always reports fees as a
// positive value.
func (tx Transaction) FeesAmount() (Amount, error) {
	fees, err := ParseAmount(tx.Fees)
	if err != nil {
		return Amount{}, fmt.Errorf("fees of %s transaction on %s: %w", tx.Kind, tx.Date, err)
	}
	return fees, nil
}

// NetAmount returns the settlement amount with the fees added back.
//
// The total is negative for money leaving the account and already includes
// the fees, the fees are positive.
func (tx Transaction) NetAmount() (Amount, error) {
	fees, err := tx.FeesAmount()
	if err != nil {
		return Amount{}, err
	}
	total, err := ParseAmount(tx.Total)
	if err != nil {
		return Amount{}, fmt.Errorf("total of %s transaction on %s: %w", tx.Kind, tx.Date, err)
	}
	return total.Add(fees), nil
}
