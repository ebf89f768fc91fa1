package bilag

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
)

// dineroRecord is the row format of a Dinero voucher import, columns are
// written in field order.
type dineroRecord struct {
	Voucher               int    `csv:"Bilag nr."`
	Date                  string `csv:"Dato"`
	Text                  string `csv:"Tekst"`
	Account               string `csv:"Konto"`
	AccountVatType        string `csv:"Konto momstype"`
	Amount                string `csv:"Beløb"`
	ForeignAmount         string `csv:"Beløb udenlandsk valuta"`
	BalanceAccount        string `csv:"Modkonto"`
	BalanceAccountVatType string `csv:"Modkonto momstype"`
}

func newDineroRecord(e Entry) dineroRecord {
	return dineroRecord{
		Voucher:               e.Voucher,
		Date:                  e.Date.Dinero(),
		Text:                  e.Text,
		Account:               e.Account,
		AccountVatType:        e.AccountVatType,
		Amount:                e.Amount.String(),
		ForeignAmount:         e.ForeignAmount,
		BalanceAccount:        e.BalanceAccount,
		BalanceAccountVatType: e.BalanceAccountVatType,
	}
}

// EncodeDinero writes entries as a semicolon separated Dinero import. The
// header row is always written, even without entries.
func EncodeDinero(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false
	if err := enc.EncodeHeader(dineroRecord{}); err != nil {
		return fmt.Errorf("%w: header: %w", ErrWrite, err)
	}
	for _, e := range entries {
		if err := enc.Encode(newDineroRecord(e)); err != nil {
			return fmt.Errorf("%w: voucher %d: %w", ErrWrite, e.Voucher, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// WriteDineroFile creates (or truncates) the file at path and writes entries
// to it, see EncodeDinero.
func WriteDineroFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: could not create %q: %w", ErrWrite, path, err)
	}
	if err := EncodeDinero(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %q: %w", ErrWrite, path, err)
	}
	return nil
}
