package bilag

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Nordnet and Dinero both write numbers the Danish way, as the kroner.
var (
	dkk                = money.GetCurrency(money.DKK)
	thousandsSeparator = dkk.Thousand
	decimalSeparator   = dkk.Decimal
)

// Amount is an exact monetary value in the account currency.
type Amount struct {
	value decimal.Decimal
}

// ParseAmount decodes a number written in the Danish format, like "-1.234,56".
//
// Surrounding whitespace is ignored, every "." is a thousands separator and
// "," is the decimal separator.
func ParseAmount(s string) (Amount, error) {
	str := strings.TrimSpace(s)
	str = strings.ReplaceAll(str, thousandsSeparator, "")
	str = strings.ReplaceAll(str, decimalSeparator, ".")
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, fmt.Errorf("%w %q: %w", ErrLocaleDecode, s, err)
	}
	return Amount{v}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

func (a Amount) Add(b Amount) Amount      { return Amount{a.value.Add(b.value)} }
func (a Amount) Neg() Amount              { return Amount{a.value.Neg()} }
func (a Amount) IsPositive() bool         { return a.value.IsPositive() }
func (a Amount) Decimal() decimal.Decimal { return a.value }

// String returns the shortest Danish representation of the amount: "-1000",
// "1234,56". Thousands are not grouped.
func (a Amount) String() string {
	return strings.Replace(a.value.String(), ".", decimalSeparator, 1)
}
