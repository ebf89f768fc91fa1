package bilag

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string // decimal notation
	}{
		{"1.234,56", "1234.56"},
		{"-10,50", "-10.5"},
		{"0,00", "0"},
		{" 5,00 ", "5"},
		{"\t-15,00\r\n", "-15"},
		{"-1.010,00", "-1010"},
		{"1.000.000", "1000000"},
		{"12", "12"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			}
			if want := decimal.RequireFromString(tc.want); !got.Decimal().Equal(want) {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got.Decimal(), want)
			}
		})
	}
}

func TestParseAmountError(t *testing.T) {
	for _, in := range []string{"", "abc", "1,2,3", "--1", "1 234,56", "- 5,00"} {
		_, err := ParseAmount(in)
		if !errors.Is(err, ErrLocaleDecode) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrLocaleDecode", in, err)
		}
	}
}

func TestDanishSeparators(t *testing.T) {
	if thousandsSeparator != "." || decimalSeparator != "," {
		t.Errorf("separators = %q and %q, want \".\" and \",\"", thousandsSeparator, decimalSeparator)
	}
}

func TestAmountString(t *testing.T) {
	testCases := []struct {
		amount Amount
		want   string
	}{
		{MustParseAmount("-1.010,00").Add(MustParseAmount("10,00")), "-1000"},
		{MustParseAmount("10,00").Neg(), "-10"},
		{MustParseAmount("1.234,56"), "1234,56"},
		{MustParseAmount("-10,50"), "-10,5"},
		{MustParseAmount("5"), "5"},
		{MustParseAmount("0,25"), "0,25"},
		{Amount{}, "0"},
	}
	for _, tc := range testCases {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
