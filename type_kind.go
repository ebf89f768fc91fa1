package bilag

import "fmt"

// Kind is the type of a Nordnet transaction. Only the kinds below are
// recognized, any other code is a schema error.
type Kind int

const (
	Purchase    Kind = iota + 1 // KØBT
	Dividend                    // UDB.
	DividendTax                 // UDBYTTESKAT
	Interest                    // DEPOTRENTE
	Payment                     // INDBETALING
)

// kindCodes maps Kinds to the code found in the "Transaktionstype" column.
var kindCodes = map[Kind]string{
	Purchase:    "KØBT",
	Dividend:    "UDB.",
	DividendTax: "UDBYTTESKAT",
	Interest:    "DEPOTRENTE",
	Payment:     "INDBETALING",
}

// Kinds returns all recognized kinds, in declaration order.
func Kinds() []Kind { return []Kind{Purchase, Dividend, DividendTax, Interest, Payment} }

// ParseKind parses a Nordnet transaction type code.
func ParseKind(code string) (Kind, error) {
	for k, c := range kindCodes {
		if c == code {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown transaction type %q", ErrSchema, code)
}

// String returns the Nordnet code of the kind.
func (k Kind) String() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// UnmarshalText decodes the "Transaktionstype" cell.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
