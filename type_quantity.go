package bilag

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is a signed number of units, negative when units leave the account.
type Quantity int

// UnmarshalText decodes the "Antal" cell. Rows without units (interest,
// deposits) have an empty cell, decoded as 0.
func (q *Quantity) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*q = 0
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, thousandsSeparator, ""))
	if err != nil {
		return fmt.Errorf("%w: invalid quantity %q: %w", ErrSchema, s, err)
	}
	*q = Quantity(n)
	return nil
}
