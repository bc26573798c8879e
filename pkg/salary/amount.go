package salary

import (
	"github.com/shopspring/decimal"
)

// Amount is an exact decimal amount. It is written as a JSON number and read
// from a JSON number or a numeric string.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns the Amount for d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// RequireAmount parses s and panics if it is not a decimal number.
func RequireAmount(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

// MarshalJSON writes the amount without quotes and without rounding, so
// values beyond the range of a float64 stay valid JSON.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
