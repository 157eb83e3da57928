package helpers

import (
	"errors"

	"github.com/shopspring/decimal"
)

var errNegativePrice = errors.New("price must not be negative")

// ParsePrice parses a decimal amount from its string form and rejects
// negatives. Prices travel as strings in requests to avoid float rounding.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegativePrice
	}
	return d, nil
}
