package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// SameCurrency compares by ISO code, currency.Unit values parsed separately are not always ==.
func (m Money) SameCurrency(other Money) bool {
	return m.Currency.String() == other.Currency.String()
}
