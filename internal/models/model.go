package models

import (
	"github.com/shopspring/decimal"
)

// Amounts are stored and served as JSON numbers, the same way the
// browser app wrote them into local storage.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// validAmount checks that an amount is positive and has currency precision.
func validAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}

	return nil
}
