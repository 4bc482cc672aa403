package models

import (
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budget is the spending ceiling for one calendar month.
//
// The month is the identity of a budget, there is at most one per month.
type Budget struct {
	Month  types.Month     `json:"month" example:"2024-03" swaggertype:"string"` // Month the budget applies to
	Amount decimal.Decimal `json:"amount" example:"25000" swaggertype:"number"`  // Spending ceiling
}

// Validate checks the budget invariants.
func (b Budget) Validate() error {
	if b.Month.IsZero() {
		return ErrMonthNotSet
	}

	return validAmount(b.Amount)
}
