package models

import (
	"strings"

	"github.com/expense-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single spending event.
type Expense struct {
	ID            string          `json:"id" example:"0b2e8fa3-8a3c-4c6e-9a57-5b1e6d0f2c11"` // Stable identity, assigned at creation
	Amount        decimal.Decimal `json:"amount" example:"249.5" swaggertype:"number"`      // Amount spent
	Description   string          `json:"description" example:"Lunch with friends"`         // What the money was spent on
	Category      Category        `json:"category" example:"Food"`                          // Category of the expense
	Date          types.Date      `json:"date" example:"2024-03-01" swaggertype:"string"`   // Day the expense happened
	PaidBy        *PaidBy         `json:"paidBy,omitempty" example:"Me"`                    // Who paid, if known
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty" example:"UPI"`            // How it was paid, if known
}

// NewID returns a new expense ID.
func NewID() string {
	return uuid.NewString()
}

// Validate checks the expense invariants. Enumerations are normalized to
// their canonical spelling.
func (e *Expense) Validate() error {
	if err := validAmount(e.Amount); err != nil {
		return err
	}

	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return ErrDescriptionEmpty
	}

	category, err := ParseCategory(string(e.Category))
	if err != nil {
		return err
	}
	e.Category = category

	if e.Date.IsZero() {
		return ErrDateNotSet
	}

	e.Normalize()

	if e.PaidBy != nil {
		p, err := ParsePaidBy(string(*e.PaidBy))
		if err != nil {
			return err
		}
		e.PaidBy = &p
	}

	if e.PaymentMethod != nil {
		p, err := ParsePaymentMethod(string(*e.PaymentMethod))
		if err != nil {
			return err
		}
		e.PaymentMethod = &p
	}

	return nil
}

// Copy returns a copy of the expense that shares no pointers with e.
func (e Expense) Copy() Expense {
	if e.PaidBy != nil {
		p := *e.PaidBy
		e.PaidBy = &p
	}

	if e.PaymentMethod != nil {
		p := *e.PaymentMethod
		e.PaymentMethod = &p
	}

	return e
}

// Normalize turns empty optional values into absent ones.
func (e *Expense) Normalize() {
	if e.PaidBy != nil && strings.TrimSpace(string(*e.PaidBy)) == "" {
		e.PaidBy = nil
	}

	if e.PaymentMethod != nil && strings.TrimSpace(string(*e.PaymentMethod)) == "" {
		e.PaymentMethod = nil
	}
}
