// Package budget evaluates spending against monthly budgets.
package budget

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Status is how much of a budget has been used up.
type Status string

const (
	StatusNone    Status = "none" // No budget set for the month
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

var (
	hundred          = decimal.NewFromInt(100)
	safeThreshold    = decimal.NewFromInt(50)
	warningThreshold = decimal.NewFromInt(80)
)

// Evaluation is the result of comparing spending to a budget.
type Evaluation struct {
	HasBudget     bool            `json:"hasBudget" example:"true"`
	Budget        decimal.Decimal `json:"budget" example:"300" swaggertype:"number"`
	Spent         decimal.Decimal `json:"spent" example:"350" swaggertype:"number"`
	Percentage    decimal.Decimal `json:"percentage" example:"100" swaggertype:"number"`        // Share of the budget used, capped at 100
	RawPercentage decimal.Decimal `json:"rawPercentage" example:"116.67" swaggertype:"number"` // Share of the budget used, uncapped
	Remaining     decimal.Decimal `json:"remaining" example:"-50" swaggertype:"number"`        // Budget minus spending, negative when over budget
	OverBudget    bool            `json:"overBudget" example:"true"`
	Status        Status          `json:"status" example:"danger"`
}

// Evaluate compares the spending of a month to its budget. A nil budget
// means no budget is set.
func Evaluate(spent decimal.Decimal, b *models.Budget) Evaluation {
	if b == nil {
		return Evaluation{
			Spent:         spent,
			Budget:        decimal.Zero,
			Percentage:    decimal.Zero,
			RawPercentage: decimal.Zero,
			Remaining:     decimal.Zero,
			Status:        StatusNone,
		}
	}

	raw := rawPercentage(spent, b.Amount)
	remaining := b.Amount.Sub(spent)

	return Evaluation{
		HasBudget:     true,
		Budget:        b.Amount,
		Spent:         spent,
		Percentage:    decimal.Min(raw, hundred).Round(2),
		RawPercentage: raw.Round(2),
		Remaining:     remaining,
		OverBudget:    remaining.IsNegative(),
		Status:        status(raw),
	}
}

// rawPercentage is spent as percentage of amount. Spending anything against a
// zero budget counts as fully used.
func rawPercentage(spent, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		if spent.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}

	return spent.Div(amount).Mul(hundred)
}

func status(raw decimal.Decimal) Status {
	switch {
	case raw.LessThanOrEqual(safeThreshold):
		return StatusSafe
	case raw.LessThanOrEqual(warningThreshold):
		return StatusWarning
	}

	return StatusDanger
}

// Difference is the amount left, or the amount the budget was exceeded by.
func (e Evaluation) Difference() decimal.Decimal {
	return e.Remaining.Abs()
}

// Label describes the difference as shown next to it.
func (e Evaluation) Label() string {
	switch {
	case !e.HasBudget:
		return "no budget set"
	case e.OverBudget:
		return "over budget"
	}

	return "remaining"
}
