package report

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/budget"
	"github.com/expense-tracker/backend/internal/money"
)

// budgetLine describes the budget evaluation in one line.
func budgetLine(e budget.Evaluation, m money.Formatter) string {
	if !e.HasBudget {
		return "Budget: no budget set"
	}

	return fmt.Sprintf("Budget: %s | Used: %s%% | %s %s | Status: %s",
		m.Format(e.Budget),
		e.Percentage.StringFixed(0),
		m.Format(e.Difference()),
		e.Label(),
		e.Status,
	)
}
