// Package v1 implements the v1 HTTP API for expenses, budgets and monthly reports.
package v1

import (
	"time"

	"github.com/expense-tracker/backend/internal/money"
	"github.com/expense-tracker/backend/internal/store"
)

// Controller holds everything the handlers need.
type Controller struct {
	Expenses *store.Expenses
	Budgets  *store.Budgets
	Money    money.Formatter
	Version  string           // Backend version, written into exports
	Now      func() time.Time // Clock for the current month and report timestamps. nil means time.Now
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}
