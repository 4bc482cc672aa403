package v1

import (
	"github.com/expense-tracker/backend/internal/models"
)

type ExpenseQueryFilter struct {
	Month    string `form:"month" example:"2024-03"` // Only expenses in this month, YYYY-MM
	Category string `form:"category" example:"Food"` // Only expenses in this category. "All" matches every category
	Search   string `form:"search" example:"lunch"`  // Case insensitive search in the description. Use * for glob patterns
	Sort     string `form:"sort" example:"amount"`   // One of date, amount, category, description
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`                                        // List of expenses
	Error *string          `json:"error" example:"the sort order is not valid"` // The error, if any occurred
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`                                               // Data for the expense
	Error *string         `json:"error" example:"the description must not be empty"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                // List of created expenses
	Error *string           `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CleanupQuery struct {
	Confirm string `form:"confirm" example:"yes-please-delete-everything"` // Confirmation to delete all expenses
}

const cleanupConfirmation = "yes-please-delete-everything"
