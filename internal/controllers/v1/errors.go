package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/report"
)

type httpError struct {
	Error string `json:"error" example:"the category is not valid"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, report.ErrNothingToExport) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errExpenseNotFound = fmt.Errorf("%w expense with this id", models.ErrResourceNotFound)
	errExpenseExists   = errors.New("there already is an expense with this id")
	errBudgetNotFound  = fmt.Errorf("%w budget for this month", models.ErrResourceNotFound)
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for deleting all expenses was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
