package v1_test

import (
	"net/http"
	"net/http/httptest"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
)

// createTestExpense creates an expense and returns it as stored.
func (suite *TestSuiteStandard) createTestExpense(amount float64, category, date, description string, expectedStatus ...int) models.Expense {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	body := []map[string]any{{
		"amount":      amount,
		"category":    category,
		"date":        date,
		"description": description,
	}}

	r := suite.request(http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), r, expectedStatus...)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 1)

	if response.Data[0].Data == nil {
		return models.Expense{}
	}
	return *response.Data[0].Data
}

// setTestBudget sets the budget for a month.
func (suite *TestSuiteStandard) setTestBudget(month string, amount float64) {
	r := suite.request(http.MethodPut, "http://example.com/v1/budgets/"+month, map[string]any{"amount": amount})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
}

func decodeBudget(suite *TestSuiteStandard, r *httptest.ResponseRecorder) v1.BudgetResponse {
	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), r, &response)
	return response
}
