package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpensesCreate() {
	e := suite.createTestExpense(249.5, "food", "2024-03-01", "  Lunch  ")

	suite.Assert().NotEmpty(e.ID)
	suite.Assert().True(decimal.RequireFromString("249.5").Equal(e.Amount))
	suite.Assert().Equal(models.CategoryFood, e.Category, "category must be normalized")
	suite.Assert().Equal("Lunch", e.Description)
	suite.Assert().Equal("2024-03-01", e.Date.String())
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	tests := []struct {
		name        string
		amount      float64
		category    string
		date        string
		description string
		err         error
	}{
		{"Zero amount", 0, "Food", "2024-03-01", "Tea", models.ErrAmountNotPositive},
		{"Negative amount", -5, "Food", "2024-03-01", "Tea", models.ErrAmountNotPositive},
		{"Precision", 1.234, "Food", "2024-03-01", "Tea", models.ErrAmountPrecision},
		{"Empty description", 10, "Food", "2024-03-01", " ", models.ErrDescriptionEmpty},
		{"Unknown category", 10, "Groceries", "2024-03-01", "Tea", models.ErrInvalidCategory},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := []map[string]any{{"amount": tt.amount, "category": tt.category, "date": tt.date, "description": tt.description}}
			r := suite.request(http.MethodPost, "http://example.com/v1/expenses", body)
			test.AssertHTTPStatus(t, r, http.StatusBadRequest)

			var response v1.ExpenseCreateResponse
			test.DecodeResponse(t, r, &response)
			suite.Require().Len(response.Data, 1)
			suite.Assert().Contains(*response.Data[0].Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreateMixed() {
	body := []map[string]any{
		{"amount": 10, "category": "Food", "date": "2024-03-01", "description": "Tea"},
		{"amount": 10, "category": "Food", "date": "2024-03-01", "description": ""},
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().NotNil(response.Data[1].Error)
	suite.Assert().Equal(1, suite.routes.V1.Expenses.Len())
}

func (suite *TestSuiteStandard) TestExpensesCreateDuplicateID() {
	body := []map[string]any{{"id": "lunch-1", "amount": 10, "category": "Food", "date": "2024-03-01", "description": "Tea"}}

	r := suite.request(http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), r, http.StatusCreated)

	r = suite.request(http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "there already is an expense with this id")
}

func (suite *TestSuiteStandard) TestExpensesCreateBrokenBody() {
	r := suite.request(http.MethodPost, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r), "the request body must not be empty")

	r = suite.request(http.MethodPost, "http://example.com/v1/expenses", `[{"amount": "ten"}]`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesList() {
	suite.createTestExpense(100, "Food", "2024-03-01", "Groceries")
	suite.createTestExpense(200, "Transportation", "2024-03-02", "Cab to airport")
	suite.createTestExpense(50, "Food", "2024-03-02", "Coffee")
	suite.createTestExpense(80, "Food", "2024-02-10", "Dinner")

	tests := []struct {
		name         string
		query        string
		descriptions []string
	}{
		{"All, newest first", "", []string{"Cab to airport", "Coffee", "Groceries", "Dinner"}},
		{"Month", "?month=2024-03&sort=amount", []string{"Cab to airport", "Groceries", "Coffee"}},
		{"Category", "?category=Food&month=2024-03&sort=amount", []string{"Groceries", "Coffee"}},
		{"All categories", "?category=All&month=2024-02", []string{"Dinner"}},
		{"Search", "?search=AIR", []string{"Cab to airport"}},
		{"Search glob", "?search=c*e", []string{"Coffee"}},
		{"Description order", "?sort=description&month=2024-03", []string{"Cab to airport", "Coffee", "Groceries"}},
		{"No match", "?month=2023-01", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, "http://example.com/v1/expenses"+tt.query, "")
			test.AssertHTTPStatus(t, r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, r, &response)

			descriptions := make([]string, 0, len(response.Data))
			for _, e := range response.Data {
				descriptions = append(descriptions, e.Description)
			}
			suite.Assert().Equal(tt.descriptions, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesListInvalidQuery() {
	for _, query := range []string{"?month=March", "?category=Groceries", "?sort=size"} {
		r := suite.request(http.MethodGet, "http://example.com/v1/expenses"+query, "")
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestExpenseGetUpdateDelete() {
	e := suite.createTestExpense(100, "Food", "2024-03-01", "Groceries")
	url := "http://example.com/v1/expenses/" + e.ID

	r := suite.request(http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	r = suite.request(http.MethodPatch, url, map[string]any{"amount": 120, "paidBy": "mom", "paymentMethod": "upi"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), r, &updated)
	suite.Assert().Equal(e.ID, updated.Data.ID)
	suite.Assert().True(decimal.NewFromInt(120).Equal(updated.Data.Amount))
	suite.Assert().Equal("Groceries", updated.Data.Description, "values not in the body must be kept")
	suite.Assert().Equal(models.PaidByMom, *updated.Data.PaidBy)
	suite.Assert().Equal(models.PaymentUPI, *updated.Data.PaymentMethod)

	// A failed update does not change anything
	r = suite.request(http.MethodPatch, url, map[string]any{"paidBy": "Neighbour"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)

	stored, ok := suite.routes.V1.Expenses.Get(e.ID)
	suite.Require().True(ok)
	suite.Assert().Equal(models.PaidByMom, *stored.PaidBy)

	// The ID cannot be changed
	r = suite.request(http.MethodPatch, url, map[string]any{"id": "other", "paidBy": nil})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	var cleared v1.ExpenseResponse
	test.DecodeResponse(suite.T(), r, &cleared)
	suite.Assert().Equal(e.ID, cleared.Data.ID)
	suite.Assert().Nil(cleared.Data.PaidBy)

	stored, ok = suite.routes.V1.Expenses.Get(e.ID)
	suite.Require().True(ok)
	suite.Assert().Nil(stored.PaidBy, "null clears the value")
	suite.Assert().Equal(models.PaymentUPI, *stored.PaymentMethod)

	r = suite.request(http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		r = suite.request(method, url, map[string]any{})
		test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestExpensesDeleteAll() {
	suite.createTestExpense(100, "Food", "2024-03-01", "Groceries")
	suite.setTestBudget("2024-03", 500)

	r := suite.request(http.MethodDelete, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().Equal(1, suite.routes.V1.Expenses.Len())

	r = suite.request(http.MethodDelete, "http://example.com/v1/expenses?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Equal(0, suite.routes.V1.Expenses.Len())
	suite.Assert().Len(suite.routes.V1.Budgets.List(), 1, "budgets must be kept")
}

func (suite *TestSuiteStandard) TestExpensesPersisted() {
	e := suite.createTestExpense(100, "Food", "2024-03-01", "Groceries")

	// Stores loaded from the same database see the expense
	suite.routes = suite.newRoutes()

	r := suite.request(http.MethodGet, "http://example.com/v1/expenses/"+e.ID, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST, DELETE", r.Header().Get("allow"))

	e := suite.createTestExpense(100, "Food", "2024-03-01", "Groceries")
	r = suite.request(http.MethodOptions, "http://example.com/v1/expenses/"+e.ID, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}
