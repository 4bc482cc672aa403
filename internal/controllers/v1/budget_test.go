package v1_test

import (
	"net/http"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgets() {
	suite.setTestBudget("2024-02", 800)
	suite.setTestBudget("2024-03", 300)

	// Setting the budget again replaces it
	suite.setTestBudget("2024-03", 1000)

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("2024-03", list.Data[0].Month.String())
	suite.Assert().True(decimal.NewFromInt(1000).Equal(list.Data[0].Amount))
	suite.Assert().Equal("2024-02", list.Data[1].Month.String())

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/2024-02", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), r, &budget)
	suite.Assert().True(decimal.NewFromInt(800).Equal(budget.Data.Amount))

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets/2024-02", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/2024-02", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
	suite.Assert().Equal("there is no budget for this month", *decodeBudget(suite, r).Error)

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets/2024-02", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetInvalid() {
	tests := []struct {
		name string
		url  string
		body any
	}{
		{"Zero", "2024-03", map[string]any{"amount": 0}},
		{"Negative", "2024-03", map[string]any{"amount": -100}},
		{"Empty body", "2024-03", ""},
		{"Invalid month", "March", map[string]any{"amount": 100}},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPut, "http://example.com/v1/budgets/"+tt.url, tt.body)
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
		suite.Assert().NotNil(decodeBudget(suite, r).Error, tt.name)
	}

	suite.Assert().Empty(suite.routes.V1.Budgets.List())
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "http://example.com/v1/budgets/2024-03", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "http://example.com/v1/budgets/03-2024", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}
