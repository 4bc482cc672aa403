package v1_test

import (
	"bytes"
	"net/http"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/budget"
	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// createMarchExpenses creates the expenses most month tests work with.
func (suite *TestSuiteStandard) createMarchExpenses() {
	suite.createTestExpense(100, "Food", "2024-03-01", "Groceries")
	suite.createTestExpense(200, "Transportation", "2024-03-02", "Cab to airport")
	suite.createTestExpense(50, "Food", "2024-03-02", "Coffee")
}

func (suite *TestSuiteStandard) getMonth(url string) v1.Month {
	r := suite.request(http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().NotNil(response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) TestMonthSummary() {
	suite.createMarchExpenses()
	suite.createTestExpense(150, "Food", "2024-02-12", "Dinner")

	month := suite.getMonth("http://example.com/v1/months/2024-03")

	suite.Assert().True(decimal.NewFromInt(350).Equal(month.Summary.Total))
	suite.Assert().Equal(3, month.Summary.Count)
	suite.Assert().Equal("116.67", month.Summary.Average.String())
	suite.Assert().True(decimal.NewFromInt(250).Equal(month.Summary.MaxDaily))
	suite.Assert().True(decimal.NewFromInt(100).Equal(month.Summary.MinDaily))

	suite.Require().Len(month.Categories, 2)
	suite.Assert().Equal(models.CategoryTransport, month.Categories[0].Category)
	suite.Assert().Equal(models.CategoryFood, month.Categories[1].Category)
	suite.Assert().Equal(2, month.Categories[1].Count)

	suite.Require().Len(month.Daily, 2)
	suite.Assert().Equal("2024-03-02", month.Daily[0].Date.String())

	suite.Assert().Len(month.Heatmap, 31)
	suite.Assert().Len(month.Top, 3)
	suite.Assert().Equal("Cab to airport", month.Top[0].Description)

	suite.Assert().Equal("2024-02", month.Previous.String())
	suite.Assert().Equal(aggregate.DirectionUp, month.Trend.Direction)
	suite.Assert().True(decimal.NewFromInt(200).Equal(month.Trend.Change))

	suite.Assert().False(month.Budget.HasBudget)
	suite.Assert().Equal(budget.StatusNone, month.Budget.Status)
}

func (suite *TestSuiteStandard) TestMonthTop() {
	suite.createMarchExpenses()

	month := suite.getMonth("http://example.com/v1/months/2024-03?top=1")
	suite.Require().Len(month.Top, 1)
	suite.Assert().Equal("Cab to airport", month.Top[0].Description)

	r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-03?top=-1", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthEmpty() {
	month := suite.getMonth("http://example.com/v1/months/2024-05")

	suite.Assert().True(month.Summary.Total.IsZero())
	suite.Assert().Equal(0, month.Summary.Count)
	suite.Assert().Empty(month.Categories)
	suite.Assert().Len(month.Heatmap, 31)
}

func (suite *TestSuiteStandard) TestMonthBudget() {
	suite.createMarchExpenses()

	tests := []struct {
		name       string
		budget     float64
		percentage string
		raw        string
		remaining  string
		over       bool
		status     budget.Status
	}{
		{"Over budget", 300, "100", "116.67", "-50", true, budget.StatusDanger},
		{"Safe", 1000, "35", "35", "650", false, budget.StatusSafe},
		{"Warning", 500, "70", "70", "150", false, budget.StatusWarning},
		{"Exactly spent", 350, "100", "100", "0", false, budget.StatusDanger},
	}

	for _, tt := range tests {
		suite.setTestBudget("2024-03", tt.budget)

		r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-03/budget", "")
		test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

		var response v1.EvaluationResponse
		test.DecodeResponse(suite.T(), r, &response)
		e := response.Data

		suite.Assert().True(e.HasBudget, tt.name)
		suite.Assert().Equal(tt.percentage, e.Percentage.String(), tt.name)
		suite.Assert().Equal(tt.raw, e.RawPercentage.String(), tt.name)
		suite.Assert().Equal(tt.remaining, e.Remaining.String(), tt.name)
		suite.Assert().Equal(tt.over, e.OverBudget, tt.name)
		suite.Assert().Equal(tt.status, e.Status, tt.name)
	}
}

func (suite *TestSuiteStandard) TestMonthList() {
	suite.createMarchExpenses()
	suite.createTestExpense(150, "Food", "2023-12-24", "Dinner")

	r := suite.request(http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("2024-03", response.Data[0].String())
	suite.Assert().Equal("2023-12", response.Data[1].String())

	suite.Assert().Equal([]string{"2024-03", "2023-12"}, listMonths(suite, "http://example.com/v1/months?includeCurrent=true"), "the current month is not duplicated")
}

func (suite *TestSuiteStandard) TestMonthListCurrent() {
	suite.createTestExpense(150, "Food", "2023-12-24", "Dinner")
	suite.Assert().Equal([]string{"2024-03", "2023-12"}, listMonths(suite, "http://example.com/v1/months?includeCurrent=true"))
	suite.Assert().Equal([]string{"2023-12"}, listMonths(suite, "http://example.com/v1/months"))
}

// listMonths returns the months listed at the url as strings.
func listMonths(suite *TestSuiteStandard, url string) []string {
	r := suite.request(http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), r, &response)

	months := make([]string, 0, len(response.Data))
	for _, m := range response.Data {
		months = append(months, m.String())
	}
	return months
}

func (suite *TestSuiteStandard) TestMonthPDF() {
	suite.createMarchExpenses()
	suite.setTestBudget("2024-03", 300)

	r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-03/report.pdf", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	suite.Assert().Equal("application/pdf", r.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="Expense_Report_March_2024.pdf"`, r.Header().Get("Content-Disposition"))
	suite.Assert().True(bytes.HasPrefix(r.Body.Bytes(), []byte("%PDF-")))
}

func (suite *TestSuiteStandard) TestMonthXLSX() {
	suite.createMarchExpenses()

	r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-03/report.xlsx", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Equal(`attachment; filename="Expense_Report_March_2024.xlsx"`, r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 4, "header and three expenses")
}

func (suite *TestSuiteStandard) TestMonthReportNothingToExport() {
	suite.createMarchExpenses()

	for _, ext := range []string{"pdf", "xlsx"} {
		r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-05/report."+ext, "")
		test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
		suite.Assert().Equal("there are no expenses to export for 2024-05", test.DecodeError(suite.T(), r))
		suite.Assert().Empty(r.Header().Get("Content-Disposition"))
	}
}

func (suite *TestSuiteStandard) TestMonthInvalid() {
	for _, url := range []string{"/v1/months/2024-13", "/v1/months/March/budget", "/v1/months/2024/report.pdf"} {
		r := suite.request(http.MethodGet, "http://example.com"+url, "")
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	for _, url := range []string{"/v1/months", "/v1/months/2024-03", "/v1/months/2024-03/budget", "/v1/months/2024-03/report.pdf", "/v1/months/2024-03/report.xlsx"} {
		r := suite.request(http.MethodOptions, "http://example.com"+url, "")
		test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"), url)
	}
}
