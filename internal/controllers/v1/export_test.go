package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/report"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) export() ([]byte, v1.ExportResponse) {
	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), r, &response)
	return r.Body.Bytes(), response
}

func (suite *TestSuiteStandard) TestExport() {
	suite.createMarchExpenses()
	suite.setTestBudget("2024-03", 300)

	_, response := suite.export()

	suite.Assert().Equal("GNU Terry Pratchett", response.Clacks)
	suite.Assert().Equal("0.0.0", response.Version)
	suite.Assert().WithinDuration(testNow, response.CreationTime, time.Second)

	var expenses []models.Expense
	suite.Require().Nil(json.Unmarshal(response.Data["expenses"], &expenses))
	suite.Assert().Len(expenses, 3)

	var budgets []models.Budget
	suite.Require().Nil(json.Unmarshal(response.Data["budgets"], &budgets))
	suite.Assert().Len(budgets, 1)
}

func (suite *TestSuiteStandard) TestBackupRoundTrip() {
	suite.createMarchExpenses()
	suite.setTestBudget("2024-03", 300)
	backup, _ := suite.export()

	r := suite.request(http.MethodDelete, "http://example.com/v1/expenses?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.createTestExpense(999, "Other", "2024-01-01", "Will be replaced")

	body, headers := test.UploadFile(suite.T(), "backup.json", backup)
	r = suite.request(http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	suite.Assert().Equal(3, suite.routes.V1.Expenses.Len())
	b, ok := suite.routes.V1.Budgets.Get(types.NewMonth(2024, 3))
	suite.Require().True(ok)
	suite.Assert().True(decimal.NewFromInt(300).Equal(b.Amount))
}

func (suite *TestSuiteStandard) TestBackupBareArray() {
	suite.setTestBudget("2024-03", 300)

	content := []byte(`[{"amount": 42, "description": "Tea", "category": "Food", "date": "2024-03-05"}]`)
	body, headers := test.UploadFile(suite.T(), "expenses.json", content)
	r := suite.request(http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	expenses := suite.routes.V1.Expenses.List()
	suite.Require().Len(expenses, 1)
	suite.Assert().NotEmpty(expenses[0].ID)
	suite.Assert().Empty(suite.routes.V1.Budgets.List())
}

func (suite *TestSuiteStandard) TestBackupInvalid() {
	suite.createMarchExpenses()

	tests := []struct {
		name     string
		filename string
		content  string
		err      string
	}{
		{"Wrong suffix", "backup.csv", "{}", "this endpoint only supports files of the following types: .json"},
		{"Not JSON", "backup.json", "no json here", "the file is not a backup of this application"},
		{"Invalid expense", "backup.json", `[{"amount": -1, "description": "Tea", "category": "Food", "date": "2024-03-05"}]`, "the amount must be greater than zero"},
	}

	for _, tt := range tests {
		body, headers := test.UploadFile(suite.T(), tt.filename, []byte(tt.content))
		r := suite.request(http.MethodPost, "http://example.com/v1/import", body, headers)
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
		suite.Assert().Contains(test.DecodeError(suite.T(), r), tt.err, tt.name)
	}

	suite.Assert().Equal(3, suite.routes.V1.Expenses.Len(), "failed imports must not change anything")
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := suite.request(http.MethodPost, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().Equal("you must send a file to this endpoint", test.DecodeError(suite.T(), r))
}

func (suite *TestSuiteStandard) TestImportCSV() {
	csv := "Date,Description,Amount,Category,Paid By,Payment Method\n" +
		"2024-03-01,Groceries,\"1,250.50\",Food,Me,UPI\n" +
		"02 Mar 2024,Cab,Rs. 200,transportation,-,-\n"

	body, headers := test.UploadFile(suite.T(), "expenses.csv", []byte(csv))
	r := suite.request(http.MethodPost, "http://example.com/v1/import/expenses", body, headers)
	test.AssertHTTPStatus(suite.T(), r, http.StatusCreated)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("1250.5", response.Data[0].Data.Amount.String())
	suite.Assert().Equal(models.CategoryTransport, response.Data[1].Data.Category)
	suite.Assert().Nil(response.Data[1].Data.PaidBy)

	// Importing the same file again skips all rows
	body, headers = test.UploadFile(suite.T(), "expenses.csv", []byte(csv))
	r = suite.request(http.MethodPost, "http://example.com/v1/import/expenses", body, headers)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().Equal(2, suite.routes.V1.Expenses.Len())
}

func (suite *TestSuiteStandard) TestImportCSVBroken() {
	body, headers := test.UploadFile(suite.T(), "expenses.csv", []byte("Date,Description\n2024-03-01,Tea\n"))
	r := suite.request(http.MethodPost, "http://example.com/v1/import/expenses", body, headers)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().NotEmpty(test.DecodeError(suite.T(), r))
	suite.Assert().Equal(0, suite.routes.V1.Expenses.Len())
}

func (suite *TestSuiteStandard) TestImportXLSX() {
	r, err := report.Build([]models.Expense{
		{ID: "1", Amount: decimal.NewFromInt(1500), Description: "Rent share", Category: models.CategoryBills, Date: types.NewDate(2024, 3, 1)},
		{ID: "2", Amount: decimal.RequireFromString("49.99"), Description: "Book", Category: models.CategoryEducation, Date: types.NewDate(2024, 3, 2)},
	}, types.NewMonth(2024, 3), testNow)
	suite.Require().Nil(err)

	var buf bytes.Buffer
	suite.Require().Nil(report.WriteXLSX(&buf, r, report.Options{}))

	body, headers := test.UploadFile(suite.T(), "Expense_Report_March_2024.xlsx", buf.Bytes())
	rec := suite.request(http.MethodPost, "http://example.com/v1/import/expenses", body, headers)
	test.AssertHTTPStatus(suite.T(), rec, http.StatusCreated)
	suite.Assert().Equal(2, suite.routes.V1.Expenses.Len())

	month := suite.getMonth("http://example.com/v1/months/2024-03")
	suite.Assert().Equal("1549.99", month.Summary.Total.String())
}

func (suite *TestSuiteStandard) TestImportOptions() {
	for _, url := range []string{"/v1/import", "/v1/import/expenses"} {
		r := suite.request(http.MethodOptions, "http://example.com"+url, "")
		test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
	}

	r := suite.request(http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
