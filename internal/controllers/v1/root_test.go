package v1_test

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/controllers/root"
	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := suite.request(http.MethodGet, "http://example.com/", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response root.Response
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal("http://example.com/v1", response.Links.V1)
}

func (suite *TestSuiteStandard) TestV1Root() {
	r := suite.request(http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal(v1.Links{
		Expenses: "http://example.com/v1/expenses",
		Budgets:  "http://example.com/v1/budgets",
		Months:   "http://example.com/v1/months",
		Export:   "http://example.com/v1/export",
		Import:   "http://example.com/v1/import",
	}, response.Links)

	r = suite.request(http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthz() {
	r := suite.request(http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	suite.Require().Nil(suite.db.Close())
	r = suite.request(http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusInternalServerError)

	// TearDownTest closes the database again
	db, err := database.OpenSQLite(test.TmpFile(suite.T()))
	suite.Require().Nil(err)
	suite.db = db
}
