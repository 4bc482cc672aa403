package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/importer"
	"github.com/expense-tracker/backend/internal/importer/parser/csvfile"
	"github.com/expense-tracker/backend/internal/importer/parser/workbook"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsImport)
	r.POST("", co.ImportBackup)
	r.OPTIONS("/expenses", co.OptionsImport)
	r.POST("/expenses", co.ImportExpenses)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
// @Router			/v1/import/expenses [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffixes ...string) (multipart.File, string, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, "", errNoFilePost
	}

	if err != nil {
		return nil, "", err
	}

	suffix := strings.ToLower(filepath.Ext(formFile.Filename))
	if !slices.Contains(suffixes, suffix) {
		return nil, "", fmt.Errorf("%w: %s", errWrongFileSuffix, strings.Join(suffixes, ", "))
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, "", err
	}

	return f, suffix, nil
}

// @Summary		Restore backup
// @Description	Replaces all expenses and budgets with the content of a file created by the export endpoint.
// @Description	A JSON array of expenses is accepted, too. In that case, all budgets are removed.
// @Tags			Import
// @Accept			multipart/form-data
// @Success		204
// @Failure		400		{object}	httpError
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func (co Controller) ImportBackup(c *gin.Context) {
	f, _, err := getUploadedFile(c, ".json")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	defer f.Close()

	backup, err := importer.ParseBackup(f)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.Expenses.Replace(c.Request.Context(), backup.Expenses)
	co.Budgets.Replace(c.Request.Context(), backup.Budgets)

	c.Status(http.StatusNoContent)
}

// @Summary		Import expenses
// @Description	Adds the expenses from a CSV or XLSX file. The header row must name the columns Date, Description, Amount and Category, Paid By and Payment Method are optional.
// @Description	Rows that have been imported before are skipped and reported with an error.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	ExpenseCreateResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/expenses [post]
func (co Controller) ImportExpenses(c *gin.Context) {
	f, suffix, err := getUploadedFile(c, ".csv", ".xlsx")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{Error: &s})
		return
	}
	defer f.Close()

	var expenses []models.Expense
	switch suffix {
	case ".csv":
		expenses, err = csvfile.Parse(f)
	case ".xlsx":
		expenses, err = workbook.Parse(f)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{Error: &s})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{Data: make([]ExpenseResponse, 0, len(expenses))}

	for _, expense := range expenses {
		if !co.Expenses.AddIfAbsent(c.Request.Context(), expense) {
			status = r.appendError(errExpenseExists, status)
			continue
		}

		r.Data = append(r.Data, ExpenseResponse{Data: &expense})
	}

	c.JSON(status, r)
}
